package main

import (
	"net/http/httptest"
	"testing"
)

func TestCredentialFromRequest(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"token, eyJhbGciOi.abc.def", "eyJhbGciOi.abc.def"},
		{"chat, token, secret", "secret"},
		{"token", ""},
		{"secret, token", ""},
		{"", ""},
		{"chat, secret", ""},
	}

	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/ws/notifications/", nil)
		if tc.header != "" {
			req.Header.Set("Sec-WebSocket-Protocol", tc.header)
		}
		if got := credentialFromRequest(req); got != tc.want {
			t.Errorf("credentialFromRequest(%q): expected '%s', got '%s'", tc.header, tc.want, got)
		}
	}
}

func TestIsRoutableIP(t *testing.T) {
	cases := map[string]bool{
		"8.8.8.8":     true,
		"2001:4860::": true,
		"10.0.0.1":    false,
		"192.168.1.1": false,
		"127.0.0.1":   false,
		"::1":         false,
		"0.0.0.0":     false,
		"not an ip":   false,
		"":            false,
	}
	for ip, want := range cases {
		if got := isRoutableIP(ip); got != want {
			t.Errorf("isRoutableIP(%q): expected %v, got %v", ip, want, got)
		}
	}
}

func TestRemoteAddr(t *testing.T) {
	defer func(v bool) { globals.useXForwardedFor = v }(globals.useXForwardedFor)

	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "10.1.1.1:5000"
	req.Header.Set("X-Forwarded-For", "8.8.4.4, 10.0.0.2")

	globals.useXForwardedFor = false
	if got := remoteAddr(req); got != "10.1.1.1:5000" {
		t.Errorf("Expected connection address, got '%s'", got)
	}
	globals.useXForwardedFor = true
	if got := remoteAddr(req); got != "8.8.4.4" {
		t.Errorf("Expected forwarded address, got '%s'", got)
	}
	req.Header.Set("X-Forwarded-For", "192.168.0.5")
	if got := remoteAddr(req); got != "10.1.1.1:5000" {
		t.Errorf("Private forwarded address must be ignored, got '%s'", got)
	}
}

func TestToAbsolutePath(t *testing.T) {
	if got := toAbsolutePath("/opt/chat", "chat.conf"); got != "/opt/chat/chat.conf" {
		t.Errorf("Unexpected path '%s'", got)
	}
	if got := toAbsolutePath("/opt/chat", "/etc/chat.conf"); got != "/etc/chat.conf" {
		t.Errorf("Absolute path must be kept, got '%s'", got)
	}
}
