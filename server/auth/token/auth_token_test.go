package token

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/chatwire/chat/server/auth"
	"github.com/chatwire/chat/server/store/types"
	"github.com/golang-jwt/jwt/v5"
)

var testKey = []byte("wfaY2RgF2S1OQI/ZlK+LSrp1KB2jwAdGAIHQ7JZn+Kc=")

func newAuth(t *testing.T) *authenticator {
	t.Helper()
	ta := &authenticator{}
	conf, _ := json.Marshal(map[string]any{"key": testKey})
	if err := ta.Init(conf, "token"); err != nil {
		t.Fatal(err)
	}
	return ta
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) []byte {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatal(err)
	}
	return []byte(signed)
}

func TestInit(t *testing.T) {
	ta := &authenticator{}
	if err := ta.Init(json.RawMessage(`{"key":"c2hvcnQ="}`), "token"); err == nil {
		t.Error("Short key must be rejected")
	}
	if err := ta.Init(json.RawMessage(`{"key":`), "token"); err == nil {
		t.Error("Broken config must be rejected")
	}

	ta = newAuth(t)
	conf, _ := json.Marshal(map[string]any{"key": testKey})
	if err := ta.Init(conf, "other"); err == nil {
		t.Error("Second Init must fail")
	}
}

func TestResolveGenerated(t *testing.T) {
	ta := newAuth(t)

	secret, expires, err := ta.GenSecret(types.Uid(7), time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if time.Until(expires) < 59*time.Minute {
		t.Errorf("Unexpected expiration %v", expires)
	}
	uid, err := ta.Resolve(secret)
	if err != nil {
		t.Fatal(err)
	}
	if uid != 7 {
		t.Errorf("Expected uid 7, got %d", uid)
	}
}

func TestResolveClaimFormats(t *testing.T) {
	ta := newAuth(t)
	exp := time.Now().Add(time.Minute).Unix()

	for _, tc := range []struct {
		name  string
		claim any
		want  types.Uid
		err   error
	}{
		{"number", 12, 12, nil},
		{"string", "12", 12, nil},
		{"zero", 0, types.ZeroUid, auth.ErrMalformed},
		{"negative", -3, types.ZeroUid, auth.ErrMalformed},
		{"fraction", 1.5, types.ZeroUid, auth.ErrMalformed},
		{"garbage", "twelve", types.ZeroUid, auth.ErrMalformed},
		{"missing", nil, types.ZeroUid, auth.ErrMalformed},
	} {
		t.Run(tc.name, func(t *testing.T) {
			claims := jwt.MapClaims{"exp": exp}
			if tc.claim != nil {
				claims["user_id"] = tc.claim
			}
			uid, err := ta.Resolve(sign(t, jwt.SigningMethodHS256, testKey, claims))
			if !errors.Is(err, tc.err) {
				t.Fatalf("Expected error %v, got %v", tc.err, err)
			}
			if uid != tc.want {
				t.Errorf("Expected uid %d, got %d", tc.want, uid)
			}
		})
	}
}

func TestResolveRejected(t *testing.T) {
	ta := newAuth(t)
	valid := jwt.MapClaims{"user_id": 7, "exp": time.Now().Add(time.Minute).Unix()}

	for _, tc := range []struct {
		name   string
		secret []byte
		err    error
	}{
		{"empty", nil, auth.ErrMalformed},
		{"not a token", []byte("hello"), auth.ErrMalformed},
		{"expired", sign(t, jwt.SigningMethodHS256, testKey,
			jwt.MapClaims{"user_id": 7, "exp": time.Now().Add(-time.Minute).Unix()}), auth.ErrExpired},
		{"wrong key", sign(t, jwt.SigningMethodHS256, []byte(strings.Repeat("x", 32)), valid), auth.ErrFailed},
		{"wrong alg", sign(t, jwt.SigningMethodHS512, testKey, valid), auth.ErrFailed},
		{"unsigned", sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid), auth.ErrFailed},
	} {
		t.Run(tc.name, func(t *testing.T) {
			uid, err := ta.Resolve(tc.secret)
			if !errors.Is(err, tc.err) {
				t.Errorf("Expected error %v, got %v", tc.err, err)
			}
			if !uid.IsZero() {
				t.Errorf("Expected zero uid, got %d", uid)
			}
		})
	}
}

func TestGenSecretInvalid(t *testing.T) {
	ta := newAuth(t)
	if _, _, err := ta.GenSecret(types.ZeroUid, time.Hour); err != auth.ErrMalformed {
		t.Errorf("Zero uid: expected ErrMalformed, got %v", err)
	}
	if _, _, err := ta.GenSecret(types.Uid(3), 0); err != auth.ErrMalformed {
		t.Errorf("Zero lifetime: expected ErrMalformed, got %v", err)
	}
	if _, _, err := (&authenticator{}).GenSecret(types.Uid(3), time.Hour); err != auth.ErrInternal {
		t.Errorf("Uninitialized: expected ErrInternal, got %v", err)
	}
}

func TestRegistered(t *testing.T) {
	if auth.Get("token") == nil {
		t.Error("token resolver is not registered")
	}
	if auth.Get("TOKEN") == nil {
		t.Error("Resolver names must be case-insensitive")
	}
}
