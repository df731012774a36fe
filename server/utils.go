// Generic data manipulation utilities.

package main

import (
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
)

// Version of the server, reported in logs and at /healthz.
const currentVersion = "0.4"

// Name of the sub-protocol which precedes the credential in Sec-WebSocket-Protocol.
const credentialProtocol = "token"

func itoa(v int) string {
	return strconv.Itoa(v)
}

func i64toa(v int64) string {
	return strconv.FormatInt(v, 10)
}

// rootpath returns the directory of the executable.
func rootpath() string {
	executable, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(executable)
}

// toAbsolutePath resolves path relative to base unless it's already absolute.
func toAbsolutePath(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(base, path))
}

// credentialFromRequest extracts the credential from the list of offered sub-protocols:
// it's the entry following "token". Returns "" if there is none.
func credentialFromRequest(req *http.Request) string {
	protocols := websocket.Subprotocols(req)
	for i, proto := range protocols {
		if proto == credentialProtocol {
			if i+1 < len(protocols) {
				return protocols[i+1]
			}
			break
		}
	}
	return ""
}

// isRoutableIP checks if the IP address is publicly routable.
func isRoutableIP(ipStr string) bool {
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return false
	}
	return !ip.IsPrivate() && !ip.IsLoopback() && !ip.IsLinkLocalUnicast() && !ip.IsUnspecified()
}

// remoteAddr returns the address of the client, optionally taken from X-Forwarded-For.
func remoteAddr(req *http.Request) string {
	if globals.useXForwardedFor {
		// The left-most entry is the original client.
		addr := strings.TrimSpace(strings.Split(req.Header.Get("X-Forwarded-For"), ",")[0])
		if isRoutableIP(addr) {
			return addr
		}
	}
	return req.RemoteAddr
}
