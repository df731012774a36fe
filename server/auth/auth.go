// Package auth provides interfaces and types required for resolving the identity of
// connecting clients.
package auth

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/chatwire/chat/server/store/types"
)

// AuthErr is a structure for reporting an error condition.
type AuthErr string

func (e AuthErr) Error() string {
	return string(e)
}

const (
	// ErrInternal means DB or other internal failure
	ErrInternal = AuthErr("internal")
	// ErrMalformed means the secret cannot be parsed or otherwise wrong
	ErrMalformed = AuthErr("malformed")
	// ErrFailed means authentication failed (wrong signature, unknown user, etc)
	ErrFailed = AuthErr("failed")
	// ErrUnsupported means an operation is not supported
	ErrUnsupported = AuthErr("unsupported")
	// ErrExpired means the secret has expired
	ErrExpired = AuthErr("expired")
)

// Resolver is the interface which identity providers must implement.
type Resolver interface {
	// Init initializes the resolver.
	Init(jsonconf json.RawMessage, name string) error

	// Resolve returns the ID of the user who presented the secret. The user
	// record is not checked.
	Resolve(secret []byte) (types.Uid, error)
}

// Issuer is implemented by resolvers which can also generate secrets, i.e. for testing.
type Issuer interface {
	// GenSecret produces a secret for the user valid for the given time.
	GenSecret(uid types.Uid, lifetime time.Duration) ([]byte, time.Time, error)
}

var (
	resolversLock sync.RWMutex
	resolvers     = make(map[string]Resolver)
)

// Register makes a resolver available by the provided name.
// If Register is called twice with the same name or if the resolver is nil, it panics.
func Register(name string, r Resolver) {
	if r == nil {
		panic("auth: Register resolver is nil")
	}

	name = strings.ToLower(name)

	resolversLock.Lock()
	defer resolversLock.Unlock()
	if _, dup := resolvers[name]; dup {
		panic("auth: Register called twice for resolver " + name)
	}
	resolvers[name] = r
}

// Get returns a registered resolver or nil.
func Get(name string) Resolver {
	resolversLock.RLock()
	defer resolversLock.RUnlock()
	return resolvers[strings.ToLower(name)]
}
