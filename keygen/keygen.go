// Generator of HMAC keys for the token resolver and of test tokens signed with them.
//
//	keygen -keysize 32
//	keygen -uid 7 -key <base64 key> -lifetime 24h
//	keygen -validate <token> -key <base64 key>
package main

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/chatwire/chat/server/auth"
	_ "github.com/chatwire/chat/server/auth/token"
	"github.com/chatwire/chat/server/store/types"
)

const minKeySize = 32

func main() {
	var keySize = flag.Int("keysize", minKeySize, "Length of the generated key in bytes.")
	var uid = flag.Int64("uid", 0, "ID of the user to issue a token for.")
	var key = flag.String("key", "", "Base64-encoded HMAC key to sign or validate tokens.")
	var lifetime = flag.Duration("lifetime", 24*time.Hour, "Lifetime of the issued token.")
	var token = flag.String("validate", "", "Token to validate.")

	flag.Parse()

	switch {
	case *token != "":
		os.Exit(validate(*token, *key))
	case *uid != 0:
		os.Exit(issue(types.Uid(*uid), *key, *lifetime))
	default:
		os.Exit(generate(*keySize))
	}
}

// generate prints a random key.
func generate(size int) int {
	if size < minKeySize {
		fmt.Fprintf(os.Stderr, "Key must be at least %d bytes long\n", minKeySize)
		return 1
	}

	key := make([]byte, size)
	if _, err := rand.Read(key); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to generate key:", err)
		return 1
	}

	fmt.Printf("HMAC key (%d bytes): %s\n", size, base64.StdEncoding.EncodeToString(key))
	return 0
}

// Key the token resolver was initialized with. The resolver can be initialized once.
var resolverKey string

func resolver(key string) (auth.Resolver, error) {
	r := auth.Get("token")
	if resolverKey != "" {
		if key != resolverKey {
			return nil, fmt.Errorf("resolver is already initialized with another key")
		}
		return r, nil
	}

	raw, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("invalid key: %w", err)
	}
	conf, _ := json.Marshal(map[string]any{"key": raw})

	if err = r.Init(conf, "token"); err != nil {
		return nil, err
	}
	resolverKey = key
	return r, nil
}

// issue prints a signed token for the user.
func issue(uid types.Uid, key string, lifetime time.Duration) int {
	r, err := resolver(key)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	secret, expires, err := r.(auth.Issuer).GenSecret(uid, lifetime)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to issue token:", err)
		return 1
	}

	fmt.Printf("Token for user %d, expires %s:\n%s\n", uid, expires.Format(time.RFC3339), secret)
	return 0
}

// validate checks the token and prints its user.
func validate(token, key string) int {
	r, err := resolver(key)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	uid, err := r.Resolve([]byte(token))
	if err != nil {
		fmt.Println("INVALID:", err)
		return 1
	}

	fmt.Printf("Valid, user %d\n", uid)
	return 0
}
