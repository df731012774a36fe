// Package token implements identity resolution by HMAC-signed JSON web tokens.
//
// Tokens are HS256 JWTs carrying the numeric ID of the user in the 'user_id'
// claim, as issued by the account service.
package token

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/chatwire/chat/server/auth"
	"github.com/chatwire/chat/server/store/types"
	"github.com/golang-jwt/jwt/v5"
)

// authenticator is a singleton instance of the resolver.
type authenticator struct {
	name   string
	key    []byte
	parser *jwt.Parser
	issuer string
}

type claims struct {
	// Either a number or a numeric string.
	UserId any `json:"user_id"`
	jwt.RegisteredClaims
}

// Init initializes the resolver: parses the config and sets the signing key.
func (ta *authenticator) Init(jsonconf json.RawMessage, name string) error {
	if ta.name != "" {
		return errors.New("auth_token: already initialized as " + ta.name + "; " + name)
	}

	type configType struct {
		// Key for verifying token signatures.
		Key []byte `json:"key"`
		// Expected issuer, optional.
		Issuer string `json:"issuer"`
		// Allowed clock skew in seconds.
		Leeway int `json:"leeway"`
	}
	var config configType
	if err := json.Unmarshal(jsonconf, &config); err != nil {
		return errors.New("auth_token: failed to parse config: " + err.Error() + "(" + string(jsonconf) + ")")
	}

	if len(config.Key) < sha256.Size {
		return errors.New("auth_token: the key is missing or too short")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithJSONNumber(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(time.Duration(config.Leeway) * time.Second),
	}
	if config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(config.Issuer))
	}

	ta.name = name
	ta.key = config.Key
	ta.issuer = config.Issuer
	ta.parser = jwt.NewParser(opts...)

	return nil
}

// Resolve checks validity of the token and returns the ID of its user.
func (ta *authenticator) Resolve(secret []byte) (types.Uid, error) {
	if ta.parser == nil {
		return types.ZeroUid, auth.ErrInternal
	}
	if len(secret) == 0 {
		return types.ZeroUid, auth.ErrMalformed
	}

	var cl claims
	_, err := ta.parser.ParseWithClaims(string(secret), &cl, func(*jwt.Token) (any, error) {
		return ta.key, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return types.ZeroUid, auth.ErrExpired
	case errors.Is(err, jwt.ErrTokenMalformed):
		return types.ZeroUid, auth.ErrMalformed
	default:
		return types.ZeroUid, auth.ErrFailed
	}

	uid := parseUserId(cl.UserId)
	if uid.IsZero() {
		return types.ZeroUid, auth.ErrMalformed
	}
	return uid, nil
}

// GenSecret generates a new token for the user.
func (ta *authenticator) GenSecret(uid types.Uid, lifetime time.Duration) ([]byte, time.Time, error) {
	if ta.key == nil {
		return nil, time.Time{}, auth.ErrInternal
	}
	if uid.IsZero() {
		return nil, time.Time{}, auth.ErrMalformed
	}
	if lifetime <= 0 {
		return nil, time.Time{}, auth.ErrMalformed
	}

	now := time.Now()
	expires := now.Add(lifetime).UTC().Round(time.Second)
	cl := claims{
		UserId: int64(uid),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ta.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(ta.key)
	if err != nil {
		return nil, time.Time{}, err
	}
	return []byte(signed), expires, nil
}

func parseUserId(v any) types.Uid {
	switch id := v.(type) {
	case json.Number:
		return types.ParseUid(id.String())
	case string:
		return types.ParseUid(id)
	case float64:
		// Only when the parser is not configured to use json.Number.
		return types.ParseUid(strconv.FormatFloat(id, 'f', -1, 64))
	}
	return types.ZeroUid
}

func init() {
	auth.Register("token", &authenticator{})
}
