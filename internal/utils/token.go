package utils // package utils provides helpers for password hashing and session tokens

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and verifying signed tokens
)

// PrincipalKind distinguishes the two disjoint principal kinds carried
// in the token's "type" claim. A user token never satisfies an
// admin-gated route and vice versa.
type PrincipalKind string

const (
	KindUser  PrincipalKind = "user"
	KindAdmin PrincipalKind = "admin"
)

// TokenPayload is the decoded identity carried by a session token.
type TokenPayload struct {
	ID    uint64
	Email string
	Kind  PrincipalKind
}

// ErrInvalidToken is returned by VerifySessionToken for any token that
// fails parsing, signature verification, expiry, or claim shape checks.
// The caller gets no detail beyond this; token errors are always
// surfaced to clients as a generic "invalid token".
var ErrInvalidToken = errors.New("invalid token")

// NewSessionToken signs an HS256 JWT carrying the principal's id, email
// and kind. The embedded exp claim is what actually ends a session; the
// persisted token row only exists for explicit logout. A random jti
// keeps two tokens issued in the same second from colliding on the
// unique token column.
func NewSessionToken(secret string, p TokenPayload, ttl time.Duration) (string, error) {
	jti := make([]byte, 8)
	if _, err := rand.Read(jti); err != nil {
		return "", err
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":    p.ID,
		"email": p.Email,
		"type":  string(p.Kind),
		"jti":   hex.EncodeToString(jti),
		"iat":   now.Unix(),
		"exp":   now.Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// VerifySessionToken parses and signature-checks a session token and
// extracts its payload. Only the signature and embedded expiry are
// checked here; the token tables are not consulted, so a logged-out
// token remains verifiable until its exp claim elapses.
func VerifySessionToken(secret, raw string) (TokenPayload, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return TokenPayload{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return TokenPayload{}, ErrInvalidToken
	}

	var p TokenPayload
	// Numeric claims decode as float64.
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return TokenPayload{}, ErrInvalidToken
	}
	p.ID = uint64(id)
	if email, ok := claims["email"].(string); ok {
		p.Email = email
	}
	kind, ok := claims["type"].(string)
	if !ok {
		return TokenPayload{}, ErrInvalidToken
	}
	switch PrincipalKind(kind) {
	case KindUser, KindAdmin:
		p.Kind = PrincipalKind(kind)
	default:
		return TokenPayload{}, ErrInvalidToken
	}
	return p, nil
}
