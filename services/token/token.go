// Package token implements the two HMAC-signed credential kinds used by the
// admin surface: browser session tokens and emailed action-link tokens.
// Both are stateless bearer tokens; expiry is the only termination mechanism.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// SessionTTL is the lifetime of an admin browser session.
	SessionTTL = 8 * time.Hour
	// ActionTTL is the default lifetime of an emailed action link.
	ActionTTL = 7 * 24 * time.Hour

	sessionRole = "admin"
)

// Actions a token may authorize. Anything else is rejected at verification.
const (
	ActionConfirm = "confirm"
	ActionCancel  = "cancel"
)

// Session token verification failures.
var (
	ErrMissing   = errors.New("token missing")
	ErrFormat    = errors.New("malformed token")
	ErrRole      = errors.New("unexpected role")
	ErrExp       = errors.New("invalid expiry")
	ErrExpired   = errors.New("token expired")
	ErrSignature = errors.New("signature mismatch")
)

// Action token verification failures.
var (
	ErrActionFormat     = errors.New("invalid token format")
	ErrActionSignature  = errors.New("invalid token signature")
	ErrActionPayload    = errors.New("invalid token payload")
	ErrActionExpiration = errors.New("invalid token expiration")
	ErrActionExpired    = errors.New("token expired")
)

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// SessionSigner mints and verifies admin session tokens. The secret is
// injected at construction so the signer is testable with arbitrary keys.
type SessionSigner struct {
	secret []byte
	now    func() time.Time
}

func NewSessionSigner(secret string) *SessionSigner {
	return &SessionSigner{secret: []byte(secret), now: time.Now}
}

// Create returns a token of the form "admin.<exp>.<sig>" where sig is
// HMAC-SHA256 over "admin.<exp>".
func (s *SessionSigner) Create(ttl time.Duration) string {
	exp := s.now().Add(ttl).Unix()
	payload := fmt.Sprintf("%s.%d", sessionRole, exp)
	return payload + "." + sign(s.secret, payload)
}

// Verify checks structure, role, expiry and signature. A token whose expiry
// equals the current second is still valid.
func (s *SessionSigner) Verify(tok string) error {
	if tok == "" {
		return ErrMissing
	}
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		return ErrFormat
	}
	if parts[0] != sessionRole {
		return ErrRole
	}
	exp, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return ErrExp
	}
	if s.now().Unix() > exp {
		return ErrExpired
	}
	expected := sign(s.secret, parts[0]+"."+parts[1])
	// hmac.Equal short-circuits only on length, never on content.
	if !hmac.Equal([]byte(parts[2]), []byte(expected)) {
		return ErrSignature
	}
	return nil
}

// ActionClaims is the decoded payload of a verified action token.
type ActionClaims struct {
	OrderNumber string
	Action      string
	Exp         int64
}

// ActionSigner mints and verifies action-link tokens. It uses a secret
// distinct from the session secret so leaking one token kind never grants
// the capabilities of the other.
type ActionSigner struct {
	secret []byte
	now    func() time.Time
}

func NewActionSigner(secret string) *ActionSigner {
	return &ActionSigner{secret: []byte(secret), now: time.Now}
}

// Create returns a token of the form "<b64(order.action.exp)>.<sig>" where
// sig is HMAC-SHA256 over the encoded payload field.
func (a *ActionSigner) Create(orderNumber, action string, ttl time.Duration) (string, error) {
	if len(a.secret) == 0 {
		return "", errors.New("action token secret not configured")
	}
	exp := a.now().Add(ttl).Unix()
	payload := fmt.Sprintf("%s.%s.%d", orderNumber, action, exp)
	encoded := base64.RawURLEncoding.EncodeToString([]byte(payload))
	return encoded + "." + sign(a.secret, encoded), nil
}

// Verify validates the signature and payload and returns the decoded claims.
// Callers must additionally check that the claims match the order and action
// named in the request; Verify alone does not bind the token to a request.
func (a *ActionSigner) Verify(tok string) (*ActionClaims, error) {
	parts := strings.Split(tok, ".")
	if len(parts) != 2 {
		return nil, ErrActionFormat
	}
	if len(a.secret) == 0 {
		return nil, ErrActionSignature
	}
	expected := sign(a.secret, parts[0])
	if !hmac.Equal([]byte(parts[1]), []byte(expected)) {
		return nil, ErrActionSignature
	}
	raw, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, ErrActionPayload
	}
	fields := strings.Split(string(raw), ".")
	if len(fields) != 3 || fields[0] == "" || fields[1] == "" || fields[2] == "" {
		return nil, ErrActionPayload
	}
	if fields[1] != ActionConfirm && fields[1] != ActionCancel {
		return nil, ErrActionPayload
	}
	exp, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return nil, ErrActionExpiration
	}
	if a.now().Unix() > exp {
		return nil, ErrActionExpired
	}
	return &ActionClaims{OrderNumber: fields[0], Action: fields[1], Exp: exp}, nil
}
