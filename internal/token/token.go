// Package token implements the stateless session token codec: a signed,
// time-bounded claim carrying the user id. Nothing is stored server-side.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Reason tags why verification failed. Clients only ever see a generic
// unauthorized message; the tag is for logs and tests.
type Reason int

const (
	ReasonMissing Reason = iota
	ReasonMalformed
	ReasonBadSignature
	ReasonExpired
	ReasonSubjectGone
)

func (r Reason) String() string {
	switch r {
	case ReasonMissing:
		return "missing"
	case ReasonMalformed:
		return "malformed"
	case ReasonBadSignature:
		return "bad signature"
	case ReasonExpired:
		return "expired"
	case ReasonSubjectGone:
		return "subject gone"
	default:
		return "unknown"
	}
}

// VerifyError is a tagged verification failure.
type VerifyError struct {
	Reason Reason
	Err    error
}

func (e *VerifyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("token %s: %v", e.Reason, e.Err)
	}
	return "token " + e.Reason.String()
}

func (e *VerifyError) Unwrap() error { return e.Err }

// FailReason extracts the tag from err, ReasonMalformed if untagged.
func FailReason(err error) Reason {
	var ve *VerifyError
	if errors.As(err, &ve) {
		return ve.Reason
	}
	return ReasonMalformed
}

// Claims is the signed payload: the user id plus the registered expiry.
type Claims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a shared HMAC secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec returns a Codec. ttl bounds every issued token's validity.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Issue signs a new token bound to userID, expiring after the codec's TTL.
func (c *Codec) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded user id.
// Failures come back as *VerifyError with the reason tagged.
func (c *Codec) Verify(raw string) (int64, error) {
	if raw == "" {
		return 0, &VerifyError{Reason: ReasonMissing}
	}
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, &VerifyError{Reason: ReasonExpired, Err: err}
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, &VerifyError{Reason: ReasonBadSignature, Err: err}
		default:
			return 0, &VerifyError{Reason: ReasonMalformed, Err: err}
		}
	}
	if !t.Valid || claims.UserID == 0 {
		return 0, &VerifyError{Reason: ReasonMalformed}
	}
	return claims.UserID, nil
}
