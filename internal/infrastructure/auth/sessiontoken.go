package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hys-retail/storedesk/internal/shared/biztime"
)

var (
	// ErrInvalidToken covers every decode failure: bad signature, malformed
	// token, wrong algorithm, expiry and a missing store claim.
	ErrInvalidToken = errors.New("invalid session token")

	ErrMissingSecret = errors.New("session signing secret is not configured")
	ErrEmptyStoreID  = errors.New("store ID is required")
)

// SessionClaims is the payload of a store session token.
type SessionClaims struct {
	StoreID string `json:"storeId"`
	jwt.RegisteredClaims
}

// SessionTokenCodec signs and verifies store session tokens with HS256.
type SessionTokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type CodecOption func(*SessionTokenCodec)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) CodecOption {
	return func(c *SessionTokenCodec) {
		c.now = now
	}
}

func NewSessionTokenCodec(secret string, ttl time.Duration, opts ...CodecOption) *SessionTokenCodec {
	c := &SessionTokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    biztime.NowUTC,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL is the lifetime of issued tokens.
func (c *SessionTokenCodec) TTL() time.Duration {
	return c.ttl
}

// Configured reports whether a signing secret is present.
func (c *SessionTokenCodec) Configured() bool {
	return len(c.secret) > 0
}

// Encode issues a token for storeID valid for the codec TTL.
func (c *SessionTokenCodec) Encode(storeID string) (string, error) {
	if !c.Configured() {
		return "", ErrMissingSecret
	}
	if storeID == "" {
		return "", ErrEmptyStoreID
	}

	now := c.now()
	claims := &SessionClaims{
		StoreID: storeID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Decode verifies tokenString and returns the store it was issued for.
func (c *SessionTokenCodec) Decode(tokenString string) (string, error) {
	if !c.Configured() {
		return "", ErrMissingSecret
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.StoreID == "" {
		return "", fmt.Errorf("%w: missing store claim", ErrInvalidToken)
	}
	return claims.StoreID, nil
}
