package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-session-secret-0123456789abcdef"

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.t
}

func newTestCodec(clock *fakeClock) *SessionTokenCodec {
	return NewSessionTokenCodec(testSecret, 30*24*time.Hour, WithClock(clock.Now))
}

func TestSessionTokenCodec_RoundTrip(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(clock)

	for _, storeID := range []string{"02", "26", "store-with-dash", "Ç"} {
		token, err := codec.Encode(storeID)
		require.NoError(t, err)

		got, err := codec.Decode(token)
		require.NoError(t, err)
		assert.Equal(t, storeID, got)
	}
}

func TestSessionTokenCodec_Expiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(clock)

	token, err := codec.Encode("02")
	require.NoError(t, err)

	clock.t = clock.t.Add(30*24*time.Hour - time.Minute)
	_, err = codec.Decode(token)
	assert.NoError(t, err, "still valid just before ttl")

	clock.t = clock.t.Add(2 * time.Minute)
	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionTokenCodec_TamperedSignature(t *testing.T) {
	clock := &fakeClock{t: time.Now().UTC()}
	codec := newTestCodec(clock)

	token, err := codec.Encode("02")
	require.NoError(t, err)

	sigStart := strings.LastIndex(token, ".") + 1
	for i := sigStart; i < len(token); i++ {
		b := []byte(token)
		if b[i] == 'A' {
			b[i] = 'B'
		} else {
			b[i] = 'A'
		}
		_, err := codec.Decode(string(b))
		assert.ErrorIs(t, err, ErrInvalidToken, "flipped byte at %d", i)
	}
}

func TestSessionTokenCodec_RejectsForeignTokens(t *testing.T) {
	clock := &fakeClock{t: time.Now().UTC()}
	codec := newTestCodec(clock)
	exp := jwt.NewNumericDate(clock.t.Add(time.Hour))

	otherSecret, err := NewSessionTokenCodec("another-secret", time.Hour, WithClock(clock.Now)).Encode("02")
	require.NoError(t, err)

	noStore, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &SessionClaims{StoreID: "02"}).
		SignedString([]byte(testSecret))
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &SessionClaims{
		StoreID:          "02",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &SessionClaims{
		StoreID:          "02",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: exp},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"empty":          "",
		"garbage":        "not-a-token",
		"other secret":   otherSecret,
		"no store claim": noStore,
		"no expiry":      noExpiry,
		"hs512":          hs512,
		"alg none":       unsigned,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decode(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestSessionTokenCodec_IgnoresUnknownClaims(t *testing.T) {
	clock := &fakeClock{t: time.Now().UTC()}
	codec := newTestCodec(clock)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"storeId": "03",
		"exp":     clock.t.Add(time.Hour).Unix(),
		"role":    "admin",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	got, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "03", got)
}

func TestSessionTokenCodec_Misconfigured(t *testing.T) {
	codec := NewSessionTokenCodec("", time.Hour)

	_, err := codec.Encode("02")
	assert.ErrorIs(t, err, ErrMissingSecret)
	_, err = codec.Decode("x.y.z")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestSessionTokenCodec_EmptyStoreID(t *testing.T) {
	codec := NewSessionTokenCodec(testSecret, time.Hour)
	_, err := codec.Encode("")
	assert.ErrorIs(t, err, ErrEmptyStoreID)
}
