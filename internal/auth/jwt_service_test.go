package auth

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "vetclinic/internal/errors"
)

const testSecret = "test-secret"

func newTestJWTService(t *testing.T, now time.Time) *JWTService {
	t.Helper()
	s, err := NewJWTService(testSecret, "HS256", 30*time.Minute)
	require.NoError(t, err)
	s.now = func() time.Time { return now }
	return s
}

func TestNewJWTService_RejectsBadConfig(t *testing.T) {
	_, err := NewJWTService(testSecret, "RS256", time.Minute)
	assert.Error(t, err)
	_, err = NewJWTService(testSecret, "none", time.Minute)
	assert.Error(t, err)
	_, err = NewJWTService("", "HS256", time.Minute)
	assert.Error(t, err)
	_, err = NewJWTService(testSecret, "HS512", 0)
	assert.Error(t, err)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	issuedAt := time.Unix(1_700_000_000, 0)
	s := newTestJWTService(t, issuedAt)

	token, err := s.IssueDefault("demo")
	require.NoError(t, err)

	claims, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "demo", claims.Subject)
	assert.Equal(t, issuedAt.Add(30*time.Minute).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Unix(1_700_000_000, 0)
	ttl := 10 * time.Minute
	s := newTestJWTService(t, issuedAt)

	token, err := s.Issue("demo", ttl)
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr bool
	}{
		{name: "just before expiry", at: issuedAt.Add(ttl - time.Second)},
		{name: "at expiry", at: issuedAt.Add(ttl), wantErr: true},
		{name: "after expiry", at: issuedAt.Add(ttl + time.Second), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.now = func() time.Time { return tt.at }
			_, err := s.Verify(token)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	s := newTestJWTService(t, now)
	valid := jwt.RegisteredClaims{
		Subject:   "demo",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	wrongKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, valid).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, valid).SignedString([]byte(testSecret))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, valid).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "demo",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	good, err := s.IssueDefault("demo")
	require.NoError(t, err)
	parts := strings.Split(good, ".")
	forged := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"admin","exp":9999999999}`))
	tampered := parts[0] + "." + forged + "." + parts[2]

	tokens := map[string]string{
		"wrong key":  wrongKey,
		"wrong alg":  wrongAlg,
		"alg none":   unsigned,
		"no subject": noSubject,
		"no expiry":  noExpiry,
		"tampered":   tampered,
		"garbage":    "not-a-token",
		"empty":      "",
	}
	for name, token := range tokens {
		t.Run(name, func(t *testing.T) {
			claims, err := s.Verify(token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
		})
	}
}
