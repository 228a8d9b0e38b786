package jwt

import (
	"testing"
	"time"

	"club-booking/internal/domain/auth"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("test-secret", time.Hour)

	token, err := svc.GenerateToken("kassenwart", auth.RoleTreasurer)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "kassenwart", claims.Name)
	assert.Equal(t, "treasurer", claims.Role)
	assert.NotEmpty(t, claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestService_Expired(t *testing.T) {
	svc := NewService("test-secret", time.Minute)
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateToken("orga", auth.RoleOrganizer)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestService_Invalid(t *testing.T) {
	svc := NewService("test-secret", time.Hour)
	other := NewService("other-secret", time.Hour)

	foreign, err := other.GenerateToken("orga", auth.RoleAdmin)
	require.NoError(t, err)

	unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, Claims{Role: "admin"}).
		SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "wrong secret", token: foreign},
		{name: "none algorithm", token: unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
