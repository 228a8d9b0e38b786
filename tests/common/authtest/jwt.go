package authtest

import (
	"testing"
	"time"

	"club-booking/internal/domain/auth"
	"club-booking/internal/pkg/config"
	"club-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, role auth.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Duration).GenerateToken("e2e-"+role.String(), role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, role auth.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond).GenerateToken("e2e-"+role.String(), role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
