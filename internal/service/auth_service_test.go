package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/robinboard/api/internal/models"
	"github.com/robinboard/api/pkg/config"
	appErrors "github.com/robinboard/api/pkg/errors"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AdminPassword:     "sifre123",
		SessionSecret:     "test-secret",
		SessionExpiration: time.Hour,
		CookieName:        "robinboard_session",
	}
}

func TestAuthServiceLoginIssuesValidToken(t *testing.T) {
	service := NewAuthService(testAuthConfig(), nil)

	token, err := service.Login("sifre123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.True(t, claims.IsAdmin())
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	service := NewAuthService(testAuthConfig(), nil)
	_, err := service.Login("yanlis")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Status, appErrors.FromError(err).Status)
}

func TestAuthServiceLoginEmptyPassword(t *testing.T) {
	service := NewAuthService(testAuthConfig(), nil)
	_, err := service.Login("")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
}

func TestAuthServiceLoginUnconfigured(t *testing.T) {
	cfg := testAuthConfig()
	cfg.AdminPassword = ""
	service := NewAuthService(cfg, nil)
	_, err := service.Login("sifre123")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Status, appErrors.FromError(err).Status)
}

func TestAuthServiceLoginPrefersBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("gizli"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := testAuthConfig()
	cfg.AdminPasswordHash = string(hash)
	service := NewAuthService(cfg, nil)

	_, err = service.Login("gizli")
	require.NoError(t, err)
	_, err = service.Login("sifre123")
	require.Error(t, err, "plaintext secret must be ignored once a hash is configured")
}

func TestAuthServiceValidateTokenRejectsGarbage(t *testing.T) {
	service := NewAuthService(testAuthConfig(), nil)
	_, err := service.ValidateToken("not.a.token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Status, appErrors.FromError(err).Status)
}

func TestAuthServiceValidateTokenRejectsForeignSignature(t *testing.T) {
	issuer := NewAuthService(testAuthConfig(), nil)
	token, err := issuer.Login("sifre123")
	require.NoError(t, err)

	cfg := testAuthConfig()
	cfg.SessionSecret = "other-secret"
	verifier := NewAuthService(cfg, nil)
	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}
