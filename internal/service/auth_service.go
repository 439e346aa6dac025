package service

import (
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/robinboard/api/internal/models"
	"github.com/robinboard/api/pkg/config"
	appErrors "github.com/robinboard/api/pkg/errors"
)

// AuthService issues and verifies the admin session token. There is a
// single shared admin secret; the session carries only a role claim.
type AuthService struct {
	cfg    config.AuthConfig
	logger *zap.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(cfg config.AuthConfig, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{cfg: cfg, logger: logger}
}

// Login checks the shared admin password and returns a signed session
// token. Prefers the bcrypt hash when configured; otherwise falls back
// to a constant-time comparison against the plaintext secret.
func (s *AuthService) Login(password string) (string, error) {
	if password == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "Şifre girilmedi")
	}

	switch {
	case s.cfg.AdminPasswordHash != "":
		if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)); err != nil {
			return "", appErrors.Clone(appErrors.ErrUnauthorized, "Hatalı şifre")
		}
	case s.cfg.AdminPassword != "":
		if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) != 1 {
			return "", appErrors.Clone(appErrors.ErrUnauthorized, "Hatalı şifre")
		}
	default:
		return "", appErrors.Clone(appErrors.ErrInternal, "Sunucu hatası: ADMIN_PASSWORD eksik")
	}

	now := time.Now().UTC()
	claims := models.SessionClaims{
		Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "robinboard",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.SessionExpiration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Oturum oluşturulamadı")
	}
	return signed, nil
}

// ValidateToken parses and verifies a session token.
func (s *AuthService) ValidateToken(raw string) (*models.SessionClaims, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrUnauthorized
		}
		return []byte(s.cfg.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "Geçersiz oturum")
	}
	return claims, nil
}

// CookieName returns the session cookie name.
func (s *AuthService) CookieName() string {
	return s.cfg.CookieName
}

// CookieMaxAge returns the session cookie lifetime in seconds.
func (s *AuthService) CookieMaxAge() int {
	return int(s.cfg.SessionExpiration.Seconds())
}

// CookieSecure reports whether the cookie requires TLS.
func (s *AuthService) CookieSecure() bool {
	return s.cfg.CookieSecure
}
