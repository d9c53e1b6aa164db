package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	nanoid "github.com/matoous/go-nanoid/v2"
)

// App JWT timing. GitHub rejects tokens valid for more than ten minutes.
// iat is backdated to tolerate clock drift.
const (
	AppJWTTTL      = 9 * time.Minute
	AppJWTBackdate = 60 * time.Second
)

// AppConfig identifies a GitHub App installation.
type AppConfig struct {
	AppID          int64
	InstallationID int64

	// PrivateKey is the app's PEM-encoded RSA key.
	PrivateKey []byte

	// BaseURL selects a GitHub Enterprise instance. Empty uses github.com.
	BaseURL string
}

// Validate checks that every field needed for token exchange is set.
func (c AppConfig) Validate() error {
	switch {
	case c.AppID <= 0:
		return fmt.Errorf("%w: app ID is required", ErrInvalidAppConfig)
	case c.InstallationID <= 0:
		return fmt.Errorf("%w: installation ID is required", ErrInvalidAppConfig)
	case len(c.PrivateKey) == 0:
		return fmt.Errorf("%w: private key is required", ErrInvalidAppConfig)
	}
	return nil
}

// AppJWT creates an RS256 JWT that authenticates as the app itself.
func AppJWT(cfg AppConfig) (string, error) {
	return appJWTAt(cfg, time.Now())
}

func appJWTAt(cfg AppConfig, now time.Time) (string, error) {
	if cfg.AppID <= 0 {
		return "", fmt.Errorf("%w: app ID is required", ErrInvalidAppConfig)
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(cfg.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}

	tokenID, err := nanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate token ID: %w", err)
	}

	claims := jwt.RegisteredClaims{
		Issuer:    strconv.FormatInt(cfg.AppID, 10),
		IssuedAt:  jwt.NewNumericDate(now.Add(-AppJWTBackdate)),
		ExpiresAt: jwt.NewNumericDate(now.Add(AppJWTTTL)),
		ID:        tokenID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign app JWT: %w", err)
	}
	return signed, nil
}
