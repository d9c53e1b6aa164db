package auth

import "errors"

// Authentication errors.
var (
	// ErrInvalidAppConfig indicates a missing app ID, installation ID or key.
	ErrInvalidAppConfig = errors.New("invalid GitHub App configuration")

	// ErrInvalidPrivateKey indicates the private key is not an RSA PEM key.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrTokenExchange indicates GitHub refused to issue an installation token.
	ErrTokenExchange = errors.New("installation token exchange failed")
)
