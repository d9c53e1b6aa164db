// Package auth authenticates as a GitHub App.
//
// A GitHub App signs a short-lived JWT with its private key and exchanges
// it for an installation access token, which is then used like a personal
// access token:
//
//	cfg := auth.AppConfig{
//	    AppID:          12345,
//	    InstallationID: 67890,
//	    PrivateKey:     pemBytes,
//	}
//	token, err := auth.InstallationToken(ctx, cfg)
package auth
