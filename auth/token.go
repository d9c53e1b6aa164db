package auth

import (
	"context"
	"fmt"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// InstallationToken exchanges an app JWT for an installation access token.
func InstallationToken(ctx context.Context, cfg AppConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	appToken, err := AppJWT(cfg)
	if err != nil {
		return "", err
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: appToken, TokenType: "Bearer"})
	client := github.NewClient(oauth2.NewClient(ctx, ts))
	if cfg.BaseURL != "" {
		client, err = client.WithEnterpriseURLs(cfg.BaseURL, cfg.BaseURL)
		if err != nil {
			return "", fmt.Errorf("configure GitHub URL: %w", err)
		}
	}

	tok, _, err := client.Apps.CreateInstallationToken(ctx, cfg.InstallationID, nil)
	if err != nil {
		return "", fmt.Errorf("%w: installation %d: %v", ErrTokenExchange, cfg.InstallationID, err)
	}
	if tok.GetToken() == "" {
		return "", fmt.Errorf("%w: empty token for installation %d", ErrTokenExchange, cfg.InstallationID)
	}
	return tok.GetToken(), nil
}
