package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/scanplan/auth"
	"github.com/randalmurphal/scanplan/config"
	clierrors "github.com/randalmurphal/scanplan/errors"
	"github.com/randalmurphal/scanplan/langsource"
)

type detectOptions struct {
	platform       string
	path           string
	gitlabURL      string
	appID          int64
	installationID int64
	privateKey     string
}

func newDetectCmd(a *app) *cobra.Command {
	var opts detectOptions

	cmd := &cobra.Command{
		Use:   "detect <owner/repo> [token]",
		Short: "Print the repository's scannable languages as a JSON list",
		Long: `Fetch the languages of a repository and classify them.

The token argument overrides github_token/gitlab_token. On GitHub, a GitHub
App installation token is minted when no token is given and an app ID,
installation ID and private key are configured. Fetch failures are logged
and classify as nothing detected.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return clierrors.NewUsageError("detect takes a repository and an optional token", cmd.UseLine())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDetect(cmd.Context(), opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.platform, "platform", "", "hosting platform: github|gitlab|local (default from config)")
	cmd.Flags().StringVar(&opts.path, "path", "", "checkout root for --platform local (default: current directory)")
	cmd.Flags().StringVar(&opts.gitlabURL, "gitlab-url", "", "self-hosted GitLab base URL")
	cmd.Flags().Int64Var(&opts.appID, "app-id", 0, "GitHub App ID")
	cmd.Flags().Int64Var(&opts.installationID, "installation-id", 0, "GitHub App installation ID")
	cmd.Flags().StringVar(&opts.privateKey, "private-key", "", "path to the GitHub App private key (PEM)")

	return cmd
}

func (a *app) runDetect(ctx context.Context, opts detectOptions, args []string) error {
	repo := args[0]
	opts = a.detectDefaults(opts, repo)

	platform := langsource.Platform(opts.platform)
	if platform != langsource.PlatformLocal {
		if _, _, err := langsource.ParseRepo(repo); err != nil {
			return clierrors.NewMalformedArgumentError("repository", err)
		}
	}

	var token string
	if len(args) > 1 {
		token = args[1]
	}
	token, err := a.detectToken(ctx, platform, token, opts)
	if err != nil {
		return err
	}

	sourceOpts := langsource.Options{Token: token, Path: opts.path}
	if platform == langsource.PlatformGitLab {
		sourceOpts.BaseURL = opts.gitlabURL
	}
	src, err := langsource.New(platform, sourceOpts)
	if errors.Is(err, langsource.ErrUnknownPlatform) {
		return clierrors.NewUsageError(err.Error(), "--platform github|gitlab|local")
	}
	if err != nil {
		return fmt.Errorf("create language source: %w", err)
	}

	detected := a.planner(a.settings.ConfigDir).Detect(ctx, src, repo)
	return json.NewEncoder(a.stdout).Encode(detected)
}

// detectDefaults fills unset flags from the resolved settings. A platform
// nobody configured is inferred from the repository remote when possible.
func (a *app) detectDefaults(opts detectOptions, repo string) detectOptions {
	if opts.platform == "" {
		opts.platform = a.settings.Platform
		if a.resolved == nil || a.resolved.Source(config.KeyPlatform) == config.SourceDefault {
			if p, err := langsource.DetectPlatform(repo); err == nil {
				opts.platform = string(p)
			}
		}
	}
	if opts.gitlabURL == "" {
		opts.gitlabURL = a.settings.GitLabURL
	}
	if opts.appID == 0 {
		opts.appID = a.settings.AppID
	}
	if opts.installationID == 0 {
		opts.installationID = a.settings.InstallationID
	}
	if opts.privateKey == "" {
		opts.privateKey = a.settings.PrivateKeyPath
	}
	if opts.platform == string(langsource.PlatformLocal) && opts.path == "" {
		opts.path = "."
	}
	return opts
}

func (a *app) detectToken(ctx context.Context, platform langsource.Platform, explicit string, opts detectOptions) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	switch platform {
	case langsource.PlatformGitLab:
		return a.settings.GitLabToken, nil
	case langsource.PlatformGitHub:
		if a.settings.GitHubToken != "" || opts.appID == 0 {
			return a.settings.GitHubToken, nil
		}
	default:
		return "", nil
	}

	key, err := os.ReadFile(opts.privateKey)
	if err != nil {
		return "", clierrors.NewMalformedArgumentError("private-key", err)
	}
	token, err := auth.InstallationToken(ctx, auth.AppConfig{
		AppID:          opts.appID,
		InstallationID: opts.installationID,
		PrivateKey:     key,
	})
	if err != nil {
		err = clierrors.WrapAuthError(err, "github.com")
		return "", clierrors.WrapConnectionError(err, "https://api.github.com")
	}
	return token, nil
}
