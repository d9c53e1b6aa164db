package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Setting keys.
const (
	KeyConfigDir      = "config_dir"
	KeyTemplateDir    = "template_dir"
	KeyPlatform       = "platform"
	KeyGitLabURL      = "gitlab_url"
	KeyGitHubToken    = "github_token"
	KeyGitLabToken    = "gitlab_token"
	KeyAppID          = "app_id"
	KeyInstallationID = "installation_id"
	KeyPrivateKeyPath = "private_key_path"
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
	KeyOutputFile     = "output_file"
	KeyWorkspace      = "workspace"
	KeyWebhookURL     = "webhook_url"
)

// Keys lists every setting in display order.
var Keys = []string{
	KeyConfigDir,
	KeyTemplateDir,
	KeyPlatform,
	KeyGitLabURL,
	KeyGitHubToken,
	KeyGitLabToken,
	KeyAppID,
	KeyInstallationID,
	KeyPrivateKeyPath,
	KeyLogLevel,
	KeyLogFormat,
	KeyOutputFile,
	KeyWorkspace,
	KeyWebhookURL,
}

// Secret reports whether key holds a credential that must not be printed.
func Secret(key string) bool {
	return key == KeyGitHubToken || key == KeyGitLabToken
}

// ErrInvalidValue indicates a setting that could not be parsed.
var ErrInvalidValue = errors.New("invalid config value")

// Settings is the typed view of a resolved configuration.
type Settings struct {
	ConfigDir      string
	TemplateDir    string
	Platform       string
	GitLabURL      string
	GitHubToken    string
	GitLabToken    string
	AppID          int64
	InstallationID int64
	PrivateKeyPath string
	LogLevel       string
	LogFormat      string
	OutputFile     string
	Workspace      string
	WebhookURL     string
}

// ScanplanConfig returns the resolver configuration for the scanplan CLI.
// configFile, when non-empty, replaces the local .scanplan.yaml.
func ScanplanConfig(configFile string, errWriter io.Writer) ResolverConfig {
	return ResolverConfig{
		EnvPrefix: "SCANPLAN_",
		EnvFallbacks: map[string][]string{
			KeyGitHubToken: {"GITHUB_TOKEN", "GH_TOKEN"},
			KeyGitLabToken: {"GITLAB_TOKEN"},
			KeyOutputFile:  {"GITHUB_OUTPUT"},
			KeyWorkspace:   {"GITHUB_WORKSPACE"},
		},
		GlobalConfigDir: "scanplan",
		LocalConfigName: ".scanplan.yaml",
		ConfigFile:      configFile,
		Defaults: map[string]string{
			KeyConfigDir: "repo-configs",
			KeyPlatform:  "github",
			KeyLogLevel:  "info",
			KeyLogFormat: "text",
		},
		ValidKeys: Keys,
		ErrWriter: errWriter,
	}
}

// SettingsFrom converts resolved values into Settings.
func SettingsFrom(r *Resolved) (Settings, error) {
	s := Settings{
		ConfigDir:      r.Get(KeyConfigDir),
		TemplateDir:    r.Get(KeyTemplateDir),
		Platform:       r.Get(KeyPlatform),
		GitLabURL:      r.Get(KeyGitLabURL),
		GitHubToken:    r.Get(KeyGitHubToken),
		GitLabToken:    r.Get(KeyGitLabToken),
		PrivateKeyPath: r.Get(KeyPrivateKeyPath),
		LogLevel:       r.Get(KeyLogLevel),
		LogFormat:      r.Get(KeyLogFormat),
		OutputFile:     r.Get(KeyOutputFile),
		Workspace:      r.Get(KeyWorkspace),
		WebhookURL:     r.Get(KeyWebhookURL),
	}

	var err error
	if s.AppID, err = parseID(r, KeyAppID); err != nil {
		return Settings{}, err
	}
	if s.InstallationID, err = parseID(r, KeyInstallationID); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func parseID(r *Resolved, key string) (int64, error) {
	v := r.Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s=%q (from %s) must be a positive integer", ErrInvalidValue, key, v, r.Source(key))
	}
	return n, nil
}
