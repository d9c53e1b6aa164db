package langsource

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	clierrors "github.com/randalmurphal/scanplan/errors"
	"github.com/randalmurphal/scanplan/notify"
)

// Source reports the languages of a repository.
type Source interface {
	// Languages returns language names mapped to byte counts. repo is
	// "owner/name"; sources that read a local tree may ignore it.
	Languages(ctx context.Context, repo string) (map[string]int64, error)
}

// Platform names a kind of Source.
type Platform string

// Supported platforms.
const (
	PlatformGitHub Platform = "github"
	PlatformGitLab Platform = "gitlab"
	PlatformLocal  Platform = "local"
)

// Options configures New. Fields that do not apply to the chosen platform
// are ignored.
type Options struct {
	// Token authenticates API requests. Empty means anonymous access.
	Token string

	// BaseURL points at a self-hosted instance (GitHub Enterprise or a
	// GitLab host). Empty uses the public service.
	BaseURL string

	// Path is the checkout root for PlatformLocal.
	Path string

	// HTTPClient is used for API requests when Token is empty.
	HTTPClient *http.Client
}

// New creates a Source for platform.
func New(platform Platform, opts Options) (Source, error) {
	switch platform {
	case PlatformGitHub:
		return NewGitHubSource(opts.Token, opts.BaseURL, opts.HTTPClient)
	case PlatformGitLab:
		return NewGitLabSource(opts.Token, opts.BaseURL, opts.HTTPClient)
	case PlatformLocal:
		return NewLocalSource(opts.Path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, platform)
	}
}

// Fetch returns the languages src reports for repo. Any failure is logged
// and reported as a source_failed event carrying a failure reason (auth,
// connection or other), and an empty mapping is returned instead. Fetch
// never fails.
func Fetch(ctx context.Context, src Source, repo string) map[string]int64 {
	langs, err := src.Languages(ctx, repo)
	if err != nil {
		reason := failureReason(err)
		slog.Warn("failed to fetch repository languages", "repo", repo, "reason", reason, "error", err)
		notify.Emit(ctx, notify.Event{
			Type:     notify.EventSourceFailed,
			Repo:     repo,
			Message:  fmt.Sprintf("language fetch failed: %v", err),
			Severity: notify.SeverityWarning,
			Metadata: map[string]any{"reason": reason},
		})
		return map[string]int64{}
	}
	if langs == nil {
		return map[string]int64{}
	}
	return langs
}

func failureReason(err error) string {
	switch {
	case clierrors.IsAuthError(err):
		return "auth"
	case clierrors.IsConnectionError(err):
		return "connection"
	default:
		return "other"
	}
}
