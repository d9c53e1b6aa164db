package repoconfig

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/randalmurphal/scanplan/notify"
)

// DefaultName is the base name of the per-directory fallback config file.
const DefaultName = "default"

// Source indicates where a loaded configuration came from.
type Source string

// Configuration source constants.
const (
	// SourceRepo indicates the repository's own config file.
	SourceRepo Source = "repo"

	// SourceDefault indicates the directory's default config file.
	SourceDefault Source = "default"

	// SourceBuiltin indicates the compiled-in configuration.
	SourceBuiltin Source = "builtin"
)

// Result is a loaded configuration and its provenance.
type Result struct {
	Config Config
	Source Source
	Path   string // empty for SourceBuiltin

	// Err explains why the built-in configuration was used, if it was.
	Err error
}

// Loader finds and loads repository configuration files.
type Loader struct {
	// Dir holds <repo>.yaml|yml|hcl files and default.yaml|yml|hcl.
	Dir string

	// Logger receives load diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewLoader creates a loader for dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// Load returns the configuration for repoFullName ("owner/name"). It never
// fails: any problem degrades to Builtin() and is reported via the logger
// and the notifier in ctx.
func Load(ctx context.Context, repoFullName, dir string) Config {
	return NewLoader(dir).Load(ctx, repoFullName)
}

// Load returns the configuration for repoFullName. See the package-level Load.
func (l *Loader) Load(ctx context.Context, repoFullName string) Config {
	return l.Resolve(ctx, repoFullName).Config
}

// Resolve looks up <short-name>.{yaml,yml,hcl}, then default.{yaml,yml,hcl},
// in the loader's directory. A missing directory is treated like missing
// files. A file that exists but cannot be read, parsed or validated stops
// the lookup and yields the built-in configuration.
func (l *Loader) Resolve(ctx context.Context, repoFullName string) Result {
	if l.Dir == "" {
		return l.builtin(ctx, repoFullName, ErrNoConfigDir)
	}

	candidates := []struct {
		name   string
		source Source
	}{
		{ShortName(repoFullName), SourceRepo},
		{DefaultName, SourceDefault},
	}

	for _, c := range candidates {
		if c.name == "" {
			continue
		}
		path, data, err := l.read(c.name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return l.builtin(ctx, repoFullName, err)
		}

		cfg, err := Decode(path, data)
		if err != nil {
			return l.builtin(ctx, repoFullName, fmt.Errorf("load %s: %w", path, err))
		}

		l.logger().Debug("loaded repo config", "repo", repoFullName, "path", path, "source", c.source)
		notify.Emit(ctx, notify.Event{
			Type:     notify.EventConfigLoaded,
			Repo:     repoFullName,
			Message:  "repo config loaded",
			Severity: notify.SeverityDebug,
			Metadata: map[string]any{"path": path, "source": string(c.source)},
		})
		return Result{Config: cfg, Source: c.source, Path: path}
	}

	return l.builtin(ctx, repoFullName, ErrNotFound)
}

// read returns the first existing file named name+ext in the loader dir.
func (l *Loader) read(name string) (string, []byte, error) {
	for _, ext := range Extensions {
		path := filepath.Join(l.Dir, name+ext)
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return path, nil, fmt.Errorf("read %s: %w", path, err)
		}
		return path, data, nil
	}
	return "", nil, fs.ErrNotExist
}

func (l *Loader) builtin(ctx context.Context, repoFullName string, cause error) Result {
	severity := notify.SeverityWarning
	if errors.Is(cause, ErrNotFound) || errors.Is(cause, ErrNoConfigDir) {
		// Expected for repos without their own config.
		severity = notify.SeverityInfo
		l.logger().Info("no repo config found, using built-in config", "repo", repoFullName, "dir", l.Dir)
	} else {
		l.logger().Warn("error loading repo config, falling back to built-in config",
			"repo", repoFullName, "dir", l.Dir, "error", cause)
	}

	notify.Emit(ctx, notify.Event{
		Type:     notify.EventConfigFallback,
		Repo:     repoFullName,
		Message:  "using built-in config",
		Severity: severity,
		Metadata: map[string]any{"reason": cause.Error()},
	})
	return Result{Config: Builtin(), Source: SourceBuiltin, Err: cause}
}

// ShortName returns the repository name of "owner/name", or "" when the
// input has no owner separator or the name is not a plain file name.
func ShortName(repoFullName string) string {
	parts := strings.Split(repoFullName, "/")
	if len(parts) < 2 {
		return ""
	}
	name := parts[1]
	if name == "." || name == ".." || strings.ContainsAny(name, `\`) {
		return ""
	}
	return name
}
