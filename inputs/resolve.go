package inputs

import (
	"context"

	"github.com/randalmurphal/scanplan/notify"
	"github.com/randalmurphal/scanplan/repoconfig"
)

// Resolve fills build parameters missing from explicit with the values of
// the repo config's override for explicit.Language.
//
// An empty string counts as missing. Workflows pass unset inputs as "",
// so "" must fall through to the repo file; callers cannot use "" to blank
// out a value the repo file sets. This is deliberate and covered by tests.
func Resolve(ctx context.Context, explicit Params, cfg repoconfig.Config) Params {
	if explicit.Language == "" {
		return explicit
	}

	override, ok := cfg.LanguageConfig(explicit.Language)
	if !ok {
		return explicit
	}

	resolved := explicit
	var filled []string

	if resolved.BuildMode == "" && override.BuildMode != "" {
		resolved.BuildMode = string(override.BuildMode)
		filled = append(filled, "build_mode")
	}
	if resolved.BuildCommand == "" && override.BuildCommand != "" {
		resolved.BuildCommand = override.BuildCommand
		filled = append(filled, "build_command")
	}
	if resolved.Version == "" && override.Version != "" {
		resolved.Version = override.Version
		filled = append(filled, "version")
	}
	if resolved.Distribution == "" && override.Distribution != "" {
		resolved.Distribution = override.Distribution
		filled = append(filled, "distribution")
	}

	if len(filled) > 0 {
		notify.Emit(ctx, notify.Event{
			Type:     notify.EventInputsResolved,
			Repo:     explicit.Repo,
			Language: explicit.Language,
			Message:  "filled missing inputs from repo config",
			Metadata: map[string]any{"fields": filled},
		})
	}
	return resolved
}
