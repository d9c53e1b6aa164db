package scanplan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	nanoid "github.com/matoous/go-nanoid/v2"

	"github.com/randalmurphal/scanplan/inputs"
	"github.com/randalmurphal/scanplan/langsource"
	"github.com/randalmurphal/scanplan/language"
	"github.com/randalmurphal/scanplan/matrix"
	"github.com/randalmurphal/scanplan/notify"
	"github.com/randalmurphal/scanplan/render"
	"github.com/randalmurphal/scanplan/repoconfig"
)

// Planner resolves scan plans and scanner configurations.
type Planner struct {
	// ConfigDir holds per-repository config files. Empty means every
	// repository uses the built-in configuration.
	ConfigDir string

	// Renderer renders the scanner configuration. Defaults to the
	// embedded templates.
	Renderer *render.Renderer

	// Template names the scan configuration template. Defaults to
	// render.DefaultTemplate.
	Template string

	// Notifier receives resolution events. Ignored when ctx already
	// carries one.
	Notifier notify.Notifier
}

// Request is the input to Plan.
type Request struct {
	// Detected is either a JSON array of language identifiers, used as-is,
	// or a JSON object of host language names to byte counts, which is
	// classified first. JSON null classifies as nothing detected.
	Detected json.RawMessage

	// Overrides is an optional JSON array of language job descriptors.
	Overrides json.RawMessage

	// Repo is "owner/name". When set, the repo config's languages_config
	// is merged under Overrides.
	Repo string
}

// Result is the outcome of Plan.
type Result struct {
	RunID     string
	Detected  []language.Identifier
	Overrides []language.Config
	Plan      matrix.Plan

	// ConfigSource is where repo overrides came from; empty when Repo was
	// not set.
	ConfigSource repoconfig.Source
}

// Generated is the outcome of Generate.
type Generated struct {
	RunID        string
	Params       inputs.Params
	Config       repoconfig.Config
	ConfigSource repoconfig.Source
	Document     string
}

// Output keys written by the generate step, in write order.
var OutputKeys = []string{"languages", "build_mode", "build_command", "version", "distribution"}

// Outputs returns the step outputs for the resolved inputs.
func (g *Generated) Outputs() map[string]any {
	return map[string]any{
		"languages":     g.Params.Language,
		"build_mode":    g.Params.BuildMode,
		"build_command": g.Params.BuildCommand,
		"version":       g.Params.Version,
		"distribution":  g.Params.Distribution,
	}
}

// NewRunID returns an identifier for one resolution run.
func NewRunID() string {
	return nanoid.Must()
}

func (p *Planner) withServices(ctx context.Context) (context.Context, string) {
	if p.Notifier != nil && notify.NotifierFromContext(ctx) == nil {
		ctx = notify.WithNotifier(ctx, p.Notifier)
	}
	runID := notify.RunIDFromContext(ctx)
	if runID == "" {
		runID = NewRunID()
		ctx = notify.WithRunID(ctx, runID)
	}
	return ctx, runID
}

func (p *Planner) loader() *repoconfig.Loader {
	return repoconfig.NewLoader(p.ConfigDir)
}

func (p *Planner) renderer() *render.Renderer {
	if p.Renderer != nil {
		return p.Renderer
	}
	return render.New()
}

// Plan builds the job matrix for req. Only malformed JSON fails.
func (p *Planner) Plan(ctx context.Context, req Request) (*Result, error) {
	ctx, runID := p.withServices(ctx)

	detected, err := decodeDetected(ctx, req.Detected)
	if err != nil {
		return nil, err
	}
	overrides, err := decodeOverrides(ctx, req.Overrides)
	if err != nil {
		return nil, err
	}

	res := &Result{RunID: runID, Detected: detected}
	if req.Repo != "" {
		loaded := p.loader().Resolve(ctx, req.Repo)
		overrides = matrix.MergeOverrides(loaded.Config.LanguagesConfig, overrides)
		res.ConfigSource = loaded.Source
	}
	res.Overrides = overrides
	res.Plan = matrix.Build(ctx, detected, overrides)

	slog.Debug("plan resolved", "run_id", runID, "repo", req.Repo, "languages", res.Plan.Languages())
	return res, nil
}

// Generate resolves one job's inputs against the repo config and renders
// its scanner configuration. It fails only when REPO or LANGUAGE is
// missing or the template cannot be rendered.
func (p *Planner) Generate(ctx context.Context, explicit inputs.Params) (*Generated, error) {
	ctx, runID := p.withServices(ctx)

	if err := inputs.Validate(explicit); err != nil {
		return nil, err
	}

	loaded := p.loader().Resolve(ctx, explicit.Repo)
	resolved := inputs.Resolve(ctx, explicit, loaded.Config)

	tmpl := p.Template
	if tmpl == "" {
		tmpl = render.DefaultTemplate
	}
	doc, err := p.renderer().Render(tmpl, render.Data{
		Repo:          resolved.Repo,
		Language:      resolved.Language,
		PathsIgnored:  concat(loaded.Config.PathsIgnored, resolved.PathsIgnored),
		RulesExcluded: concat(loaded.Config.RulesExcluded, resolved.RulesExcluded),
		Queries:       loaded.Config.Queries,
	})
	if err != nil {
		return nil, fmt.Errorf("render scan config: %w", err)
	}

	return &Generated{
		RunID:        runID,
		Params:       resolved,
		Config:       loaded.Config,
		ConfigSource: loaded.Source,
		Document:     doc,
	}, nil
}

// Detect fetches repo's languages from src and classifies them. Fetch
// failures classify as nothing detected.
func (p *Planner) Detect(ctx context.Context, src langsource.Source, repo string) []language.Identifier {
	ctx, _ = p.withServices(ctx)
	return language.Classify(ctx, langsource.Fetch(ctx, src, repo))
}

func decodeDetected(ctx context.Context, raw json.RawMessage) ([]language.Identifier, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: detected languages are required", ErrMalformedArgument)
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: detected languages: invalid JSON", ErrMalformedArgument)
	}

	switch raw[0] {
	case '[':
		var ids []language.Identifier
		if err := json.Unmarshal(raw, &ids); err != nil {
			return nil, fmt.Errorf("%w: detected languages: %v", ErrMalformedArgument, err)
		}
		return ids, nil
	case '{', 'n':
		return language.ClassifyJSON(ctx, raw), nil
	default:
		return nil, fmt.Errorf("%w: detected languages must be an array or object", ErrMalformedArgument)
	}
}

// decodeOverrides skips entries without a language. Any other invalid
// entry is malformed.
func decodeOverrides(ctx context.Context, raw json.RawMessage) ([]language.Config, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var decoded []language.Config
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("%w: overrides: %v", ErrMalformedArgument, err)
	}

	overrides := make([]language.Config, 0, len(decoded))
	for i, o := range decoded {
		err := o.Validate()
		if errors.Is(err, language.ErrMissingLanguage) {
			slog.Warn("skipping override without a language", "index", i)
			notify.Emit(ctx, notify.Event{
				Type:     notify.EventLanguageDropped,
				Message:  "override has no language, skipping",
				Severity: notify.SeverityWarning,
				Metadata: map[string]any{"index": i},
			})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%w: overrides[%d]: %v", ErrMalformedArgument, i, err)
		}
		overrides = append(overrides, o)
	}
	return overrides, nil
}

func concat(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
