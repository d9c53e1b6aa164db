package scanplan

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/scanplan/inputs"
	"github.com/randalmurphal/scanplan/langsource"
	"github.com/randalmurphal/scanplan/language"
	"github.com/randalmurphal/scanplan/matrix"
	"github.com/randalmurphal/scanplan/notify"
	"github.com/randalmurphal/scanplan/render"
	"github.com/randalmurphal/scanplan/repoconfig"
	"github.com/randalmurphal/scanplan/testutil"
)

const lineaConfig = `pathsIgnored:
  - test
rulesExcluded:
  - js/log-injection
languages_config:
  - language: java-kotlin
    build_mode: manual
    build_command: ./gradlew :coordinator:app:build
    version: "21"
    distribution: temurin
  - language: cpp
    ignore: true
queries:
  - name: queries for linea
    uses: ./query-suites/linea-monorepo.qls
`

func newPlanner(t *testing.T) *Planner {
	t.Helper()
	return &Planner{ConfigDir: testutil.RepoConfigDir(t, map[string]string{
		"linea.yaml": lineaConfig,
	})}
}

func TestPlan_DetectedArrayWithScannerKeyedOverride(t *testing.T) {
	p := &Planner{}

	res, err := p.Plan(testutil.TestContext(t), Request{
		Detected:  json.RawMessage(`["javascript","java"]`),
		Overrides: json.RawMessage(`[{"language":"java-kotlin","build_mode":"manual","build_command":"./gradlew build","version":"21"}]`),
	})
	require.NoError(t, err)

	want := matrix.Plan{Include: []matrix.Entry{
		{Language: "javascript-typescript"},
		{Language: "java-kotlin", BuildMode: "manual", BuildCommand: "./gradlew build", Version: "21"},
		{Language: "actions"},
	}}
	if diff := cmp.Diff(want, res.Plan); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, res.ConfigSource)
	assert.NotEmpty(t, res.RunID)
}

func TestPlan_HostMappingIsClassified(t *testing.T) {
	p := newPlanner(t)

	res, err := p.Plan(testutil.TestContext(t), Request{
		Detected: json.RawMessage(`{"Kotlin": 5000, "Java": 200, "Shell": 10}`),
		Repo:     "consensys/linea",
	})
	require.NoError(t, err)

	assert.Equal(t, []language.Identifier{language.Java}, res.Detected)
	assert.Equal(t, repoconfig.SourceRepo, res.ConfigSource)

	want := []matrix.Entry{
		{
			Language:     "java-kotlin",
			BuildMode:    "manual",
			BuildCommand: "./gradlew :coordinator:app:build",
			Version:      "21",
			Distribution: "temurin",
		},
		{Language: "actions"},
	}
	if diff := cmp.Diff(want, res.Plan.Include); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestPlan_RepoIgnoreRemovesLanguage(t *testing.T) {
	p := newPlanner(t)
	ctx, rec := testutil.RecordingContext(t)

	res, err := p.Plan(ctx, Request{
		Detected: json.RawMessage(`["cpp","go"]`),
		Repo:     "consensys/linea",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "actions"}, res.Plan.Languages())
	assert.Len(t, rec.OfType(notify.EventLanguageIgnored), 1)
	assert.Len(t, rec.OfType(notify.EventPlanBuilt), 1)
}

func TestPlan_InputOverridesWinOverRepoFile(t *testing.T) {
	p := newPlanner(t)

	res, err := p.Plan(testutil.TestContext(t), Request{
		Detected:  json.RawMessage(`["java"]`),
		Overrides: json.RawMessage(`[{"language":"java-kotlin","version":"17"}]`),
		Repo:      "consensys/linea",
	})
	require.NoError(t, err)

	require.Len(t, res.Plan.Include, 2)
	got := res.Plan.Include[0]
	assert.Equal(t, "java-kotlin", got.Language)
	assert.Equal(t, "17", got.Version)
	assert.Equal(t, "./gradlew :coordinator:app:build", got.BuildCommand)
	assert.Equal(t, "temurin", got.Distribution)
}

func TestPlan_UnknownRepoUsesBuiltin(t *testing.T) {
	p := newPlanner(t)

	res, err := p.Plan(testutil.TestContext(t), Request{
		Detected: json.RawMessage(`["python"]`),
		Repo:     "someone/else",
	})
	require.NoError(t, err)

	assert.Equal(t, repoconfig.SourceBuiltin, res.ConfigSource)
	assert.Equal(t, []string{"python", "actions"}, res.Plan.Languages())
}

func TestPlan_NullDetectedFallsBack(t *testing.T) {
	res, err := (&Planner{}).Plan(testutil.TestContext(t), Request{Detected: json.RawMessage(`null`)})
	require.NoError(t, err)

	assert.Equal(t, []language.Identifier{language.Fallback}, res.Detected)
	assert.Equal(t, []string{"javascript-typescript", "actions"}, res.Plan.Languages())
}

func TestPlan_EmptyArrayStillHasActions(t *testing.T) {
	res, err := (&Planner{}).Plan(testutil.TestContext(t), Request{Detected: json.RawMessage(`[]`)})
	require.NoError(t, err)

	assert.Equal(t, []string{"actions"}, res.Plan.Languages())
}

func TestPlan_MalformedArguments(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{"missing detected", Request{}},
		{"invalid detected JSON", Request{Detected: json.RawMessage(`["go"`)}},
		{"detected string", Request{Detected: json.RawMessage(`"go"`)}},
		{"detected array of numbers", Request{Detected: json.RawMessage(`[1, 2]`)}},
		{"invalid overrides JSON", Request{Detected: json.RawMessage(`["go"]`), Overrides: json.RawMessage(`{`)}},
		{"overrides not an array", Request{Detected: json.RawMessage(`["go"]`), Overrides: json.RawMessage(`{"language":"go"}`)}},
		{"override not an object", Request{Detected: json.RawMessage(`["go"]`), Overrides: json.RawMessage(`["go"]`)}},
		{"override with bad build mode", Request{Detected: json.RawMessage(`["go"]`), Overrides: json.RawMessage(`[{"language":"go","build_mode":"fast"}]`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&Planner{}).Plan(testutil.TestContext(t), tt.req)
			assert.True(t, errors.Is(err, ErrMalformedArgument), "error = %v", err)
		})
	}
}

func TestPlan_OverrideWithoutLanguageIsSkipped(t *testing.T) {
	ctx, rec := testutil.RecordingContext(t)

	res, err := (&Planner{}).Plan(ctx, Request{
		Detected:  json.RawMessage(`["go"]`),
		Overrides: json.RawMessage(`[{"version":"1"},{"language":"go","version":"1.24"}]`),
	})
	require.NoError(t, err)

	require.Len(t, res.Overrides, 1)
	assert.Equal(t, "1.24", res.Plan.Include[0].Version)

	dropped := rec.OfType(notify.EventLanguageDropped)
	require.Len(t, dropped, 1)
	assert.Equal(t, 0, dropped[0].Metadata["index"])
}

func TestPlan_InputIgnoreFalseRestoresRepoIgnoredLanguage(t *testing.T) {
	p := newPlanner(t)

	res, err := p.Plan(testutil.TestContext(t), Request{
		Detected:  json.RawMessage(`["cpp"]`),
		Overrides: json.RawMessage(`[{"language":"cpp","ignore":false}]`),
		Repo:      "consensys/linea",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"cpp", "actions"}, res.Plan.Languages())
}

func TestPlan_InputClearsDefaultBuildCommand(t *testing.T) {
	res, err := (&Planner{}).Plan(testutil.TestContext(t), Request{
		Detected:  json.RawMessage(`["java"]`),
		Overrides: json.RawMessage(`[{"language":"java-kotlin","build_mode":"none","build_command":""}]`),
	})
	require.NoError(t, err)

	want := []matrix.Entry{{Language: "java-kotlin", BuildMode: "none"}, {Language: "actions"}}
	if diff := cmp.Diff(want, res.Plan.Include); diff != "" {
		t.Errorf("plan mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRunID(t *testing.T) {
	a, b := NewRunID(), NewRunID()
	assert.Len(t, a, 21)
	assert.NotEqual(t, a, b)
}

func TestGenerate_Template(t *testing.T) {
	dir := testutil.WriteTree(t, map[string]string{"short.tmpl": "{{ .Repo }} {{ .Language }}"})
	p := &Planner{Renderer: render.New(dir), Template: "short"}

	gen, err := p.Generate(testutil.TestContext(t), inputs.Params{Repo: "o/r", Language: "go"})
	require.NoError(t, err)
	assert.Equal(t, "o/r go\n", gen.Document)

	p.Template = "missing"
	_, err = p.Generate(testutil.TestContext(t), inputs.Params{Repo: "o/r", Language: "go"})
	assert.True(t, errors.Is(err, render.ErrTemplateNotFound))
}

func TestPlan_UsesPlannerNotifierAndRunID(t *testing.T) {
	rec := &notify.RecordingNotifier{}
	p := &Planner{Notifier: rec}

	res, err := p.Plan(context.Background(), Request{Detected: json.RawMessage(`["go"]`)})
	require.NoError(t, err)

	built := rec.OfType(notify.EventPlanBuilt)
	require.Len(t, built, 1)
	assert.Equal(t, res.RunID, built[0].RunID)
}

func TestGenerate(t *testing.T) {
	p := newPlanner(t)
	ctx, rec := testutil.RecordingContext(t)

	gen, err := p.Generate(ctx, inputs.Params{
		Repo:          "consensys/linea",
		Language:      "java-kotlin",
		Version:       "17",
		PathsIgnored:  []string{"vendor"},
		RulesExcluded: []string{"js/xss"},
	})
	require.NoError(t, err)

	assert.Equal(t, repoconfig.SourceRepo, gen.ConfigSource)
	assert.Equal(t, "manual", gen.Params.BuildMode)
	assert.Equal(t, "./gradlew :coordinator:app:build", gen.Params.BuildCommand)
	assert.Equal(t, "17", gen.Params.Version)
	assert.Equal(t, "temurin", gen.Params.Distribution)

	assert.Contains(t, gen.Document, `- "test"`)
	assert.Contains(t, gen.Document, `- "vendor"`)
	assert.Contains(t, gen.Document, `id: "js/log-injection"`)
	assert.Contains(t, gen.Document, `id: "js/xss"`)
	assert.Contains(t, gen.Document, `uses: "./query-suites/linea-monorepo.qls"`)

	outputs := gen.Outputs()
	assert.Equal(t, "java-kotlin", outputs["languages"])
	assert.Equal(t, "manual", outputs["build_mode"])
	for _, k := range OutputKeys {
		assert.Contains(t, outputs, k)
	}

	assert.Len(t, rec.OfType(notify.EventInputsResolved), 1)
	assert.Len(t, rec.OfType(notify.EventConfigLoaded), 1)
}

func TestGenerate_BuiltinWithoutConfigDir(t *testing.T) {
	gen, err := (&Planner{}).Generate(testutil.TestContext(t), inputs.Params{Repo: "o/r", Language: "python"})
	require.NoError(t, err)

	assert.Equal(t, repoconfig.SourceBuiltin, gen.ConfigSource)
	assert.Equal(t, repoconfig.Builtin(), gen.Config)
	assert.Empty(t, gen.Params.BuildMode)
	assert.Contains(t, gen.Document, `uses: "./query-suites/base.qls"`)
}

func TestGenerate_MissingRequired(t *testing.T) {
	_, err := (&Planner{}).Generate(testutil.TestContext(t), inputs.Params{Language: "go"})
	assert.True(t, errors.Is(err, ErrMissingRequired))
}

func TestDetect(t *testing.T) {
	p := &Planner{}

	src := &langsource.MockSource{LanguagesFunc: func(ctx context.Context, repo string) (map[string]int64, error) {
		return map[string]int64{"TypeScript": 10, "Go": 5, "HCL": 1}, nil
	}}
	got := p.Detect(testutil.TestContext(t), src, "o/r")
	assert.Equal(t, []language.Identifier{language.TypeScript, language.Go}, got)

	failing := &langsource.MockSource{LanguagesFunc: func(context.Context, string) (map[string]int64, error) {
		return nil, errors.New("boom")
	}}
	got = p.Detect(testutil.TestContext(t), failing, "o/r")
	assert.Equal(t, []language.Identifier{language.Fallback}, got)
}
