package render

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/scanplan/repoconfig"
)

type scanDocument struct {
	Name    string `yaml:"name"`
	Queries []struct {
		Name string `yaml:"name"`
		Uses string `yaml:"uses"`
	} `yaml:"queries"`
	PathsIgnore  []string `yaml:"paths-ignore"`
	QueryFilters []struct {
		Exclude struct {
			ID string `yaml:"id"`
		} `yaml:"exclude"`
	} `yaml:"query-filters"`
}

func TestRender_Default(t *testing.T) {
	r := New()
	cfg := repoconfig.Builtin()

	out, err := r.Render(DefaultTemplate, Data{
		Repo:          "consensys/linea",
		Language:      "python",
		PathsIgnored:  append(cfg.PathsIgnored, "vendor"),
		RulesExcluded: cfg.RulesExcluded,
		Queries:       cfg.Queries,
	})
	require.NoError(t, err)

	var doc scanDocument
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc), out)

	assert.Equal(t, "Python scan configuration for consensys/linea", doc.Name)
	assert.Equal(t, []string{"test", "vendor"}, doc.PathsIgnore)
	require.Len(t, doc.QueryFilters, 1)
	assert.Equal(t, "js/log-injection", doc.QueryFilters[0].Exclude.ID)
	require.Len(t, doc.Queries, 2)
	assert.Equal(t, "./query-suites/base.qls", doc.Queries[0].Uses)
}

func TestRender_EmptyListsOmitted(t *testing.T) {
	out, err := New().Render(DefaultTemplate, Data{Repo: "o/r", Language: "go"})
	require.NoError(t, err)

	assert.NotContains(t, out, "paths-ignore")
	assert.NotContains(t, out, "query-filters")
	assert.NotContains(t, out, "queries")
}

func TestRender_QuotesHostileValues(t *testing.T) {
	out, err := New().Render(DefaultTemplate, Data{
		Repo:         "o/r",
		Language:     "go",
		PathsIgnored: []string{`a"b`, "c\nd: e"},
	})
	require.NoError(t, err)

	var doc scanDocument
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc), out)
	assert.Equal(t, []string{`a"b`, "c\nd: e"}, doc.PathsIgnore)
}

func TestRender_SearchDirOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, DefaultTemplate+templateExt), []byte("repo: {{ .Repo }}"), 0o644)
	require.NoError(t, err)

	r := New("", dir)
	out, err := r.Render(DefaultTemplate, Data{Repo: "o/r"})
	require.NoError(t, err)
	assert.Equal(t, "repo: o/r\n", out)
}

func TestRender_NotFound(t *testing.T) {
	_, err := New().Render("missing", Data{})
	assert.True(t, errors.Is(err, ErrTemplateNotFound))
}

func TestRender_ParseError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad"+templateExt), []byte("{{ .Repo "), 0o644))

	_, err := New(dir).Render("bad", Data{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parse template bad")
}

func TestExistsAndList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom"+templateExt), []byte("x"), 0o644))

	r := New(dir)
	assert.True(t, r.Exists(DefaultTemplate))
	assert.True(t, r.Exists("custom"))
	assert.False(t, r.Exists("nope"))
	assert.Equal(t, []string{DefaultTemplate, "custom"}, r.List())
}

func TestQuote(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", `"plain"`},
		{"", `""`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{"tab\tnl\n", `"tab\tnl\n"`},
		{"a\x01b", `"a\x01b"`},
		{"c\x7fd", `"c\x7Fd"`},
	}
	for _, tt := range tests {
		got, err := quote(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestRender_ControlCharactersStayValidYAML(t *testing.T) {
	paths := []string{"a\x01b", "c\x7fd", "e\x1bf"}
	out, err := New().Render(DefaultTemplate, Data{
		Repo:          "o/r",
		Language:      "go",
		PathsIgnored:  paths,
		RulesExcluded: []string{"x\x00y"},
	})
	require.NoError(t, err)

	var doc scanDocument
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc), out)
	assert.Equal(t, paths, doc.PathsIgnore)
	require.Len(t, doc.QueryFilters, 1)
	assert.Equal(t, "x\x00y", doc.QueryFilters[0].Exclude.ID)
}

func TestRender_ConcurrentTitle(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := r.Render(DefaultTemplate, Data{Repo: "o/r", Language: "python"})
			assert.NoError(t, err)
			assert.Contains(t, out, "Python scan configuration for o/r")
		}()
	}
	wg.Wait()
}
