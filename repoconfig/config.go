package repoconfig

import (
	"fmt"

	"github.com/randalmurphal/scanplan/language"
)

// Query references a query suite. Its contents are opaque here; it is
// passed through to the rendered scan configuration.
type Query struct {
	Name string `json:"name" yaml:"name"`
	Uses string `json:"uses" yaml:"uses"`
}

// Config is a repository's scanning configuration.
type Config struct {
	PathsIgnored    []string          `json:"pathsIgnored" yaml:"pathsIgnored"`
	RulesExcluded   []string          `json:"rulesExcluded" yaml:"rulesExcluded"`
	LanguagesConfig []language.Config `json:"languages_config" yaml:"languages_config"`
	Queries         []Query           `json:"queries" yaml:"queries"`
}

// Builtin returns the configuration used when no file can be loaded.
// Every call returns a fresh value.
func Builtin() Config {
	return Config{
		PathsIgnored:    []string{"test"},
		RulesExcluded:   []string{"js/log-injection"},
		LanguagesConfig: []language.Config{},
		Queries: []Query{
			{
				Name: "Security-extended queries for JavaScript",
				Uses: "./query-suites/base.qls",
			},
			{
				Name: "Security Code Scanner Custom Queries",
				Uses: "./custom-queries/query-suites/custom-queries.qls",
			},
		},
	}
}

// LanguageConfig returns the override for lang. When several entries share
// the language the last one wins.
func (c Config) LanguageConfig(lang string) (language.Config, bool) {
	var (
		found language.Config
		ok    bool
	)
	for _, lc := range c.LanguagesConfig {
		if lc.Language == lang {
			found, ok = lc, true
		}
	}
	return found, ok
}

// Validate checks every language override and query reference.
func (c Config) Validate() error {
	for i, lc := range c.LanguagesConfig {
		if err := lc.Validate(); err != nil {
			return fmt.Errorf("languages_config[%d]: %w", i, err)
		}
	}
	for i, q := range c.Queries {
		if q.Uses == "" {
			return fmt.Errorf("queries[%d] %q: %w", i, q.Name, ErrMissingQueryUses)
		}
	}
	return nil
}

// normalize replaces nil lists with empty ones so loaded and built-in
// configs compare and marshal the same way.
func (c Config) normalize() Config {
	if c.PathsIgnored == nil {
		c.PathsIgnored = []string{}
	}
	if c.RulesExcluded == nil {
		c.RulesExcluded = []string{}
	}
	if c.LanguagesConfig == nil {
		c.LanguagesConfig = []language.Config{}
	}
	if c.Queries == nil {
		c.Queries = []Query{}
	}
	return c
}
