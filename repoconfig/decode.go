package repoconfig

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/scanplan/language"
)

// Extensions lists the accepted config file extensions in lookup order.
var Extensions = []string{".yaml", ".yml", ".hcl"}

// Decode parses a config file's contents. The format is chosen from the
// extension of filename.
func Decode(filename string, data []byte) (Config, error) {
	var (
		cfg Config
		err error
	)
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		cfg, err = decodeYAML(data)
	case ".hcl":
		cfg, err = decodeHCL(filename, data)
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate %s: %w", filename, err)
	}
	return cfg.normalize(), nil
}

func decodeYAML(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil // empty document
		}
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

// hclConfig is the HCL form of Config:
//
//	paths_ignored  = ["test"]
//	rules_excluded = ["js/log-injection"]
//
//	language "java-kotlin" {
//	  build_mode    = "manual"
//	  build_command = "./gradlew build"
//	}
//
//	query "custom" {
//	  uses = "./custom-queries/query-suites/custom-queries.qls"
//	}
type hclConfig struct {
	PathsIgnored  []string      `hcl:"paths_ignored,optional"`
	RulesExcluded []string      `hcl:"rules_excluded,optional"`
	Languages     []hclLanguage `hcl:"language,block"`
	Queries       []hclQuery    `hcl:"query,block"`
}

// Optional attributes are pointers so an attribute set to "" can be told
// apart from one that is absent.
type hclLanguage struct {
	Language     string  `hcl:"language,label"`
	BuildMode    *string `hcl:"build_mode,optional"`
	BuildCommand *string `hcl:"build_command,optional"`
	Version      *string `hcl:"version,optional"`
	Distribution *string `hcl:"distribution,optional"`
	Ignore       *bool   `hcl:"ignore,optional"`
}

func (l hclLanguage) config() language.Config {
	cfg := language.Config{Language: l.Language}
	var given []language.Field

	str := func(p *string, f language.Field) string {
		if p == nil {
			return ""
		}
		given = append(given, f)
		return *p
	}
	cfg.BuildMode = language.BuildMode(str(l.BuildMode, language.FieldBuildMode))
	cfg.BuildCommand = str(l.BuildCommand, language.FieldBuildCommand)
	cfg.Version = str(l.Version, language.FieldVersion)
	cfg.Distribution = str(l.Distribution, language.FieldDistribution)
	if l.Ignore != nil {
		cfg.Ignore = *l.Ignore
		given = append(given, language.FieldIgnore)
	}
	return cfg.WithGiven(given...)
}

type hclQuery struct {
	Name string `hcl:"name,label"`
	Uses string `hcl:"uses"`
}

func decodeHCL(filename string, data []byte) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("parse hcl: %w", diags)
	}

	var raw hclConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return Config{}, fmt.Errorf("decode hcl: %w", diags)
	}

	cfg := Config{
		PathsIgnored:  raw.PathsIgnored,
		RulesExcluded: raw.RulesExcluded,
	}
	for _, l := range raw.Languages {
		cfg.LanguagesConfig = append(cfg.LanguagesConfig, l.config())
	}
	for _, q := range raw.Queries {
		cfg.Queries = append(cfg.Queries, Query{Name: q.Name, Uses: q.Uses})
	}
	return cfg, nil
}
