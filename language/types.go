package language

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Identifier names a detected language as understood by the scanner
// configuration table. Several host language names can map to one
// Identifier (Kotlin and Java are both "java").
type Identifier string

// Supported identifiers.
const (
	JavaScript Identifier = "javascript"
	TypeScript Identifier = "typescript"
	Python     Identifier = "python"
	Go         Identifier = "go"
	Swift      Identifier = "swift"
	Java       Identifier = "java"
	Cpp        Identifier = "cpp"
	CSharp     Identifier = "csharp"
	Ruby       Identifier = "ruby"

	// Actions is the workflow-definitions pseudo-language. It is part of
	// every plan whether or not it was detected.
	Actions Identifier = "actions"
)

// Fallback is returned by classification when nothing supported was found.
const Fallback = JavaScript

// BuildMode selects how the scanner obtains a build of compiled languages.
type BuildMode string

// Build modes. The zero value means "not set".
const (
	BuildModeNone      BuildMode = "none"
	BuildModeManual    BuildMode = "manual"
	BuildModeAutobuild BuildMode = "autobuild"
)

// Valid reports whether m is empty or one of the known build modes.
func (m BuildMode) Valid() bool {
	switch m {
	case "", BuildModeNone, BuildModeManual, BuildModeAutobuild:
		return true
	}
	return false
}

// Field names an optional descriptor field.
type Field uint8

// Optional descriptor fields.
const (
	FieldBuildMode Field = 1 << iota
	FieldBuildCommand
	FieldVersion
	FieldDistribution
	FieldIgnore
)

// fieldKeys maps serialized keys to fields. "language" is required and
// has no Field.
var fieldKeys = map[string]Field{
	"build_mode":    FieldBuildMode,
	"build_command": FieldBuildCommand,
	"version":       FieldVersion,
	"distribution":  FieldDistribution,
	"ignore":        FieldIgnore,
}

// Config is a language job descriptor as written by operators in repo
// config files or workflow inputs. Language may be either a detected
// Identifier ("java") or a scanner language ("java-kotlin").
type Config struct {
	Language     string    `json:"language" yaml:"language"`
	BuildMode    BuildMode `json:"build_mode,omitempty" yaml:"build_mode,omitempty"`
	BuildCommand string    `json:"build_command,omitempty" yaml:"build_command,omitempty"`
	Version      string    `json:"version,omitempty" yaml:"version,omitempty"`
	Distribution string    `json:"distribution,omitempty" yaml:"distribution,omitempty"`

	// Ignore drops the language from the plan. It steers plan building
	// and is never emitted.
	Ignore bool `json:"ignore,omitempty" yaml:"ignore,omitempty"`

	// cleared holds fields written explicitly with their zero value.
	cleared Field
}

// Has reports whether f was given: set to a non-zero value, or written
// explicitly as "" (false for Ignore).
func (c Config) Has(f Field) bool {
	if c.cleared&f != 0 {
		return true
	}
	switch f {
	case FieldBuildMode:
		return c.BuildMode != ""
	case FieldBuildCommand:
		return c.BuildCommand != ""
	case FieldVersion:
		return c.Version != ""
	case FieldDistribution:
		return c.Distribution != ""
	case FieldIgnore:
		return c.Ignore
	}
	return false
}

// WithGiven marks fields as given. Fields that hold their zero value are
// recorded as explicitly cleared; the rest already count as given.
func (c Config) WithGiven(fields ...Field) Config {
	for _, f := range fields {
		if !c.Has(f) {
			c.cleared |= f
		}
	}
	return c
}

func (c Config) given() Field {
	var out Field
	for _, f := range fieldKeys {
		if c.Has(f) {
			out |= f
		}
	}
	return out
}

// Validate checks the fields a descriptor must carry.
func (c Config) Validate() error {
	if c.Language == "" {
		return ErrMissingLanguage
	}
	if !c.BuildMode.Valid() {
		return fmt.Errorf("%w: %q for %s", ErrInvalidBuildMode, c.BuildMode, c.Language)
	}
	return nil
}

// Overlay returns c with every field o gives laid on top, including
// fields o clears explicitly.
func (c Config) Overlay(o Config) Config {
	if o.Language != "" {
		c.Language = o.Language
	}
	if o.Has(FieldBuildMode) {
		c.BuildMode = o.BuildMode
	}
	if o.Has(FieldBuildCommand) {
		c.BuildCommand = o.BuildCommand
	}
	if o.Has(FieldVersion) {
		c.Version = o.Version
	}
	if o.Has(FieldDistribution) {
		c.Distribution = o.Distribution
	}
	if o.Has(FieldIgnore) {
		c.Ignore = o.Ignore
	}
	c.cleared = c.cleared&^o.given() | o.cleared
	return c
}

// UnmarshalJSON decodes a descriptor and records which optional keys were
// present.
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*c = Config(p)
	for k := range keys {
		if f, ok := fieldKeys[strings.ToLower(k)]; ok {
			*c = c.WithGiven(f)
		}
	}
	return nil
}

// UnmarshalYAML decodes a descriptor, rejects unknown keys and records
// which optional keys were present.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type plain Config
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*c = Config(p)

	if value.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i]
		if key.Value == "language" {
			continue
		}
		f, ok := fieldKeys[key.Value]
		if !ok {
			return fmt.Errorf("line %d: %w %q", key.Line, ErrUnknownField, key.Value)
		}
		*c = c.WithGiven(f)
	}
	return nil
}
