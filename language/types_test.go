package language

import (
	"encoding/json"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestConfig_UnmarshalJSONTracksGivenFields(t *testing.T) {
	var c Config
	if err := json.Unmarshal([]byte(`{"language":"go","build_command":"","ignore":false,"version":"1.24"}`), &c); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	tests := []struct {
		field Field
		want  bool
	}{
		{FieldBuildMode, false},
		{FieldBuildCommand, true},
		{FieldVersion, true},
		{FieldDistribution, false},
		{FieldIgnore, true},
	}
	for _, tt := range tests {
		if got := c.Has(tt.field); got != tt.want {
			t.Errorf("Has(%d) = %v, want %v", tt.field, got, tt.want)
		}
	}
}

func TestConfig_UnmarshalYAMLTracksGivenFields(t *testing.T) {
	var c Config
	if err := yaml.Unmarshal([]byte("language: go\nbuild_mode: \"\"\ndistribution: temurin\n"), &c); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !c.Has(FieldBuildMode) {
		t.Error("explicit empty build_mode should count as given")
	}
	if !c.Has(FieldDistribution) || c.Distribution != "temurin" {
		t.Errorf("distribution = %q, want temurin", c.Distribution)
	}
	if c.Has(FieldBuildCommand) {
		t.Error("absent build_command should not count as given")
	}
}

func TestConfig_UnmarshalYAMLRejectsUnknownKey(t *testing.T) {
	var c Config
	err := yaml.Unmarshal([]byte("language: go\nbuild_cmd: make\n"), &c)
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("Unmarshal() error = %v, want ErrUnknownField", err)
	}
}

func TestConfig_OverlayExplicitEmpty(t *testing.T) {
	base := Config{Language: "java-kotlin", BuildMode: BuildModeManual, BuildCommand: "./mvnw compile"}

	var o Config
	if err := json.Unmarshal([]byte(`{"language":"java-kotlin","build_mode":"none","build_command":""}`), &o); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	got := base.Overlay(o)
	if got.BuildMode != BuildModeNone || got.BuildCommand != "" {
		t.Errorf("Overlay() = %+v, want build_mode none and empty command", got)
	}
	if !got.Has(FieldBuildCommand) {
		t.Error("cleared build_command should stay given after Overlay")
	}
}

func TestConfig_OverlayIgnoreFalse(t *testing.T) {
	ignored := Config{Language: "cpp", Ignore: true}

	if got := ignored.Overlay(Config{Language: "cpp"}); !got.Ignore {
		t.Error("absent ignore must keep the base value")
	}
	if got := ignored.Overlay(Config{Language: "cpp"}.WithGiven(FieldIgnore)); got.Ignore {
		t.Error("explicit ignore false must clear the base value")
	}
}

func TestConfig_WithGivenLeavesSetFields(t *testing.T) {
	c := Config{Language: "go", Version: "1.24"}
	if got := c.WithGiven(FieldVersion); got != c {
		t.Errorf("WithGiven() on a set field = %+v, want unchanged", got)
	}
}
