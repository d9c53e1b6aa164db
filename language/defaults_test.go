package language

import (
	"errors"
	"testing"
)

func TestDefault(t *testing.T) {
	tests := []struct {
		id   Identifier
		want Config
	}{
		{JavaScript, Config{Language: "javascript-typescript"}},
		{TypeScript, Config{Language: "javascript-typescript"}},
		{Python, Config{Language: "python"}},
		{Java, Config{Language: "java-kotlin", BuildMode: BuildModeManual, BuildCommand: "./mvnw compile"}},
		{Actions, Config{Language: "actions"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			got, ok := Default(tt.id)
			if !ok {
				t.Fatalf("Default(%s) not found", tt.id)
			}
			if got != tt.want {
				t.Errorf("Default(%s) = %+v, want %+v", tt.id, got, tt.want)
			}
		})
	}
}

func TestDefault_NeverIgnored(t *testing.T) {
	for _, id := range Identifiers() {
		cfg, ok := Default(id)
		if !ok {
			t.Errorf("identifier %s listed without baseline", id)
		}
		if cfg.Ignore {
			t.Errorf("baseline for %s has ignore set", id)
		}
	}
}

func TestDefault_ReturnsCopy(t *testing.T) {
	cfg, _ := Default(Java)
	cfg.BuildCommand = "mutated"

	again, _ := Default(Java)
	if again.BuildCommand != "./mvnw compile" {
		t.Errorf("table was mutated through returned value: %q", again.BuildCommand)
	}
}

func TestDefault_Unknown(t *testing.T) {
	if _, ok := Default("cobol"); ok {
		t.Error("Default(cobol) should not exist")
	}
	if got := ScannerLanguage("cobol"); got != "" {
		t.Errorf("ScannerLanguage(cobol) = %q, want empty", got)
	}
	if got := ScannerLanguage(Java); got != "java-kotlin" {
		t.Errorf("ScannerLanguage(java) = %q", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"valid", Config{Language: "go"}, nil},
		{"valid manual", Config{Language: "java-kotlin", BuildMode: BuildModeManual, BuildCommand: "make"}, nil},
		{"missing language", Config{BuildMode: BuildModeNone}, ErrMissingLanguage},
		{"bad build mode", Config{Language: "go", BuildMode: "sometimes"}, ErrInvalidBuildMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Overlay(t *testing.T) {
	base := Config{Language: "java-kotlin", BuildMode: BuildModeManual, BuildCommand: "./mvnw compile"}

	got := base.Overlay(Config{Language: "java", Version: "17"})
	want := Config{Language: "java", BuildMode: BuildModeManual, BuildCommand: "./mvnw compile", Version: "17"}
	if got != want {
		t.Errorf("Overlay() = %+v, want %+v", got, want)
	}

	got = base.Overlay(Config{BuildCommand: "", Ignore: true})
	if got.BuildCommand != "./mvnw compile" || !got.Ignore {
		t.Errorf("Overlay() with empty fields = %+v", got)
	}
}
