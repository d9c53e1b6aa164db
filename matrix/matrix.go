package matrix

import (
	"context"

	"github.com/randalmurphal/scanplan/language"
	"github.com/randalmurphal/scanplan/notify"
)

// Entry is one scanner job in a plan. It has no ignore field: ignored
// languages are removed before an Entry is ever built.
type Entry struct {
	Language     string             `json:"language"`
	BuildMode    language.BuildMode `json:"build_mode,omitempty"`
	BuildCommand string             `json:"build_command,omitempty"`
	Version      string             `json:"version,omitempty"`
	Distribution string             `json:"distribution,omitempty"`
}

// Plan is the job matrix consumed by CI.
type Plan struct {
	Include []Entry `json:"include"`
}

// Languages returns the scanner language of every entry, in plan order.
func (p Plan) Languages() []string {
	out := make([]string, len(p.Include))
	for i, e := range p.Include {
		out[i] = e.Language
	}
	return out
}

func entryFrom(c language.Config) Entry {
	return Entry{
		Language:     c.Language,
		BuildMode:    c.BuildMode,
		BuildCommand: c.BuildCommand,
		Version:      c.Version,
		Distribution: c.Distribution,
	}
}

// Build produces the scan plan for the detected languages.
//
// Actions is always added to the working set. Each language is matched
// against overrides either by its own identifier ("java") or by its
// baseline's scanner language ("java-kotlin"), since operators write
// overrides in scanner terms while detection reports identifiers. When
// several overrides could match, the one whose key appeared first in
// overrides wins; among overrides sharing a key the last one wins.
func Build(ctx context.Context, detected []language.Identifier, overrides []language.Config) Plan {
	working := workingSet(detected)
	index := newOverrideIndex(overrides)

	var emitted []Entry
	for _, lang := range working {
		base, hasDefault := language.Default(lang)
		match, hasMatch := index.find(string(lang), base.Language)

		switch {
		case hasMatch && match.Ignore:
			notify.Emit(ctx, notify.Event{
				Type:     notify.EventLanguageIgnored,
				Language: string(lang),
				Message:  "language detected but marked as ignored, skipping",
				Metadata: map[string]any{"override": match.Language},
			})
		case hasMatch && hasDefault:
			emitted = append(emitted, entryFrom(base.Overlay(match)))
		case hasMatch:
			emitted = append(emitted, entryFrom(match))
		case hasDefault:
			emitted = append(emitted, entryFrom(base))
		default:
			notify.Emit(ctx, notify.Event{
				Type:     notify.EventLanguageDropped,
				Language: string(lang),
				Message:  "no baseline and no override, skipping",
				Severity: notify.SeverityDebug,
			})
		}
	}

	plan := Plan{Include: dedupe(emitted)}

	notify.Emit(ctx, notify.Event{
		Type:    notify.EventPlanBuilt,
		Message: "scan plan built",
		Metadata: map[string]any{
			"detected":  detected,
			"overrides": len(overrides),
			"entries":   plan.Languages(),
		},
	})
	return plan
}

// workingSet returns detected plus Actions, deduplicated in first-seen order.
func workingSet(detected []language.Identifier) []language.Identifier {
	seen := make(map[language.Identifier]bool, len(detected)+1)
	out := make([]language.Identifier, 0, len(detected)+1)
	for _, lang := range append(append([]language.Identifier(nil), detected...), language.Actions) {
		if seen[lang] {
			continue
		}
		seen[lang] = true
		out = append(out, lang)
	}
	return out
}

// dedupe keeps the first entry per scanner language.
func dedupe(entries []Entry) []Entry {
	seen := make(map[string]bool, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if seen[e.Language] {
			continue
		}
		seen[e.Language] = true
		out = append(out, e)
	}
	return out
}
