package language

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/randalmurphal/scanplan/notify"
)

// hostName pairs a host-reported language name with its identifier.
type hostName struct {
	name string
	id   Identifier
}

// hostNames maps hosting-platform (linguist) language names to identifiers.
// Order is significant: classification results follow it.
var hostNames = []hostName{
	{"JavaScript", JavaScript},
	{"TypeScript", TypeScript},
	{"Python", Python},
	{"Go", Go},
	{"Swift", Swift},
	{"Java", Java},
	{"Kotlin", Java},
	{"C++", Cpp},
	{"C", Cpp},
	{"C#", CSharp},
	{"Ruby", Ruby},
}

// Lookup returns the identifier for a host language name.
func Lookup(hostName string) (Identifier, bool) {
	for _, h := range hostNames {
		if h.name == hostName {
			return h.id, true
		}
	}
	return "", false
}

// Classify maps host language names to identifiers. Byte counts are not
// consulted; a language is detected as soon as its key is present.
//
// The result is deduplicated and ordered by the host-name table. A nil or
// empty map, or a map with no supported language, yields [Fallback].
func Classify(ctx context.Context, hostLanguages map[string]int64) []Identifier {
	if len(hostLanguages) == 0 {
		notify.Emit(ctx, notify.Event{
			Type:     notify.EventFallbackUsed,
			Language: string(Fallback),
			Message:  "no host languages reported, defaulting",
			Severity: notify.SeverityWarning,
		})
		return []Identifier{Fallback}
	}

	seen := make(map[Identifier]bool)
	var out []Identifier
	for _, h := range hostNames {
		if _, ok := hostLanguages[h.name]; !ok || seen[h.id] {
			continue
		}
		seen[h.id] = true
		out = append(out, h.id)
	}

	for _, name := range unsupported(hostLanguages) {
		notify.Emit(ctx, notify.Event{
			Type:     notify.EventLanguageDropped,
			Language: name,
			Message:  "host language has no scanner mapping",
			Severity: notify.SeverityDebug,
		})
	}

	if len(out) == 0 {
		notify.Emit(ctx, notify.Event{
			Type:     notify.EventFallbackUsed,
			Language: string(Fallback),
			Message:  "no supported languages detected, defaulting",
			Severity: notify.SeverityWarning,
		})
		return []Identifier{Fallback}
	}
	return out
}

// ClassifyJSON decodes a host language mapping and classifies it. Anything
// that is not a JSON object (null, arrays, strings, malformed input)
// classifies as [Fallback].
func ClassifyJSON(ctx context.Context, raw []byte) []Identifier {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return Classify(ctx, nil)
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		return Classify(ctx, nil)
	}

	counts := make(map[string]int64, len(obj))
	for name, v := range obj {
		n, _ := v.(float64)
		counts[name] = int64(n)
	}
	return Classify(ctx, counts)
}

// unsupported returns the sorted host names without a mapping.
func unsupported(hostLanguages map[string]int64) []string {
	var names []string
	for name := range hostLanguages {
		if _, ok := Lookup(name); !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
