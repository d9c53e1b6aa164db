package matrix

import "github.com/randalmurphal/scanplan/language"

// overrideIndex holds overrides keyed by language. Keys keep the position
// of their first occurrence; values are the last occurrence.
type overrideIndex struct {
	keys   []string
	byLang map[string]language.Config
}

func newOverrideIndex(overrides []language.Config) *overrideIndex {
	idx := &overrideIndex{byLang: make(map[string]language.Config, len(overrides))}
	for _, o := range overrides {
		if o.Language == "" {
			continue
		}
		if _, ok := idx.byLang[o.Language]; !ok {
			idx.keys = append(idx.keys, o.Language)
		}
		idx.byLang[o.Language] = o
	}
	return idx
}

// find returns the first override, in key order, whose language is one of
// names. Empty names never match.
func (idx *overrideIndex) find(names ...string) (language.Config, bool) {
	for _, key := range idx.keys {
		for _, name := range names {
			if name != "" && key == name {
				return idx.byLang[key], true
			}
		}
	}
	return language.Config{}, false
}

// entries returns the indexed overrides in key order.
func (idx *overrideIndex) entries() []language.Config {
	out := make([]language.Config, len(idx.keys))
	for i, key := range idx.keys {
		out[i] = idx.byLang[key]
	}
	return out
}
