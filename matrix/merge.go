package matrix

import "github.com/randalmurphal/scanplan/language"

// MergeOverrides combines overrides from a repo config file with overrides
// passed as workflow input. Workflow input takes precedence: an input entry
// is laid over the file entry with the same language, or appended when the
// file has none. File entries keep their order.
func MergeOverrides(file, input []language.Config) []language.Config {
	merged := make([]language.Config, len(file))
	copy(merged, file)

	for _, in := range newOverrideIndex(input).entries() {
		pos := -1
		for i, f := range merged {
			if f.Language == in.Language {
				pos = i
			}
		}
		if pos < 0 {
			merged = append(merged, in)
			continue
		}
		// The last file entry for a language is the one Build would use.
		merged[pos] = merged[pos].Overlay(in)
	}
	return merged
}
