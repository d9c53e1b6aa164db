package langsource

import "context"

// MockSource is a Source for testing.
type MockSource struct {
	LanguagesFunc func(ctx context.Context, repo string) (map[string]int64, error)
}

// Languages implements Source. Without LanguagesFunc it reports no
// languages.
func (m *MockSource) Languages(ctx context.Context, repo string) (map[string]int64, error) {
	if m.LanguagesFunc != nil {
		return m.LanguagesFunc(ctx, repo)
	}
	return map[string]int64{}, nil
}
