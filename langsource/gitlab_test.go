package langsource

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xanzy/go-gitlab"
)

// newTestGitLabSource creates a GitLabSource pointing to a test server.
func newTestGitLabSource(t *testing.T, handler http.Handler) *GitLabSource {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := gitlab.NewClient("test-token", gitlab.WithBaseURL(server.URL+"/api/v4"))
	if err != nil {
		t.Fatalf("create gitlab client: %v", err)
	}
	return &GitLabSource{client: client}
}

func TestGitLabSource_Languages(t *testing.T) {
	var gotPath, gotToken string
	src := newTestGitLabSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotToken = r.Header.Get("PRIVATE-TOKEN")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Go": 80.5, "Shell": 19.5}`))
	}))

	got, err := src.Languages(context.Background(), "group/sub/project")
	if err != nil {
		t.Fatalf("Languages() error = %v", err)
	}

	if gotPath != "/api/v4/projects/group%2Fsub%2Fproject/languages" {
		t.Errorf("path = %q", gotPath)
	}
	if gotToken != "test-token" {
		t.Errorf("PRIVATE-TOKEN = %q", gotToken)
	}
	if got["Go"] != 8050 || got["Shell"] != 1950 {
		t.Errorf("Languages() = %v, want Go=8050 Shell=1950", got)
	}
}

func TestGitLabSource_Error(t *testing.T) {
	src := newTestGitLabSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"403 Forbidden"}`))
	}))

	if _, err := src.Languages(context.Background(), "group/project"); err == nil {
		t.Error("Languages() should fail for 403")
	}
}

func TestNewGitLabSource(t *testing.T) {
	src, err := NewGitLabSource("token", "https://gitlab.example.com", nil)
	if err != nil {
		t.Fatalf("NewGitLabSource() error = %v", err)
	}
	if got := src.client.BaseURL().String(); got != "https://gitlab.example.com/api/v4/" {
		t.Errorf("BaseURL = %q", got)
	}
}
