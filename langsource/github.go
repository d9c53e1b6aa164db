package langsource

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubSource reads languages from the GitHub REST API.
type GitHubSource struct {
	client *github.Client
}

// NewGitHubSource creates a GitHub source. token may be a personal access
// token or an installation token; empty means unauthenticated requests.
// baseURL selects a GitHub Enterprise instance.
func NewGitHubSource(token, baseURL string, httpClient *http.Client) (*GitHubSource, error) {
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	client := github.NewClient(httpClient)

	if baseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("configure GitHub URL: %w", err)
		}
	}

	return &GitHubSource{client: client}, nil
}

// Languages implements Source.
func (s *GitHubSource) Languages(ctx context.Context, repo string) (map[string]int64, error) {
	owner, name, err := ParseRepo(repo)
	if err != nil {
		return nil, err
	}

	langs, _, err := s.client.Repositories.ListLanguages(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("list languages for %s/%s: %w", owner, name, err)
	}

	out := make(map[string]int64, len(langs))
	for lang, n := range langs {
		out[lang] = int64(n)
	}
	return out, nil
}
