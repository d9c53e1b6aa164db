package langsource

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/xanzy/go-gitlab"
)

// GitLabSource reads languages from the GitLab projects API.
//
// GitLab reports percentages rather than byte counts. They are scaled by
// 100 and rounded so the result has the same shape as other sources.
type GitLabSource struct {
	client *gitlab.Client
}

// NewGitLabSource creates a GitLab source. baseURL selects a self-hosted
// instance; empty uses gitlab.com.
func NewGitLabSource(token, baseURL string, httpClient *http.Client) (*GitLabSource, error) {
	var opts []gitlab.ClientOptionFunc
	if baseURL != "" {
		opts = append(opts, gitlab.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, gitlab.WithHTTPClient(httpClient))
	}

	client, err := gitlab.NewClient(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create GitLab client: %w", err)
	}
	return &GitLabSource{client: client}, nil
}

// Languages implements Source.
func (s *GitLabSource) Languages(ctx context.Context, repo string) (map[string]int64, error) {
	owner, name, err := ParseRepo(repo)
	if err != nil {
		return nil, err
	}
	projectID := owner + "/" + name

	langs, _, err := s.client.Projects.GetProjectLanguages(projectID, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("get project languages for %s: %w", projectID, err)
	}
	if langs == nil {
		return map[string]int64{}, nil
	}

	out := make(map[string]int64, len(*langs))
	for lang, pct := range *langs {
		out[lang] = int64(math.Round(float64(pct) * 100))
	}
	return out, nil
}
