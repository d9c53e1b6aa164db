package langsource

import (
	"fmt"
	"strings"
)

// DetectPlatform determines the hosting platform from a remote URL or
// host name.
func DetectPlatform(remoteOrHost string) (Platform, error) {
	s := strings.ToLower(remoteOrHost)

	if strings.Contains(s, "github") {
		return PlatformGitHub, nil
	}
	if strings.Contains(s, "gitlab") {
		return PlatformGitLab, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownPlatform, remoteOrHost)
}

// ParseRepo extracts owner and name from "owner/name", an SSH remote
// ("git@host:owner/name.git") or an HTTP(S) remote. For GitLab subgroups
// the owner keeps every namespace segment ("group/sub").
func ParseRepo(ref string) (owner, name string, err error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", "", ErrInvalidRepo
	}

	var path string
	switch {
	case strings.HasPrefix(ref, "git@"):
		_, after, ok := strings.Cut(ref, ":")
		if !ok {
			return "", "", fmt.Errorf("%w: invalid SSH URL %q", ErrInvalidRepo, ref)
		}
		path = after

	case strings.Contains(ref, "://"):
		_, after, _ := strings.Cut(ref, "://")
		_, p, ok := strings.Cut(after, "/")
		if !ok {
			return "", "", fmt.Errorf("%w: no repository path in %q", ErrInvalidRepo, ref)
		}
		path = p

	default:
		path = ref
		// "github.com/owner/name" without a scheme.
		if first, rest, ok := strings.Cut(path, "/"); ok && strings.Contains(first, ".") && strings.Contains(rest, "/") {
			path = rest
		}
	}

	path = strings.Trim(strings.TrimSuffix(strings.TrimSuffix(path, "/"), ".git"), "/")
	idx := strings.LastIndex(path, "/")
	if idx <= 0 || idx == len(path)-1 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRepo, ref)
	}
	return path[:idx], path[idx+1:], nil
}
