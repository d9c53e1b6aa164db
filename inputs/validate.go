package inputs

import (
	"regexp"
	"strings"
)

var (
	pathMetachars  = regexp.MustCompile("[;&|`$(){}\\[\\]<>]")
	ruleIDDisallow = regexp.MustCompile(`[^a-zA-Z0-9\-/_]`)
)

// Validate checks that the inputs required to generate a scan
// configuration are present.
func Validate(p Params) error {
	var missing []string
	if p.Repo == "" {
		missing = append(missing, "REPO")
	}
	if p.Language == "" {
		missing = append(missing, "LANGUAGE")
	}
	if len(missing) > 0 {
		return &MissingError{Fields: missing}
	}
	return nil
}

// SanitizePath strips shell metacharacters from a path fragment.
func SanitizePath(s string) string {
	return pathMetachars.ReplaceAllString(s, "")
}

// SanitizeRuleID keeps only letters, digits, '-', '/' and '_'.
func SanitizeRuleID(s string) string {
	return ruleIDDisallow.ReplaceAllString(s, "")
}

// Environment variable names read by FromEnv.
const (
	EnvRepo          = "REPO"
	EnvLanguage      = "LANGUAGE"
	EnvBuildMode     = "BUILD_MODE"
	EnvBuildCommand  = "BUILD_COMMAND"
	EnvVersion       = "VERSION"
	EnvDistribution  = "DISTRIBUTION"
	EnvPathsIgnored  = "PATHS_IGNORED"
	EnvRulesExcluded = "RULES_EXCLUDED"
)

// FromEnv builds Params from environment variables. lookup is usually
// os.LookupEnv. List variables hold one item per line; blank lines are
// skipped and items are sanitized.
func FromEnv(lookup func(string) (string, bool)) Params {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}
	return Params{
		Repo:          get(EnvRepo),
		Language:      get(EnvLanguage),
		BuildMode:     get(EnvBuildMode),
		BuildCommand:  get(EnvBuildCommand),
		Version:       get(EnvVersion),
		Distribution:  get(EnvDistribution),
		PathsIgnored:  splitLines(get(EnvPathsIgnored), SanitizePath),
		RulesExcluded: splitLines(get(EnvRulesExcluded), SanitizeRuleID),
	}
}

func splitLines(s string, sanitize func(string) string) []string {
	if s == "" {
		return []string{}
	}
	out := []string{}
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, sanitize(line))
	}
	return out
}
