// Package langsource fetches a repository's language composition.
//
// A Source returns a mapping of host-reported language names ("Go",
// "TypeScript", "C++") to byte counts. Only the names matter downstream;
// the counts are carried for logging.
//
// Implementations:
//   - GitHubSource: GitHub REST languages endpoint via go-github
//   - GitLabSource: GitLab project languages via go-gitlab
//   - LocalSource: walks a checkout and classifies files with go-enry
//   - MockSource: function-backed source for tests
//
// Fetch wraps any Source so that failures degrade to an empty mapping,
// which classification turns into the fallback language:
//
//	src, err := langsource.New(langsource.PlatformGitHub, langsource.Options{Token: token})
//	if err != nil {
//	    return err
//	}
//	counts := langsource.Fetch(ctx, src, "consensys/linea")
package langsource
