// Package scanplan resolves code-scanning plans for repositories.
//
// Given the languages a hosting platform reports for a repository, it
// decides which scanner jobs to run and with which build settings, and
// renders the scanner configuration for a single job.
//
// The package is organized into subpackages by concern:
//
//   - language: host language classification and per-language defaults
//   - matrix: job matrix construction from detected languages and overrides
//   - repoconfig: per-repository configuration files (YAML or HCL)
//   - inputs: workflow input validation and fallback to repo config
//   - render: scanner configuration templates
//   - langsource: language composition from GitHub, GitLab or a checkout
//   - auth: GitHub App authentication
//   - ghoutput: GITHUB_OUTPUT writer
//   - notify: resolution events (slog, webhook)
//   - config: CLI settings resolution
//   - errors: CLI error types
//
// # Quick Start
//
//	p := &scanplan.Planner{ConfigDir: "repo-configs"}
//
//	res, err := p.Plan(ctx, scanplan.Request{
//	    Detected: json.RawMessage(`{"Kotlin": 5000, "Java": 200}`),
//	    Repo:     "consensys/linea",
//	})
//	// res.Plan.Include: java-kotlin with the repo's build settings, actions
//
//	gen, err := p.Generate(ctx, inputs.Params{Repo: "consensys/linea", Language: "java-kotlin"})
//	// gen.Document: rendered scanner configuration
package scanplan
