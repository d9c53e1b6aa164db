package inputs

// Params is the set of values a workflow passes explicitly for one scan job.
type Params struct {
	Repo         string   `json:"repo"`
	Language     string   `json:"language"`
	BuildMode    string   `json:"buildMode,omitempty"`
	BuildCommand string   `json:"buildCommand,omitempty"`
	Version      string   `json:"version,omitempty"`
	Distribution string   `json:"distribution,omitempty"`

	// Extra entries appended after the repo config's own lists.
	PathsIgnored  []string `json:"pathsIgnored,omitempty"`
	RulesExcluded []string `json:"rulesExcluded,omitempty"`
}
