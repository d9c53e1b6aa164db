package config

// Source indicates where a configuration value came from.
type Source string

// Configuration sources, lowest priority first.
const (
	SourceDefault Source = "default"
	SourceGlobal  Source = "global" // ~/.config/scanplan/config.yaml
	SourceLocal   Source = "local"  // .scanplan.yaml in the git root, or --config
	SourceEnv     Source = "env"
	SourceFlag    Source = "flag"
)
