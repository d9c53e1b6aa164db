// Package config provides hierarchical configuration resolution.
//
// Values are layered with clear precedence:
//  1. Command-line flags (highest priority)
//  2. Environment variables (SCANPLAN_<KEY>, then CI fallbacks such as
//     GITHUB_TOKEN and GITHUB_OUTPUT)
//  3. Local config (.scanplan.yaml in the git root, or --config)
//  4. Global config (~/.config/scanplan/config.yaml)
//  5. Built-in defaults (lowest priority)
//
// Each resolved value records its Source:
//
//	resolver := config.NewResolver(config.ScanplanConfig("", os.Stderr))
//	resolved := resolver.ResolveWithFlags(map[string]string{"log_level": "debug"})
//	settings, err := config.SettingsFrom(resolved)
//	fmt.Println(resolved.Source("config_dir")) // "default"
//
// Save and Unset edit the global or local file in place.
package config
