// Package inputs handles the explicit per-job values a workflow supplies
// (repo, language, build parameters, extra ignored paths and excluded
// rules) and reconciles them with repository configuration.
package inputs
