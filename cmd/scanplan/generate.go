package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/scanplan"
	clierrors "github.com/randalmurphal/scanplan/errors"
	"github.com/randalmurphal/scanplan/ghoutput"
	"github.com/randalmurphal/scanplan/inputs"
	"github.com/randalmurphal/scanplan/render"
)

// GeneratedConfigName is the file written into the workspace by generate.
const GeneratedConfigName = "codeql-config-generated.yml"

func newGenerateCmd(a *app) *cobra.Command {
	var outPath, template string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the scanner configuration for one job",
		Long: `Read one job's inputs from the environment, fill missing build
parameters from the repo config and render the scanner configuration.

Inputs: REPO, LANGUAGE (required), BUILD_MODE, BUILD_COMMAND, VERSION,
DISTRIBUTION, and newline-separated PATHS_IGNORED and RULES_EXCLUDED.
Resolved values are written to $GITHUB_OUTPUT; the document is written to
$GITHUB_WORKSPACE/` + GeneratedConfigName + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd.Context(), outPath, template)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "document path (default: <workspace>/"+GeneratedConfigName+")")
	cmd.Flags().StringVarP(&template, "template", "t", render.DefaultTemplate, "scan configuration template, embedded or from template_dir")
	return cmd
}

func (a *app) runGenerate(ctx context.Context, outPath, template string) error {
	planner := a.planner(a.settings.ConfigDir)
	if !planner.Renderer.Exists(template) {
		return clierrors.NewMalformedArgumentError("template",
			fmt.Errorf("%w: %q (available: %s)", render.ErrTemplateNotFound, template, strings.Join(planner.Renderer.List(), ", ")))
	}
	planner.Template = template

	params := inputs.FromEnv(os.LookupEnv)
	gen, err := planner.Generate(ctx, params)
	if err != nil {
		var missing *inputs.MissingError
		if errors.As(err, &missing) {
			return clierrors.NewMissingInputError(err, missing.Fields...)
		}
		return err
	}

	if err := a.writeOutputs(gen); err != nil {
		return err
	}

	if outPath == "" {
		dir := a.settings.Workspace
		if dir == "" {
			dir = "."
		}
		outPath = filepath.Join(dir, GeneratedConfigName)
	}
	if err := os.WriteFile(outPath, []byte(gen.Document), 0o644); err != nil {
		return fmt.Errorf("write scan config: %w", err)
	}

	slog.Info("scan configuration generated",
		"run_id", gen.RunID,
		"repo", gen.Params.Repo,
		"language", gen.Params.Language,
		"config_source", gen.ConfigSource,
		"path", outPath)
	return nil
}

// writeOutputs appends the step outputs to the output file, or to stdout
// when none is configured.
func (a *app) writeOutputs(gen *scanplan.Generated) error {
	w, err := ghoutput.OpenFile(a.settings.OutputFile)
	if errors.Is(err, ghoutput.ErrNoOutputFile) {
		slog.Warn("no output file configured, writing outputs to stdout")
		w = ghoutput.NewWriter(a.stdout)
	} else if err != nil {
		return err
	}

	if err := w.SetAll(scanplan.OutputKeys, gen.Outputs()); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
