package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/scanplan"
	clierrors "github.com/randalmurphal/scanplan/errors"
)

func newMatrixCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix <detected_json> [overrides_json] [repo] [config_dir]",
		Short: "Print the scan job matrix as one JSON line",
		Long: `Build the scan job matrix from detected languages.

detected_json is a JSON array of language identifiers or a JSON object of
host language names to byte counts. overrides_json is a JSON array of
language job descriptors. When repo is given, the repo config's
languages_config is merged under the overrides; config_dir defaults to the
config_dir setting.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 4 {
				return clierrors.NewUsageError("matrix takes between one and four arguments", cmd.UseLine())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req := scanplan.Request{Detected: json.RawMessage(args[0])}
			if len(args) > 1 {
				req.Overrides = json.RawMessage(args[1])
			}
			if len(args) > 2 {
				req.Repo = args[2]
			}
			configDir := a.settings.ConfigDir
			if len(args) > 3 {
				configDir = args[3]
			}

			res, err := a.planner(configDir).Plan(cmd.Context(), req)
			if errors.Is(err, scanplan.ErrMalformedArgument) {
				return clierrors.NewMalformedArgumentError("JSON", err)
			}
			if err != nil {
				return err
			}

			out, err := json.Marshal(res.Plan)
			if err != nil {
				return fmt.Errorf("encode plan: %w", err)
			}
			_, err = fmt.Fprintln(a.stdout, string(out))
			return err
		},
	}
}
