// Command scanplan resolves code-scanning job matrices and per-job scanner
// configuration for CI workflows.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/scanplan"
	"github.com/randalmurphal/scanplan/config"
	clierrors "github.com/randalmurphal/scanplan/errors"
	"github.com/randalmurphal/scanplan/notify"
	"github.com/randalmurphal/scanplan/render"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	os.Exit(clierrors.ExitCode(err))
}

// app carries state shared by every subcommand.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configFile string
	logLevel   string
	logFormat  string

	resolver *config.Resolver
	resolved *config.Resolved
	settings config.Settings
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:           "scanplan",
		Short:         "Plan code-scanning jobs for a repository",
		Long:          "scanplan detects repository languages, builds the scanner job matrix and renders per-job scanner configuration.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file (default: .scanplan.yaml in the git root)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text|json")

	cmd.AddCommand(newDetectCmd(a))
	cmd.AddCommand(newMatrixCmd(a))
	cmd.AddCommand(newGenerateCmd(a))
	cmd.AddCommand(newConfigCmd(a))

	return cmd
}

// setup resolves settings and installs the default logger.
func (a *app) setup() error {
	a.resolver = config.NewResolver(config.ScanplanConfig(a.configFile, a.stderr))
	a.resolved = a.resolver.ResolveWithFlags(map[string]string{
		config.KeyLogLevel:  a.logLevel,
		config.KeyLogFormat: a.logFormat,
	})

	settings, err := config.SettingsFrom(a.resolved)
	if err != nil {
		return clierrors.NewMalformedArgumentError("config", err)
	}
	a.settings = settings

	logger, err := newLogger(a.stderr, settings.LogLevel, settings.LogFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, clierrors.NewMalformedArgumentError("log-level", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, clierrors.NewMalformedArgumentError("log-format", fmt.Errorf("unknown format %q, want text or json", format))
	}
}

// notifier logs every event and forwards it to the webhook when one is
// configured.
func (a *app) notifier() notify.Notifier {
	logN := notify.NewLogNotifier(slog.Default())
	if a.settings.WebhookURL == "" {
		return logN
	}
	return notify.NewMultiNotifier(logN, notify.NewWebhookNotifier(a.settings.WebhookURL, nil))
}

func (a *app) planner(configDir string) *scanplan.Planner {
	return &scanplan.Planner{
		ConfigDir: configDir,
		Renderer:  render.New(a.settings.TemplateDir),
		Notifier:  a.notifier(),
	}
}
