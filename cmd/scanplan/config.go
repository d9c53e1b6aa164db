package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/scanplan/config"
	clierrors "github.com/randalmurphal/scanplan/errors"
)

const secretMask = "********"

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change scanplan settings",
	}
	cmd.AddCommand(newConfigShowCmd(a))
	cmd.AddCommand(newConfigSetCmd(a))
	cmd.AddCommand(newConfigUnsetCmd(a))
	return cmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every setting with the source it was resolved from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, key := range config.Keys {
				value, source := a.resolved.GetWithSource(key)
				if value == "" {
					fmt.Fprintf(tw, "%s\t\t(unset)\n", key)
					continue
				}
				if config.Secret(key) {
					value = secretMask
				}
				fmt.Fprintf(tw, "%s\t%s\t(%s)\n", key, value, source)
			}
			return tw.Flush()
		},
	}
}

func newConfigSetCmd(a *app) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write a setting to the global or local config file",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return clierrors.NewUsageError("set takes a key and a value", cmd.UseLine())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.resolver.Save(scope(local), args[0], args[1])
			if errors.Is(err, config.ErrUnknownKey) {
				return clierrors.NewMalformedArgumentError("key", err)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "write the local config instead of the global one")
	return cmd
}

func newConfigUnsetCmd(a *app) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a setting from the global or local config file",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return clierrors.NewUsageError("unset takes one key", cmd.UseLine())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.resolver.Unset(scope(local), args[0])
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "edit the local config instead of the global one")
	return cmd
}

func scope(local bool) config.Scope {
	if local {
		return config.ScopeLocal
	}
	return config.ScopeGlobal
}
