package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/junioryono/beca"
	"github.com/junioryono/beca/store"
)

func resourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List the resources the container builds, in build order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range beca.ResourceNames() {
				writeLine(cmd.OutOrStdout(), "%s", name)
			}
			return nil
		},
	}
}

func graphCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the resource graph in DOT format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withDependencies(cmd.Context(), func(deps *beca.Dependencies) error {
				return deps.Visualize(cmd.OutOrStdout())
			})
		},
	}
}

func pingCmd(a *app) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check the database is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withDependencies(cmd.Context(), func(deps *beca.Dependencies) error {
				ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
				defer cancel()

				r := deps.Select(beca.DBClient, beca.DB)
				if err := store.Ping(ctx, r.DBClient()); err != nil {
					return err
				}
				writeLine(cmd.OutOrStdout(), "ok %s", r.DB().Name())
				return nil
			})
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "How long to wait for the server")
	return cmd
}
