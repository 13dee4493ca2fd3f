// Package cli implements the beca command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/junioryono/beca"
)

// Execute runs the command line and exits with ExitCode on failure.
func Execute() {
	cmd := newRootCmd(&app{})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "beca: %v\n", err)
		os.Exit(ExitCode(err))
	}
}

// app carries the persistent flags and the shared logger.
type app struct {
	configPath string
	url        string
	db         string
	debug      bool

	// lookup reads environment overrides; nil uses the process environment.
	lookup func(string) (string, bool)

	logger *zap.Logger
	opts   []beca.Option
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "beca",
		Short:         "Inspect and seed the beca relay backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if a.logger != nil {
				return nil
			}
			logger, err := newLogger(a.debug)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	flags.StringVar(&a.url, "url", "", "MongoDB connection string (overrides config and BECA_URL)")
	flags.StringVar(&a.db, "db", "", "Database name (overrides config and BECA_DBNAME)")
	flags.BoolVar(&a.debug, "debug", false, "Enable development logging")

	cmd.AddCommand(
		resourcesCmd(),
		graphCmd(a),
		pingCmd(a),
		entityCmd(a, sourcesEntity),
		entityCmd(a, targetsEntity),
		entityCmd(a, responsesEntity),
		entityCmd(a, mappingsEntity),
		mapCmd(a),
	)
	return cmd
}

// config resolves the configuration: file, then environment, then flags.
func (a *app) config() (beca.Config, error) {
	var cfg beca.Config
	if a.configPath != "" {
		loaded, err := beca.LoadConfig(a.configPath)
		if err != nil {
			return beca.Config{}, err
		}
		cfg = loaded
	}

	cfg = cfg.FromEnv(a.lookup)
	return cfg.Merge(beca.Config{URL: a.url, DBName: a.db}), nil
}

// withDependencies builds the resources and runs fn against them. The
// connection is closed afterwards.
func (a *app) withDependencies(ctx context.Context, fn func(*beca.Dependencies) error) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}

	opts := append([]beca.Option{beca.WithLogger(a.logger)}, a.opts...)
	deps, err := beca.CreateDependencies(ctx, cfg, opts...)
	if err != nil {
		return fmt.Errorf("build dependencies: %w", err)
	}
	defer func() {
		if err := deps.Close(context.WithoutCancel(ctx)); err != nil {
			a.logger.Warn("close dependencies", zap.Error(err))
		}
	}()

	return fn(deps)
}

func writeLine(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}
