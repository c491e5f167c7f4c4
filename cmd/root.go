package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/readychina/internal/config"
	"github.com/abhisek/readychina/internal/logging"
	"github.com/abhisek/readychina/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "readychina",
	Short:        "Ready to move to China?",
	Long:         "readychina: count yourself in, get convinced, and find out which Chinese city you belong in.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides READYCHINA_DB env var)")
	rootCmd.PersistentFlags().Bool("ephemeral", false, "Keep everything in memory; nothing is written to disk")
	rootCmd.Flags().Bool("skip-splash", false, "Start on the home screen")

	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(voteCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then READYCHINA_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

func ephemeral(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("ephemeral")
	return v
}

// cliEnv is what every subcommand needs: settings, a stderr logger, and
// the store unless the run is ephemeral.
type cliEnv struct {
	cfg   config.Config
	log   zerolog.Logger
	store *store.Store
}

func (e *cliEnv) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// openCLI loads config, builds the console logger, and opens the store.
// An ephemeral run uses an in-memory database so commands behave the same.
func openCLI(cmd *cobra.Command) (*cliEnv, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logging.Console(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	dsn := ":memory:"
	if !ephemeral(cmd) {
		if dsn, err = resolveDBPath(cmd, cfg); err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	}
	st, err := store.Open(dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	log.Debug().Str("db", dsn).Msg("store opened")
	return &cliEnv{cfg: cfg, log: log, store: st}, nil
}
