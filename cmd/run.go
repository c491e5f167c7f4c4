package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/readychina/internal/app"
	"github.com/abhisek/readychina/internal/config"
	"github.com/abhisek/readychina/internal/content"
	"github.com/abhisek/readychina/internal/logging"
	"github.com/abhisek/readychina/internal/screens/home"
	"github.com/abhisek/readychina/internal/share"
	"github.com/abhisek/readychina/internal/store"
	"github.com/abhisek/readychina/internal/vote"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The TUI owns the terminal, so logs go to a file.
	log, logFile, err := logging.File(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	catalog, err := content.LoadFile(cfg.ContentFile)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	dsn := ":memory:"
	var clipboard share.Clipboard = share.SystemClipboard{}
	if ephemeral(cmd) {
		clipboard = &share.MemoryClipboard{}
	} else if dsn, err = resolveDBPath(cmd, cfg); err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dsn)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	flag := vote.NewStoredFlag(st.SettingsRepo(), log)
	skipSplash, _ := cmd.Flags().GetBool("skip-splash")

	log.Info().Str("db", dsn).Bool("ephemeral", ephemeral(cmd)).Msg("starting")

	return app.Run(app.Options{
		Deps: home.Deps{
			Catalog:     catalog,
			Counter:     vote.NewCounter(flag, eventRepo, log),
			Events:      eventRepo,
			Clipboard:   clipboard,
			ShareURL:    cfg.ShareURL,
			AnswerDelay: cfg.AnswerDelay,
			QuizDelay:   cfg.QuizDelay,
			Log:         log,
		},
		SkipSplash: skipSplash,
	})
}
