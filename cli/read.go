package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"novel_shelf/lang"
	"novel_shelf/library"
	"novel_shelf/ui"
	"novel_shelf/utils"
)

var readArgs struct {
	logFile string
}

var readCmd = &cobra.Command{
	Use:   "read [location]",
	Short: "Open the reader at a location",
	Long:  "Open the reader at a location such as index.html, novel.html?id=<id> or chapter.html?id=<id>&chapter=<n>",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRead,
}

func init() {
	readCmd.Flags().StringVar(&readArgs.logFile, "log-file", "", "log file (default ~/.config/novel_shelf/debug.log)")
	RootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	cfg, cfgPath, err := loadConfig()
	if err != nil {
		return err
	}
	if readArgs.logFile != "" {
		cfg.Log.File = readArgs.logFile
	}

	// the TUI owns the terminal
	logFile, err := utils.OpenLogFile(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logger := utils.NewLogger(logFile, cfg.Log.Level)
	slog.SetDefault(logger)

	if cfg.UI.Language != "" && !lang.SetLocale(lang.Locale(cfg.UI.Language)) {
		logger.Warn("unknown language, using default", "language", cfg.UI.Language)
	}

	store, closeStore, err := utils.OpenStore(cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open preference store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("closing preference store", "err", err)
		}
	}()

	catalog, err := library.LoadCatalog(cfg.Catalog.File)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	start := ui.HomeLocation()
	if len(args) > 0 {
		start = args[0]
	}
	loader := library.NewLoader(cfg.Source.BaseURL, library.WithLogger(logger))
	logger.Info("starting reader", "base_url", loader.BaseURL(), "store", cfg.Store.Backend, "novels", catalog.Len(), "start", start)

	return ui.RunApp(ui.AppDeps{
		Catalog:    catalog,
		Prefs:      utils.NewPreferences(store, utils.WithPrefsLogger(logger)),
		Fetcher:    loader,
		Config:     cfg,
		ConfigPath: cfgPath,
		Logger:     logger,
	}, start)
}
