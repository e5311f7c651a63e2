package cli

import (
	"github.com/spf13/cobra"

	"novel_shelf/utils"
)

type rootArgs struct {
	configPath string
	baseURL    string
	store      string
	logLevel   string
}

var rArgs rootArgs

var RootCmd = &cobra.Command{
	Use:           "novel_shelf",
	Short:         "Read novels from a static novel site in the terminal",
	Long:          "Read novels from a static novel site in the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	// with no subcommand, open the library
	RunE: runRead,
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVarP(&rArgs.configPath, "config", "c", "", "config file (default ~/.config/novel_shelf/config.toml)")
	flags.StringVar(&rArgs.baseURL, "base-url", "", "origin the data tree is served from")
	flags.StringVar(&rArgs.store, "store", "", "preference backend: file, sqlite or memory")
	flags.StringVar(&rArgs.logLevel, "log-level", "", "log level: debug, info, warn or error")
}

// loadConfig reads the config file and applies the command line overrides.
func loadConfig() (utils.Config, string, error) {
	path := rArgs.configPath
	if path == "" {
		path = utils.DefaultConfigPath()
	}
	cfg, err := utils.LoadConfig(path)
	if err != nil {
		return cfg, path, err
	}
	applyFlags(&cfg, rArgs)
	return cfg, path, nil
}

func applyFlags(cfg *utils.Config, args rootArgs) {
	if args.baseURL != "" {
		cfg.Source.BaseURL = args.baseURL
	}
	if args.store != "" {
		cfg.Store.Backend = args.store
	}
	if args.logLevel != "" {
		cfg.Log.Level = args.logLevel
	}
}
