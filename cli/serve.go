package cli

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"novel_shelf/server"
	"novel_shelf/utils"
)

var serveArgs struct {
	dir  string
	addr string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the novel data tree over HTTP",
	Long:  "Serve a directory holding data/optimized/... over HTTP so the reader can fetch it",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveArgs.dir, "dir", "d", ".", "directory to serve")
	serveCmd.Flags().StringVarP(&serveArgs.addr, "addr", "a", "", "listen address (default: host and port of the configured base url)")
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	logger := utils.NewLogger(os.Stderr, cfg.Log.Level)

	addr := serveArgs.addr
	if addr == "" {
		addr, err = listenAddr(cfg.Source.BaseURL)
		if err != nil {
			return err
		}
	}
	if _, err := os.Stat(serveArgs.dir); err != nil {
		return fmt.Errorf("cannot serve %s: %w", serveArgs.dir, err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return server.Run(ctx, addr, serveArgs.dir, logger)
}

// listenAddr derives ":port" from the base url the reader fetches from.
func listenAddr(baseURL string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	port := u.Port()
	if port == "" {
		port = "80"
		if u.Scheme == "https" {
			port = "443"
		}
	}
	return ":" + port, nil
}
