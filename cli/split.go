package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"novel_shelf/library"
	"novel_shelf/utils"
)

var splitArgs struct {
	outDir string
}

var splitCmd = &cobra.Command{
	Use:   "split <raw.json>...",
	Short: "Split raw novel dumps into index and chapter documents",
	Long:  "Split raw novel dumps (a JSON array of chapters per novel) into <out>/<id>/index.json and <out>/<id>/chapters/<n>.json",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSplit,
}

func init() {
	splitCmd.Flags().StringVarP(&splitArgs.outDir, "output-path", "o", library.DataRoot, "output directory")
	RootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	logger := utils.NewLogger(os.Stderr, cfg.Log.Level)

	results, err := library.SplitAll(args, splitArgs.outDir, logger)
	if err != nil {
		return fmt.Errorf("failed to split: %w", err)
	}
	for _, r := range results {
		fmt.Printf("%s: %d chapters -> %s\n", r.NovelID, r.Chapters, r.Dir)
	}
	return nil
}
