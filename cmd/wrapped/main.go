package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/wrapped"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	debug    bool
	dataPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "wrapped <command>",
	Short: "Year-in-review slideshow",
	Long: `wrapped plays a personal year-in-review as a full-screen slideshow.

Navigate with the arrow keys, space, swipes or the on-screen buttons.
The dataset defaults to the embedded one; pass --data to play your own
TOML, YAML or JSON file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if debug {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level, including frame stats")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "dataset file (.toml, .yaml, .yml or .json); embedded default if empty")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(outlineCmd)
}

// loadDataset reads --data, or returns the embedded dataset. The result is
// not validated.
func loadDataset() (*wrapped.Dataset, error) {
	if dataPath == "" {
		return wrapped.DefaultDataset(), nil
	}
	d, err := wrapped.LoadDataset(dataPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("dataset loaded", zap.String("path", dataPath))
	return d, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
