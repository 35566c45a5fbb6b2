package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"montecarlo-go/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "montecarlo",
	Short: "Monte Carlo point classification and synthetic data explorer",
	Long:  "Generates two Gaussian point clouds, classifies query points by mean Euclidean distance, renders the result and explores a synthetic CDMX hotel dataset.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
