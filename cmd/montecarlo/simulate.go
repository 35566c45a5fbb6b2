package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"montecarlo-go/internal/presenter"
)

var simulateOutput string

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Write the simulated class clouds as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applySimulationFlags(cmd, &cfg.Simulation); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		c0, c1, _, err := simulate(cfg.Simulation, nil)
		if err != nil {
			return err
		}

		if simulateOutput == "" || simulateOutput == "-" {
			return presenter.WriteCloudsCSV(cmd.OutOrStdout(), c0, c1)
		}
		if err := presenter.SaveCloudsCSV(simulateOutput, c0, c1); err != nil {
			return err
		}
		zap.L().Info("clouds saved", zap.String("path", simulateOutput), zap.Int("points", c0.Len()+c1.Len()))
		return nil
	},
}

func init() {
	addSimulationFlags(simulateCmd)
	simulateCmd.Flags().StringVarP(&simulateOutput, "output", "o", "", "CSV output path (default stdout)")
	rootCmd.AddCommand(simulateCmd)
}
