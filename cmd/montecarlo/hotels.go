package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"montecarlo-go/internal/config"
	"montecarlo-go/internal/hotels"
	"montecarlo-go/internal/presenter"
)

var (
	hotelsUsers      []string
	hotelsCategories []string
	hotelsRolling    bool
	hotelsCSV        string
	hotelsGeoJSON    string
	hotelsChart      string
	hotelsSmooth     string
)

var hotelsCmd = &cobra.Command{
	Use:   "hotels",
	Short: "Explore the synthetic CDMX hotel dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyHotelsFlags(cmd, &cfg.Hotels); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := hotels.CheckSmoothing(hotelsSmooth); err != nil {
			return err
		}

		all, err := hotels.Generate(cfg.Hotels.Count, cfg.Hotels.Seed)
		if err != nil {
			return err
		}
		filtered := hotels.Filter(all, hotelsUsers, hotelsCategories)
		zap.L().Info("hotels filtered", zap.Int("total", len(all)), zap.Int("selected", len(filtered)))

		totals := hotels.ViewsByUser(filtered)
		users := make([]string, 0, len(totals))
		for u := range totals {
			users = append(users, u)
		}
		slices.Sort(users)
		out := cmd.OutOrStdout()
		for _, u := range users {
			fmt.Fprintf(out, "%-8s %d\n", u, totals[u])
		}

		if hotelsCSV != "" {
			if err := presenter.SaveToFile(hotelsCSV, func(w io.Writer) error {
				return presenter.WriteHotelsCSV(w, filtered)
			}); err != nil {
				return err
			}
			zap.L().Info("hotel table saved", zap.String("path", hotelsCSV))
		}

		if hotelsGeoJSON != "" {
			data, err := hotels.GeoJSON(filtered)
			if err != nil {
				return err
			}
			if err := os.WriteFile(hotelsGeoJSON, data, 0o644); err != nil {
				return eris.Wrapf(err, "write %s", hotelsGeoJSON)
			}
			zap.L().Info("hotel map saved", zap.String("path", hotelsGeoJSON))
		}

		if hotelsChart != "" {
			window := 1
			if hotelsRolling {
				window = cfg.Hotels.RollingWindow
			}
			series, err := hotels.SmoothedViewSeries(filtered, hotelsUsers, window, hotelsSmooth)
			if err != nil {
				return err
			}
			if err := presenter.SaveViewsChart(hotelsChart, series); err != nil {
				return err
			}
			zap.L().Info("views chart saved",
				zap.String("path", hotelsChart), zap.Int("window", window), zap.String("smooth", hotelsSmooth))
		}
		return nil
	},
}

func applyHotelsFlags(cmd *cobra.Command, h *config.HotelsConfig) error {
	f := cmd.Flags()
	var err error
	if f.Changed("n") {
		if h.Count, err = f.GetInt("n"); err != nil {
			return err
		}
	}
	if f.Changed("seed") {
		if h.Seed, err = f.GetInt64("seed"); err != nil {
			return err
		}
	}
	return nil
}

func addHotelsFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("n", 1000, "number of simulated hotels")
	f.Int64("seed", 42, "random seed")
	f.StringSliceVar(&hotelsUsers, "users", hotels.Users, "users to include")
	f.StringSliceVar(&hotelsCategories, "categories", hotels.Categories, "categories to include")
	f.BoolVar(&hotelsRolling, "rolling", false, "plot the per-user rolling mean of views")
	f.StringVar(&hotelsSmooth, "smooth", hotels.SmoothBox, "rolling kernel: box or gaussian")
	f.StringVar(&hotelsCSV, "csv", "", "write the filtered table to this CSV file")
	f.StringVar(&hotelsGeoJSON, "geojson", "", "write the filtered hotels as GeoJSON")
	f.StringVar(&hotelsChart, "chart", "", "write the views chart (.png, .pdf, .svg)")
}

func init() {
	addHotelsFlags(hotelsCmd)
	rootCmd.AddCommand(hotelsCmd)
}
