package config

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"montecarlo-go/internal/classifier"
	"montecarlo-go/pkg/normalboxmueller"
	"montecarlo-go/pkg/scatterplotter"
)

// Config holds the full application configuration.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation" mapstructure:"simulation"`
	Plot       PlotConfig       `yaml:"plot" mapstructure:"plot"`
	Hotels     HotelsConfig     `yaml:"hotels" mapstructure:"hotels"`
	Server     ServerConfig     `yaml:"server" mapstructure:"server"`
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
}

// SimulationConfig holds the defaults of the two class clouds. MaxSamples
// caps the samples per class accepted from config, flags and API requests.
type SimulationConfig struct {
	Samples    int        `yaml:"samples" mapstructure:"samples"`
	StdDev     float64    `yaml:"std_dev" mapstructure:"std_dev"`
	Seed       int64      `yaml:"seed" mapstructure:"seed"`
	Center0    [2]float64 `yaml:"center0" mapstructure:"center0"`
	Center1    [2]float64 `yaml:"center1" mapstructure:"center1"`
	Sampler    string     `yaml:"sampler" mapstructure:"sampler"`
	Points     string     `yaml:"points" mapstructure:"points"`
	MaxSamples int        `yaml:"max_samples" mapstructure:"max_samples"`
}

// PlotConfig sizes rendered figures. Width and height are in inches.
type PlotConfig struct {
	Width    float64 `yaml:"width" mapstructure:"width"`
	Height   float64 `yaml:"height" mapstructure:"height"`
	FontSize float64 `yaml:"font_size" mapstructure:"font_size"`
	GridSize int     `yaml:"grid_size" mapstructure:"grid_size"`
}

// HotelsConfig configures the synthetic hotel dataset.
type HotelsConfig struct {
	Count         int   `yaml:"count" mapstructure:"count"`
	Seed          int64 `yaml:"seed" mapstructure:"seed"`
	RollingWindow int   `yaml:"rolling_window" mapstructure:"rolling_window"`
	MaxCount      int   `yaml:"max_count" mapstructure:"max_count"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures zap.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Params converts the simulation section into classifier parameters.
func (s SimulationConfig) Params() classifier.Params {
	return classifier.Params{
		Samples: s.Samples,
		StdDev:  s.StdDev,
		Seed:    s.Seed,
		Center0: classifier.Point{X: s.Center0[0], Y: s.Center0[1]},
		Center1: classifier.Point{X: s.Center1[0], Y: s.Center1[1]},
	}
}

// CheckSamples reports whether n samples per class are within the limits.
func (s SimulationConfig) CheckSamples(n int) error {
	if s.MaxSamples < 1 {
		return eris.Errorf("config: simulation.max_samples must be positive, got %d", s.MaxSamples)
	}
	if n < 1 || n > s.MaxSamples {
		return eris.Errorf("config: samples must be in [1, %d], got %d", s.MaxSamples, n)
	}
	return nil
}

// CheckCount reports whether a dataset of n hotels is within the limits.
func (h HotelsConfig) CheckCount(n int) error {
	if h.MaxCount < 1 {
		return eris.Errorf("config: hotels.max_count must be positive, got %d", h.MaxCount)
	}
	if n < 1 || n > h.MaxCount {
		return eris.Errorf("config: hotel count must be in [1, %d], got %d", h.MaxCount, n)
	}
	return nil
}

// Options converts the plot section into scatter plot options.
func (p PlotConfig) Options() scatterplotter.Options {
	return scatterplotter.Options{Width: p.Width, Height: p.Height, FontSize: p.FontSize}
}

// Validate checks the values that commands rely on.
func (c *Config) Validate() error {
	if err := c.Simulation.Params().Validate(); err != nil {
		return eris.Wrap(err, "config: simulation")
	}
	if err := c.Simulation.CheckSamples(c.Simulation.Samples); err != nil {
		return err
	}
	if _, err := normalboxmueller.NewDistribution(c.Simulation.Sampler); err != nil {
		return eris.Wrap(err, "config: simulation.sampler")
	}
	if c.Plot.Width <= 0 || c.Plot.Height <= 0 {
		return eris.Errorf("config: plot size must be positive, got %vx%v", c.Plot.Width, c.Plot.Height)
	}
	if c.Plot.GridSize < 2 {
		return eris.Errorf("config: plot.grid_size must be at least 2, got %d", c.Plot.GridSize)
	}
	if err := c.Hotels.CheckCount(c.Hotels.Count); err != nil {
		return err
	}
	if c.Hotels.RollingWindow < 1 {
		return eris.Errorf("config: hotels.rolling_window must be at least 1, got %d", c.Hotels.RollingWindow)
	}
	return nil
}

// ToString renders the configuration for the startup log.
func (c *Config) ToString() string {
	return fmt.Sprintf("samples=%d std_dev=%v seed=%d center0=%v center1=%v sampler=%s hotels=%d",
		c.Simulation.Samples, c.Simulation.StdDev, c.Simulation.Seed,
		c.Simulation.Center0, c.Simulation.Center1, c.Simulation.Sampler, c.Hotels.Count)
}

// Load reads config.yaml (optional), MONTECARLO_* environment variables and
// defaults, in increasing order of precedence for the first two.
func Load() (*Config, error) {
	return LoadWith(viper.New())
}

// LoadWith loads the configuration through v, so callers can bind flags first.
func LoadWith(v *viper.Viper) (*Config, error) {
	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("MONTECARLO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("simulation.samples", 1000)
	v.SetDefault("simulation.std_dev", 1.2)
	v.SetDefault("simulation.seed", 42)
	v.SetDefault("simulation.center0", []float64{2, 2})
	v.SetDefault("simulation.center1", []float64{6, 6})
	v.SetDefault("simulation.sampler", "gonum")
	v.SetDefault("simulation.points", "4,4\n3,2\n6,5\n1,8")
	v.SetDefault("simulation.max_samples", 5000)
	v.SetDefault("plot.width", 10)
	v.SetDefault("plot.height", 6)
	v.SetDefault("plot.font_size", 14)
	v.SetDefault("plot.grid_size", 60)
	v.SetDefault("hotels.count", 1000)
	v.SetDefault("hotels.seed", 42)
	v.SetDefault("hotels.rolling_window", 7)
	v.SetDefault("hotels.max_count", 10000)
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
