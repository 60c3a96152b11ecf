package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/artpar/cmdeploy/internal/core/pipeline"
	"github.com/artpar/cmdeploy/internal/shell/source"
)

// =============================================================================
// Config Types
// =============================================================================

// Config holds all application configuration.
type Config struct {
	Input     InputConfig     `mapstructure:"input"`
	Transform TransformConfig `mapstructure:"transform"`
	Output    OutputConfig    `mapstructure:"output"`
	Log       LogConfig       `mapstructure:"log"`
}

// InputConfig holds document acquisition configuration.
type InputConfig struct {
	File     string `mapstructure:"file"`
	URL      string `mapstructure:"url"` // full deployment endpoint, e.g. http://cm:7180/api/v10/cm/deployment
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`

	Timeout      time.Duration `mapstructure:"timeout"`
	RetryMax     int           `mapstructure:"retry_max"`
	RetryWaitMin time.Duration `mapstructure:"retry_wait_min"`
	RetryWaitMax time.Duration `mapstructure:"retry_wait_max"`
}

// SourceOptions converts the input configuration for source.Load.
func (c InputConfig) SourceOptions() source.Options {
	return source.Options{
		File:         c.File,
		URL:          c.URL,
		Username:     c.Username,
		Password:     c.Password,
		Timeout:      c.Timeout,
		RetryMax:     c.RetryMax,
		RetryWaitMin: c.RetryWaitMin,
		RetryWaitMax: c.RetryWaitMax,
	}
}

// TransformConfig selects the pipeline stages.
type TransformConfig struct {
	Reformat    bool   `mapstructure:"reformat"`
	Sort        bool   `mapstructure:"sort"`
	AddAPIPaths bool   `mapstructure:"add_api_paths"`
	APIVersion  string `mapstructure:"api_version"`
}

// PipelineOptions converts the transform configuration for pipeline.Build.
func (c TransformConfig) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Reformat:    c.Reformat,
		Sort:        c.Sort,
		AddAPIPaths: c.AddAPIPaths,
		APIVersion:  c.APIVersion,
	}
}

// OutputConfig holds rendering configuration.
type OutputConfig struct {
	Format string `mapstructure:"format"` // json, yaml or xml
	Pretty bool   `mapstructure:"pretty"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// =============================================================================
// Config Loading
// =============================================================================

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"file":          "input.file",
	"url":           "input.url",
	"user":          "input.username",
	"pass":          "input.password",
	"timeout":       "input.timeout",
	"retry-max":     "input.retry_max",
	"reformat":      "transform.reformat",
	"sort":          "transform.sort",
	"add-api-paths": "transform.add_api_paths",
	"api-version":   "transform.api_version",
	"output-format": "output.format",
	"pretty":        "output.pretty",
	"log-level":     "log.level",
	"log-format":    "log.format",
}

// LoadConfig loads configuration from defaults, an optional file, the
// environment and finally the given flags. Flags are only applied when set
// on the command line; flags may be nil.
func LoadConfig(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("input.file", "")
	v.SetDefault("input.url", "")
	v.SetDefault("input.username", "")
	v.SetDefault("input.password", "")
	v.SetDefault("input.timeout", "30s")
	v.SetDefault("input.retry_max", 3)
	v.SetDefault("input.retry_wait_min", "1s")
	v.SetDefault("input.retry_wait_max", "30s")
	v.SetDefault("transform.reformat", false)
	v.SetDefault("transform.sort", false)
	v.SetDefault("transform.add_api_paths", false)
	v.SetDefault("transform.api_version", pipeline.DefaultAPIVersion)
	v.SetDefault("output.format", "json")
	v.SetDefault("output.pretty", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	// An explicitly named file must exist and parse
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigParseError); ok {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("CMDEPLOY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// =============================================================================
// Logger Setup
// =============================================================================

// SetupLogger creates a logger with the configured level and format writing
// to w. Standard output is reserved for the rendered document.
func SetupLogger(cfg *Config, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Log.Level)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Log.Format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// parseLevel reads a level name the way slog prints them, case-insensitively
// and with optional offsets such as "info+2". Anything else, "warning"
// included, gets the warn default.
func parseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelWarn
	}
	return level
}
