// Package config materializes runtime configuration once, at startup,
// so the rest of the tool takes plain values instead of reading the
// environment ad hoc.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	Level      string
	Pretty     bool
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Config is the top-level configuration.
type Config struct {
	Logging LoggingConfig

	// OutputDir, when set, is where default-named output files land.
	// Empty means next to the input file.
	OutputDir string
}

// Load reads configuration with the usual precedence: defaults, then an
// optional yaml config file, then PDFEXTRACT_* environment variables.
// A .env file in the working directory is honored before env lookup.
func Load(cfgFile string) (Config, error) {
	// Ignore a missing .env; it is optional by design.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.pretty", true)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 14)
	v.SetDefault("log.compress", true)
	v.SetDefault("output.dir", "")

	v.SetEnvPrefix("PDFEXTRACT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	return Config{
		Logging: LoggingConfig{
			Level:      v.GetString("log.level"),
			Pretty:     v.GetBool("log.pretty"),
			File:       v.GetString("log.file"),
			MaxSizeMB:  v.GetInt("log.max_size_mb"),
			MaxBackups: v.GetInt("log.max_backups"),
			MaxAgeDays: v.GetInt("log.max_age_days"),
			Compress:   v.GetBool("log.compress"),
		},
		OutputDir: v.GetString("output.dir"),
	}, nil
}
