package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the console configuration, loaded from YAML.
type Config struct {
	History struct {
		Limit int    `mapstructure:"limit"`
		File  string `mapstructure:"file"`
	} `mapstructure:"history"`

	Console struct {
		PageSize int `mapstructure:"page_size"`
	} `mapstructure:"console"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.History.Limit = 100
	cfg.History.File = defaultHistoryFile()
	cfg.Console.PageSize = 50
	return &cfg
}

// Load reads a YAML config file, filling unset keys with defaults.
func Load(path string) (*Config, error) {
	def := Default()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("history.limit", def.History.Limit)
	v.SetDefault("history.file", def.History.File)
	v.SetDefault("console.page_size", def.Console.PageSize)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cyclop_history.json"
	}
	return filepath.Join(home, ".cyclop_history.json")
}
