// Package config loads stemfa settings from an optional YAML file with
// STEMFA_* environment overrides.
package config

import (
	"fmt"
	"io"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/kuandriy/persian-stemmer/internal/stemmer"
	"github.com/kuandriy/persian-stemmer/internal/tables"
)

// Config is the process-wide configuration. Boolean and integer settings
// carry no env-default tag: their defaults come from Default, so an
// explicit false or 0 in the file is kept.
type Config struct {
	DataDir       string `yaml:"data_dir" env:"STEMFA_DATA_DIR" env-default:"data" env-description:"directory holding the table files"`
	EnableCache   bool   `yaml:"enable_cache" env:"STEMFA_ENABLE_CACHE" env-description:"memoize stems"`
	EnableVerb    bool   `yaml:"enable_verb" env:"STEMFA_ENABLE_VERB" env-description:"use the verb dictionaries and verb patterns"`
	PatternRank   int    `yaml:"pattern_rank" env:"STEMFA_PATTERN_RANK" env-description:"candidate selection: sign is sort order, magnitude is position"`
	CacheSize     int    `yaml:"cache_size" env:"STEMFA_CACHE_SIZE" env-description:"bound the cache to this many entries, 0 for unbounded"`
	CacheFile     string `yaml:"cache_file" env:"STEMFA_CACHE_FILE" env-description:"JSON file the cache is restored from and saved to"`
	LogLevel      string `yaml:"log_level" env:"STEMFA_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	LatinStemming bool   `yaml:"latin_stemming" env:"STEMFA_LATIN_STEMMING" env-description:"stem Latin tokens with the English snowball stemmer when indexing"`

	Files tables.Files `yaml:"files"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir:     "data",
		EnableCache: true,
		EnableVerb:  true,
		PatternRank: 1,
		LogLevel:    "info",
		Files:       tables.DefaultFiles(),
	}
}

// Load reads path when it is non-empty, then applies the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}

// StemmerOptions maps the config onto stemmer options.
func (c Config) StemmerOptions(log *zap.Logger) stemmer.Options {
	return stemmer.Options{
		EnableCache: c.EnableCache,
		EnableVerb:  c.EnableVerb,
		PatternRank: c.PatternRank,
		CacheSize:   c.CacheSize,
		Logger:      log,
	}
}

// Level parses LogLevel, falling back to info.
func (c Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// Dump writes c as YAML.
func (c Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Usage writes the environment variables Config understands.
func Usage(w io.Writer) {
	var cfg Config
	cleanenv.FUsage(w, &cfg, nil)()
}
