// Command stemfa stems Persian words, tokenizes text and searches files with
// a stemming analyzer.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kuandriy/persian-stemmer/internal/config"
	"github.com/kuandriy/persian-stemmer/internal/persist"
	"github.com/kuandriy/persian-stemmer/internal/stemmer"
	"github.com/kuandriy/persian-stemmer/internal/tables"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "stemfa: %v\n", err)
		os.Exit(1)
	}
}

// app carries what the root command resolves for its subcommands.
type app struct {
	configPath string
	dataDir    string
	cacheFile  string
	resetCache bool
	verbose    bool

	cfg config.Config
	log *zap.Logger
}

// engine is a loaded stemmer and the tables behind it.
type engine struct {
	stemmer *stemmer.Stemmer
	tables  *stemmer.Tables
}

// newRootCmd builds the command tree. A non-nil log is used as is instead of
// building one from the configuration.
func newRootCmd(log *zap.Logger) *cobra.Command {
	a := &app{log: log}

	root := &cobra.Command{
		Use:   "stemfa",
		Short: "Persian stemmer",
		Long: `stemfa reduces inflected Persian words to their stems using a lexicon,
broken-plural and verb dictionaries and an ordered table of pattern rules.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.dataDir, "data", "", "directory holding the table files (overrides config)")
	pf.StringVar(&a.cacheFile, "cache-file", "", "restore the stem cache from and save it to this JSON file")
	pf.BoolVar(&a.resetCache, "reset-cache", false, "delete the cache file before starting")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newStemCmd(a),
		newTokensCmd(a),
		newSearchCmd(a),
		newExplainCmd(a),
		newInspectCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("data") {
		cfg.DataDir = a.dataDir
	}
	if cmd.Flags().Changed("cache-file") {
		cfg.CacheFile = a.cacheFile
	}
	if a.verbose {
		cfg.LogLevel = zapcore.DebugLevel.String()
	}
	a.cfg = cfg

	if a.log != nil {
		return nil
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.Level())
	a.log, err = zc.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	return nil
}

// engine loads the tables and builds a stemmer, warming its cache from the
// cache file when one is configured.
func (a *app) engine(ctx context.Context) (*engine, error) {
	loader := tables.NewLoader(a.cfg.DataDir, a.cfg.EnableVerb, a.log)
	loader.Files = a.cfg.Files
	t, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	s, err := stemmer.New(t, a.cfg.StemmerOptions(a.log))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", tables.ErrInit, err)
	}

	if path := a.cfg.CacheFile; path != "" && a.cfg.EnableCache {
		if a.resetCache {
			if err := persist.Remove(path); err != nil {
				return nil, fmt.Errorf("reset cache: %w", err)
			}
		}
		stems, err := persist.LoadSnapshot(path)
		if err != nil {
			// A bad snapshot only costs a cold cache.
			a.log.Warn("cache snapshot ignored", zap.String("path", path), zap.Error(err))
		} else {
			s.Restore(stems)
		}
	}
	return &engine{stemmer: s, tables: t}, nil
}

// saveCache writes the stem cache back to the cache file, if any.
func (a *app) saveCache(e *engine) {
	path := a.cfg.CacheFile
	if path == "" || !a.cfg.EnableCache {
		return
	}
	if err := persist.SaveSnapshot(path, e.stemmer.Snapshot()); err != nil {
		a.log.Warn("save cache snapshot", zap.String("path", path), zap.Error(err))
		return
	}
	a.log.Debug("cache snapshot saved", zap.String("path", path), zap.Int("entries", e.stemmer.CacheLen()))
}
