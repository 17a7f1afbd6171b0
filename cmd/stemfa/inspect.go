package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kuandriy/persian-stemmer/internal/config"
	"github.com/kuandriy/persian-stemmer/internal/stemmer"
)

func newExplainCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "explain word",
		Short: "Show every stage of one uncached stemming pass",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			tr := e.stemmer.Explain(args[0])
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), "explain", tr)
			}
			explainText(cmd.OutOrStdout(), tr, e.stemmer.Stem(args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the trace as JSON")
	return cmd
}

func explainText(w io.Writer, tr stemmer.Trace, fixpoint string) {
	fmt.Fprintf(w, "input:        %q\n", tr.Input)
	fmt.Fprintf(w, "normalized:   %s\n", tr.Normalized)
	if tr.Skipped != "" {
		fmt.Fprintf(w, "skipped:      %s\n", tr.Skipped)
		fmt.Fprintf(w, "result:       %s\n", tr.Result)
		return
	}
	if tr.Cached != "" {
		fmt.Fprintf(w, "cached:       %s\n", tr.Cached)
	}
	if tr.Working != "" {
		fmt.Fprintf(w, "working:      %s\n", tr.Working)
	}
	if tr.Mokassar != "" {
		fmt.Fprintf(w, "mokassar:     %s\n", tr.Mokassar)
	}
	if len(tr.Candidates) > 0 {
		fmt.Fprintf(w, "candidates:   %s\n", strings.Join(tr.Candidates, ", "))
		fmt.Fprintf(w, "terminated:   %t\n", tr.Terminated)
	}
	if tr.Verb != "" {
		fmt.Fprintf(w, "verb:         %s\n", tr.Verb)
	}
	if tr.VerbPattern != "" {
		fmt.Fprintf(w, "verb pattern: %s\n", tr.VerbPattern)
	}
	if tr.Fallback != "" {
		fmt.Fprintf(w, "fallback:     %s\n", tr.Fallback)
	}
	if tr.TieBreak {
		fmt.Fprintln(w, "tie break:    yes")
	}
	fmt.Fprintf(w, "result:       %s\n", tr.Result)
	fmt.Fprintf(w, "fixpoint:     %s\n", fixpoint)
}

type tableSizes struct {
	Rules            int `json:"rules"`
	VerbRules        int `json:"verbRules"`
	Lexicon          int `json:"lexicon"`
	Mokassar         int `json:"mokassar"`
	Verbs            int `json:"verbs"`
	InformalVerbs    int `json:"informalVerbs"`
	SuffixExceptions int `json:"suffixExceptions"`
	PrefixExceptions int `json:"prefixExceptions"`
}

type inspectResult struct {
	Config       config.Config `json:"config"`
	Tables       tableSizes    `json:"tables"`
	CacheEntries int           `json:"cacheEntries"`
}

func newInspectCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Load the tables and report their sizes with the effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			t := e.tables
			res := inspectResult{
				Config: a.cfg,
				Tables: tableSizes{
					Rules:            len(t.Rules),
					VerbRules:        len(t.VerbRules),
					Lexicon:          len(t.Lexicon),
					Mokassar:         len(t.Mokassar),
					Verbs:            len(t.Verbs),
					InformalVerbs:    len(t.InformalVerbs),
					SuffixExceptions: len(t.SuffixExceptions),
					PrefixExceptions: len(t.PrefixExceptions),
				},
				CacheEntries: e.stemmer.CacheLen(),
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), "inspect", res)
			}
			inspectText(cmd.OutOrStdout(), res)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func inspectText(w io.Writer, r inspectResult) {
	fmt.Fprintln(w, "--- Config ---")
	fmt.Fprintf(w, "  data_dir:       %s\n", r.Config.DataDir)
	fmt.Fprintf(w, "  enable_cache:   %t\n", r.Config.EnableCache)
	fmt.Fprintf(w, "  enable_verb:    %t\n", r.Config.EnableVerb)
	fmt.Fprintf(w, "  pattern_rank:   %d\n", r.Config.PatternRank)
	fmt.Fprintf(w, "  cache_size:     %d\n", r.Config.CacheSize)
	fmt.Fprintf(w, "  cache_file:     %s\n", r.Config.CacheFile)
	fmt.Fprintf(w, "  latin_stemming: %t\n", r.Config.LatinStemming)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Tables ---")
	fmt.Fprintf(w, "  rules:             %d\n", r.Tables.Rules)
	fmt.Fprintf(w, "  verb rules:        %d\n", r.Tables.VerbRules)
	fmt.Fprintf(w, "  lexicon:           %d\n", r.Tables.Lexicon)
	fmt.Fprintf(w, "  mokassar:          %d\n", r.Tables.Mokassar)
	fmt.Fprintf(w, "  verbs:             %d\n", r.Tables.Verbs)
	fmt.Fprintf(w, "  informal verbs:    %d\n", r.Tables.InformalVerbs)
	fmt.Fprintf(w, "  suffix exceptions: %d\n", r.Tables.SuffixExceptions)
	fmt.Fprintf(w, "  prefix exceptions: %d\n", r.Tables.PrefixExceptions)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Cache ---")
	fmt.Fprintf(w, "  entries: %d\n", r.CacheEntries)
}

func newConfigCmd(a *app) *cobra.Command {
	var env bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if env {
				config.Usage(cmd.OutOrStdout())
				return nil
			}
			return a.cfg.Dump(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&env, "env", false, "list the environment variables instead")
	return cmd
}

func writeJSON(w io.Writer, what string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", what, err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
