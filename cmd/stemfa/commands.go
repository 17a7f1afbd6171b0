package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blevesearch/bleve"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kuandriy/persian-stemmer/internal/indexing"
	"github.com/kuandriy/persian-stemmer/internal/text"
)

func newStemCmd(a *app) *cobra.Command {
	var plain, once bool

	cmd := &cobra.Command{
		Use:   "stem [words...]",
		Short: "Stem words given as arguments, or one per stdin line",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			defer a.saveCache(e)

			stem := e.stemmer.Stem
			if once {
				stem = e.stemmer.StemOnce
			}
			w := cmd.OutOrStdout()
			emit := func(word string) {
				if plain {
					fmt.Fprintln(w, stem(word))
					return
				}
				fmt.Fprintf(w, "%s\t%s\n", word, stem(word))
			}

			if len(args) > 0 {
				for _, word := range args {
					emit(word)
				}
				return nil
			}
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				if word := strings.TrimSpace(sc.Text()); word != "" {
					emit(word)
				}
			}
			return sc.Err()
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print stems only")
	cmd.Flags().BoolVar(&once, "once", false, "run a single pass instead of stemming to a fixpoint")
	return cmd
}

func newTokensCmd(a *app) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "tokens [text...]",
		Short: "Tokenize text (stdin when absent) and print the stem of each token",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				input = string(data)
			}

			e, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			defer a.saveCache(e)

			w := cmd.OutOrStdout()
			if top == 0 {
				for _, stem := range text.StemAll(text.Tokenize(input), e.stemmer.Stem) {
					fmt.Fprintln(w, stem)
				}
				return nil
			}

			// Each line counts as one document.
			freq := text.NewFreq()
			for _, line := range strings.Split(input, "\n") {
				if stems := text.StemAll(text.Tokenize(line), e.stemmer.Stem); len(stems) > 0 {
					freq.Add(stems)
				}
			}
			for _, tc := range freq.Top(top) {
				fmt.Fprintf(w, "%s\t%d\t%d\n", tc.Term, tc.Count, tc.DF)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 0, "print the N most frequent stems with their count and line frequency instead (negative for all)")
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var query string
	var size int

	cmd := &cobra.Command{
		Use:   "search --query q files...",
		Short: "Index each line of the files and print lines matching the query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			defer a.saveCache(e)

			indexing.Use(e.stemmer, a.cfg.LatinStemming)
			idx, err := indexing.NewIndex()
			if err != nil {
				return fmt.Errorf("create index: %w", err)
			}
			defer idx.Close()

			for _, path := range args {
				if err := indexFile(a, idx, path); err != nil {
					return err
				}
			}

			res, err := indexing.Search(idx, query, size)
			if err != nil {
				return fmt.Errorf("search: %w", err)
			}
			w := cmd.OutOrStdout()
			for _, hit := range res.Hits {
				fmt.Fprintf(w, "%s\t%.3f\t%v\n", hit.ID, hit.Score, hit.Fields[indexing.FieldText])
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "query text")
	cmd.Flags().IntVarP(&size, "size", "n", 10, "maximum number of hits")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}

func indexFile(a *app, idx bleve.Index, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := indexing.IndexLines(idx, path, f)
	if err != nil {
		return fmt.Errorf("index %s: %w", path, err)
	}
	a.log.Debug("indexed", zap.String("file", path), zap.Int("lines", n))
	return nil
}
