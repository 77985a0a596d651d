package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/amankumarsingh77/invertex/internal/config"
	"github.com/amankumarsingh77/invertex/internal/corpus"
	"github.com/amankumarsingh77/invertex/internal/index"
	"github.com/amankumarsingh77/invertex/internal/search"
	"github.com/amankumarsingh77/invertex/internal/synonyms"
	"github.com/spf13/cobra"
)

// titlesByDocID loads doc_id -> title for result formatting. A corpus in
// JSON-array shape has no title field, so lookups simply miss.
func titlesByDocID(corpusPath string) map[string]string {
	titles := make(map[string]string)
	if corpusPath == "" {
		return titles
	}
	records, err := corpus.Load(corpusPath)
	if err != nil {
		return titles
	}
	for _, rec := range records {
		if rec.Title != "" {
			titles[rec.DocID] = rec.Title
		}
	}
	return titles
}

func repl(cmd *cobra.Command, pipeline *search.Pipeline, titles map[string]string, numResults int) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			return nil
		}

		results := pipeline.Run(line, numResults)
		if len(results.ResultDocIDs) == 0 {
			fmt.Fprintln(out, "(no results)")
			continue
		}
		for i, docID := range results.ResultDocIDs {
			if title, ok := titles[docID]; ok {
				fmt.Fprintf(out, "%d. %s — %s\n", i+1, docID, title)
			} else {
				fmt.Fprintf(out, "%d. %s\n", i+1, docID)
			}
		}
	}
	return scanner.Err()
}

var rootCmd = &cobra.Command{
	Use:   "search [index path] [corpus path]",
	Short: "Interactively query an inverted index",
	Long: `search loads a built inverted index and reads queries from standard
input, printing ranked doc_ids (and titles, when available from the
optional corpus) for each. It terminates on an empty input line.

Examples:
  search index.jsonl
  search index.jsonl corpus.jsonl < queries.txt`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		numResults, _ := cmd.Flags().GetInt("num-results")
		synonymsPath, _ := cmd.Flags().GetString("synonyms")

		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			cfg = config.DefaultConfig()
		}
		if !cmd.Flags().Changed("num-results") {
			numResults = cfg.DefaultNumResults
		}
		if !cmd.Flags().Changed("synonyms") {
			synonymsPath = cfg.SynonymsPath
		}

		ix, err := index.Load(args[0])
		if err != nil {
			return fmt.Errorf("loading index: %w", err)
		}

		var expander search.Expander
		if synonymsPath != "" {
			expander, err = synonyms.Load(synonymsPath)
			if err != nil {
				return fmt.Errorf("loading synonyms: %w", err)
			}
		}

		var corpusPath string
		if len(args) == 2 {
			corpusPath = args[1]
		}
		titles := titlesByDocID(corpusPath)

		pipeline := search.NewPipeline(ix, expander)
		return repl(cmd, pipeline, titles, numResults)
	},
}

func init() {
	rootCmd.Flags().String("config", "invertex.yaml", "Path to configuration file")
	rootCmd.Flags().Int("num-results", 0, "Maximum results per query (default from config)")
	rootCmd.Flags().String("synonyms", "", "Optional synonyms file for query expansion")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
