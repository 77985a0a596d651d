package main

import (
	"fmt"
	"log"
	"os"

	"github.com/amankumarsingh77/invertex/internal/config"
	"github.com/amankumarsingh77/invertex/internal/corpus"
	"github.com/amankumarsingh77/invertex/internal/index"
	"github.com/amankumarsingh77/invertex/internal/token"
	"github.com/spf13/cobra"
)

func buildIndex(corpusPath string) (*index.Index, error) {
	records, err := corpus.Load(corpusPath)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	ix := index.New()
	for _, rec := range records {
		tokens := token.Tokenize(rec.Text)
		if err := ix.AddDocument(index.Document{DocID: rec.DocID, Tokens: tokens}); err != nil {
			return nil, fmt.Errorf("indexing document %q: %w", rec.DocID, err)
		}
	}
	return ix, nil
}

var rootCmd = &cobra.Command{
	Use:   "buildindex [corpus path]",
	Short: "Build an inverted index from a document corpus",
	Long: `buildindex tokenizes every document in a corpus (JSON array or JSON Lines)
and writes the resulting inverted index as line-delimited JSON.

Examples:
  buildindex corpus.json
  buildindex corpus.jsonl --out index.jsonl`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		outPath, _ := cmd.Flags().GetString("out")

		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			log.Printf("using default configuration: %v", err)
			cfg = config.DefaultConfig()
		}

		corpusPath := cfg.CorpusPath
		if len(args) == 1 {
			corpusPath = args[0]
		}
		if !cmd.Flags().Changed("out") {
			outPath = cfg.IndexPath
		}

		ix, err := buildIndex(corpusPath)
		if err != nil {
			return err
		}

		if err := ix.Write(outPath); err != nil {
			return fmt.Errorf("writing index: %w", err)
		}

		log.Printf("indexed %d documents to %s", ix.NumDocuments(), outPath)
		return nil
	},
}

func init() {
	rootCmd.Flags().String("config", "invertex.yaml", "Path to configuration file")
	rootCmd.Flags().String("out", "", "Index output path (default from config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
