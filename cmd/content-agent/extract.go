package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/JorgeGarc1/obliquo-automatizacion/internal/docsource"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/textproc"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract text features from business documents",
	Long: `Extract fetches the documents and runs the feature extraction stage:
cleaned full text, key noun phrases, named entities, and ranked topic
frequencies. The result is written as a YAML artifact consumed by analyze.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("source", "", "document location (directory or URL manifest, overrides config)")
	extractCmd.Flags().String("provider", "", "document source provider: local or web")
	extractCmd.Flags().String("model", "", "linguistic model identifier (default prose)")
	extractCmd.Flags().String("output", "processed.yaml", "output artifact path")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := buildPipelineConfig()
	applyStringFlag(cmd, "source", &cfg.DocumentSource.FolderRef)
	applyStringFlag(cmd, "provider", &cfg.DocumentSource.Provider)
	applyStringFlag(cmd, "model", &cfg.Text.Model)
	if cfg.DocumentSource.FolderRef == "" {
		return fmt.Errorf("no document location configured (set --source or document_source.folder_ref)")
	}

	client := &http.Client{Timeout: cfg.DocumentSource.Timeout}
	source, err := docsource.New(cfg.DocumentSource, client)
	if err != nil {
		return err
	}

	tagger, err := textproc.NewTagger(cfg.Text.Model)
	if err != nil {
		return err
	}

	docs, err := source.FetchDocuments(context.Background(), cfg.DocumentSource.FolderRef)
	if err != nil {
		return fmt.Errorf("document source failed: %w", err)
	}

	processed, err := textproc.Process(docs, tagger)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if err := writeYAMLFile(output, processed); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Processed %d documents: %d key ideas, %d entities, %d topics -> %s\n",
		processed.DocumentCount, len(processed.KeyIdeas), len(processed.Entities), len(processed.Topics), output)
	return nil
}
