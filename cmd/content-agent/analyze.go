package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JorgeGarc1/obliquo-automatizacion/internal/audience"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/business"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/logger"
	"github.com/JorgeGarc1/obliquo-automatizacion/internal/websearch"
	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Derive the business analysis and audience profile",
	Long: `Analyze reads a processed-data artifact, optionally augments it with web
search results, and derives the heuristic business analysis plus the
audience profile. The result is written as a YAML artifact consumed by
ideas.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("input", "processed.yaml", "processed-data artifact path")
	analyzeCmd.Flags().String("output", "analysis.yaml", "output artifact path")
	analyzeCmd.Flags().Bool("no-search", false, "skip the web search augmentation")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := buildPipelineConfig()

	input, _ := cmd.Flags().GetString("input")
	var processed types.ProcessedData
	if err := readYAMLFile(input, &processed); err != nil {
		return err
	}

	levelStr, _ := cmd.Flags().GetString("log-level")
	log := logger.New(os.Stderr, levelStr)

	var additional []types.SearchResult
	if noSearch, _ := cmd.Flags().GetBool("no-search"); !noSearch {
		augmenter := websearch.NewAugmenter(buildSearcher(cfg.Search, log), cfg.Search)
		additional = augmenter.Augment(context.Background(), processed.KeyIdeas, os.Stderr)
	}

	if !business.Sufficient(processed, additional) {
		log.Warn("extracted data is thin; the analysis will be low-signal (run the full pipeline to supply more information)")
	}

	analysis := business.Analyze(processed, additional)
	profile := audience.Analyze(analysis)

	output, _ := cmd.Flags().GetString("output")
	artifact := analysisArtifact{Analysis: analysis, Profile: profile}
	if err := writeYAMLFile(output, artifact); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Business type %q, industry %q, tone %q -> %s\n",
		analysis.Structure.BusinessType, analysis.Structure.Industry, profile.Tone, output)
	return nil
}
