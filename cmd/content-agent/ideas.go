package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JorgeGarc1/obliquo-automatizacion/internal/ideas"
)

var ideasCmd = &cobra.Command{
	Use:   "ideas",
	Short: "Generate script ideas from an analysis artifact",
	Long: `Ideas reads an analysis artifact and generates a batch of script ideas.
A fixed seed makes the batch reproducible.`,
	RunE: runIdeas,
}

func init() {
	ideasCmd.Flags().String("input", "analysis.yaml", "analysis artifact path")
	ideasCmd.Flags().String("output", "ideas.yaml", "output artifact path")
	ideasCmd.Flags().Int("count", 0, "ideas to generate (default 40)")
	ideasCmd.Flags().Int64("seed", 0, "random seed for reproducible generation")

	rootCmd.AddCommand(ideasCmd)
}

func runIdeas(cmd *cobra.Command, args []string) error {
	cfg := buildPipelineConfig()
	if n, _ := cmd.Flags().GetInt("count"); n > 0 {
		cfg.Ideas.Count = n
	}
	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		cfg.Ideas.Seed = seed
	}
	count := cfg.Ideas.Count
	if count <= 0 {
		count = 40
	}

	input, _ := cmd.Flags().GetString("input")
	var artifact analysisArtifact
	if err := readYAMLFile(input, &artifact); err != nil {
		return err
	}

	generator := ideas.NewGenerator(seededRand(cfg.Ideas.Seed))
	batch := generator.Generate(artifact.Analysis, artifact.Profile, count)

	output, _ := cmd.Flags().GetString("output")
	if err := writeYAMLFile(output, batch); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Generated %d script ideas -> %s\n", len(batch), output)
	return nil
}
