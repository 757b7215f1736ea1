// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultDelay     = 1 * time.Second
	defaultUserAgent = "content-agent/0.1"
)

// buildPipelineConfig assembles the pipeline configuration from viper, with
// API credentials falling back to the .secrets/ directory.
func buildPipelineConfig() types.PipelineConfig {
	cfg := types.PipelineConfig{
		DocumentSource: types.DocumentSourceConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   durationOr("document_source.timeout", defaultTimeout),
				UserAgent: defaultUserAgent,
			},
			Provider:   viper.GetString("document_source.provider"),
			FolderRef:  viper.GetString("document_source.folder_ref"),
			FetchDelay: durationOr("document_source.fetch_delay", defaultDelay),
		},
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   durationOr("search.timeout", defaultTimeout),
				UserAgent: defaultUserAgent,
			},
			APIKey:          secretDefault("google-api-key", viper.GetString("search.api_key")),
			EngineID:        secretDefault("google-cse-id", viper.GetString("search.engine_id")),
			MaxIdeas:        viper.GetInt("search.max_ideas"),
			ResultsPerQuery: viper.GetInt("search.results_per_query"),
			QueryDelay:      durationOr("search.query_delay", defaultDelay),
		},
		Text: types.TextConfig{
			Model: viper.GetString("text.model"),
		},
		Ideas: types.IdeasConfig{
			Count: viper.GetInt("ideas.count"),
			Seed:  viper.GetInt64("ideas.seed"),
		},
		UI: types.UIConfig{
			Mode:      viper.GetString("ui.mode"),
			Port:      viper.GetInt("ui.port"),
			ShowLimit: viper.GetInt("ui.show_limit"),
		},
		Session: types.SessionConfig{
			Dir: viper.GetString("session.dir"),
		},
	}
	return cfg
}

func durationOr(key string, fallback time.Duration) time.Duration {
	if d := viper.GetDuration(key); d > 0 {
		return d
	}
	return fallback
}

// writeYAMLFile marshals v to path.
func writeYAMLFile(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// readYAMLFile unmarshals path into v.
func readYAMLFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// analysisArtifact is the YAML artifact exchanged between the analyze and
// ideas subcommands.
type analysisArtifact struct {
	Analysis types.BusinessAnalysis `yaml:"business_analysis"`
	Profile  types.AudienceProfile  `yaml:"audience_profile"`
}
