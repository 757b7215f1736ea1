// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "content-agent/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// DocumentSourceConfig holds settings for the document source collaborator.
type DocumentSourceConfig struct {
	HTTPConfig `yaml:",inline"`

	// Provider selects the source implementation: "local" or "web".
	Provider string `json:"provider" yaml:"provider"`

	// FolderRef names the document location: a directory path for the local
	// provider, or a URL manifest file for the web provider.
	FolderRef string `json:"folder_ref" yaml:"folder_ref"`

	// FetchDelay is the delay between consecutive web downloads (default 1s).
	FetchDelay time.Duration `json:"fetch_delay" yaml:"fetch_delay"`
}

// SearchConfig holds settings for the web search collaborator and the
// relevance augmenter built on it.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the Google Custom Search API key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// EngineID is the Custom Search engine identifier (cx).
	EngineID string `json:"engine_id,omitempty" yaml:"engine_id,omitempty"`

	// MaxIdeas caps how many key ideas are queried per run (default 5).
	MaxIdeas int `json:"max_ideas" yaml:"max_ideas"`

	// ResultsPerQuery is the number of results requested per query (default 5).
	ResultsPerQuery int `json:"results_per_query" yaml:"results_per_query"`

	// QueryDelay is the pacing interval between distinct queries (default 1s).
	// The external API throttles bursts, so pacing is a hard requirement.
	QueryDelay time.Duration `json:"query_delay" yaml:"query_delay"`
}

// TextConfig holds settings for the feature extraction stage.
type TextConfig struct {
	// Model is the linguistic pipeline identifier (default "prose").
	Model string `json:"model" yaml:"model"`
}

// IdeasConfig holds settings for the idea generation stage.
type IdeasConfig struct {
	// Count is the number of script ideas per generation batch (default 40).
	Count int `json:"count" yaml:"count"`

	// Seed seeds the sampling source. Zero means derive from the clock.
	Seed int64 `json:"seed" yaml:"seed"`
}

// UIConfig holds settings for the presentation collaborator.
type UIConfig struct {
	// Mode selects the presenter: "console" or "web".
	Mode string `json:"mode" yaml:"mode"`

	// Port is the listen port for the web presenter.
	Port int `json:"port" yaml:"port"`

	// ShowLimit is how many ideas the console presenter offers for
	// selection (default 10).
	ShowLimit int `json:"show_limit" yaml:"show_limit"`
}

// SessionConfig holds settings for the presenter-side session store.
type SessionConfig struct {
	// Dir is the directory containing the session database. Empty disables
	// session recording.
	Dir string `json:"dir" yaml:"dir"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	DocumentSource DocumentSourceConfig `json:"document_source" yaml:"document_source"`
	Search         SearchConfig         `json:"search" yaml:"search"`
	Text           TextConfig           `json:"text" yaml:"text"`
	Ideas          IdeasConfig          `json:"ideas" yaml:"ideas"`
	UI             UIConfig             `json:"ui" yaml:"ui"`
	Session        SessionConfig        `json:"session" yaml:"session"`
}
