// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ScriptIdea is one generated content-script concept. IDs are 1-based and
// stable across a generation batch. Improvement produces new records; the
// originals are never mutated.
type ScriptIdea struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Format      string `json:"format" yaml:"format"`
	Theme       string `json:"theme" yaml:"theme"`
	Angle       string `json:"angle" yaml:"angle"`
	Topic       string `json:"topic" yaml:"topic"`
	Description string `json:"description" yaml:"description"`

	// KeyElements are deduplicated script building blocks.
	KeyElements []string `json:"key_elements" yaml:"key_elements"`

	// EstimatedDuration is a human-readable duration range.
	EstimatedDuration string `json:"estimated_duration" yaml:"estimated_duration"`

	// TargetPlatforms are suggested publishing platforms, deduplicated.
	TargetPlatforms []string `json:"target_platforms" yaml:"target_platforms"`
}

// Feedback is structured user input collected after presenting ideas.
// Fields are present only when the user supplied them; Improve drives the
// refinement loop (false or absent ends it).
type Feedback struct {
	Rating             string   `json:"rating,omitempty" yaml:"rating,omitempty"`
	Improvements       string   `json:"improvements,omitempty" yaml:"improvements,omitempty"`
	ToneChange         string   `json:"tone_change,omitempty" yaml:"tone_change,omitempty"`
	FormatChange       string   `json:"format_change,omitempty" yaml:"format_change,omitempty"`
	AdditionalElements []string `json:"additional_elements,omitempty" yaml:"additional_elements,omitempty"`
	Improve            bool     `json:"improve" yaml:"improve"`
}

// IsZero reports whether the feedback carries no information at all.
func (f Feedback) IsZero() bool {
	return f.Rating == "" && f.Improvements == "" && f.ToneChange == "" &&
		f.FormatChange == "" && len(f.AdditionalElements) == 0 && !f.Improve
}
