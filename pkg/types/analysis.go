// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BusinessStructure describes the classified shape of the business.
type BusinessStructure struct {
	// BusinessType is one of the known type keywords, or "unknown".
	BusinessType string `json:"business_type" yaml:"business_type"`

	// Industry is one of the known industry keywords, or "general".
	Industry string `json:"industry" yaml:"industry"`

	// Size is "small", "medium", "large", or "unknown".
	Size string `json:"size" yaml:"size"`

	// KeyComponents are the top topics of the processed data (at most 10).
	KeyComponents []TopicCount `json:"key_components" yaml:"key_components"`
}

// MarketPosition holds the heuristic market-position indicators.
type MarketPosition struct {
	CompetitiveAdvantages []string `json:"competitive_advantages" yaml:"competitive_advantages"`
	MarketGaps            []string `json:"market_gaps" yaml:"market_gaps"`
	UniqueSellingPoints   []string `json:"unique_selling_points" yaml:"unique_selling_points"`
}

// ValueNetwork lists the actors around the business. Only Stakeholders is
// populated by the analyzer today; the remaining slots are part of the value
// topology and stay empty until a richer extraction fills them.
type ValueNetwork struct {
	Suppliers    []string `json:"suppliers" yaml:"suppliers"`
	Customers    []string `json:"customers" yaml:"customers"`
	Partners     []string `json:"partners" yaml:"partners"`
	Competitors  []string `json:"competitors" yaml:"competitors"`
	Stakeholders []string `json:"stakeholders" yaml:"stakeholders"`
}

// BusinessAnalysis is the heuristic classification of a business built from
// processed document data and supplementary search results. Relationships is
// symmetric: if B appears in A's list, A appears in B's list. The value is
// immutable once built.
type BusinessAnalysis struct {
	Structure BusinessStructure `json:"structure" yaml:"structure"`

	// Relationships maps each entity to the entities it co-occurs with.
	Relationships map[string][]string `json:"relationships" yaml:"relationships"`

	MarketPosition MarketPosition `json:"market_position" yaml:"market_position"`
	ValueNetwork   ValueNetwork   `json:"value_network" yaml:"value_network"`

	// GrowthOpportunities are templated indicator strings.
	GrowthOpportunities []string `json:"growth_opportunities" yaml:"growth_opportunities"`
}

// Demographics describes the inferred audience demographics. Unresolved
// fields hold "unknown".
type Demographics struct {
	AgeGroup       string `json:"age_group" yaml:"age_group"`
	IncomeLevel    string `json:"income_level" yaml:"income_level"`
	EducationLevel string `json:"education_level" yaml:"education_level"`
	Location       string `json:"location" yaml:"location"`
}

// AudienceProfile is the derived audience characterization. Tone and
// Language are single categories from fixed enumerations; CulturalElements
// holds at most two categories.
type AudienceProfile struct {
	Demographics Demographics `json:"demographics" yaml:"demographics"`

	// Tone is one of: professional, casual, youthful, expert, inspirational.
	Tone string `json:"tone" yaml:"tone"`

	// Language is one of: simple, technical, storytelling, persuasive.
	Language string `json:"language" yaml:"language"`

	CulturalElements         []string `json:"cultural_elements" yaml:"cultural_elements"`
	CommunicationPreferences []string `json:"communication_preferences" yaml:"communication_preferences"`
}
