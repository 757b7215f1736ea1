// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package business

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

func TestSufficient(t *testing.T) {
	manyIdeas := []string{"a b", "c d", "e f", "g h", "i j", "k l"}
	manyEntities := []string{"A", "B", "C", "D"}
	someResults := []types.SearchResult{{Title: "t"}}

	tests := []struct {
		name       string
		data       types.ProcessedData
		additional []types.SearchResult
		want       bool
	}{
		{
			name: "low signal scenario",
			data: types.ProcessedData{
				FullText: "This is a test business that sells products online.",
				KeyIdeas: []string{"online sales", "product selling"},
				Entities: []string{"business"},
			},
			want: false,
		},
		{
			name: "three of four indicators",
			data: types.ProcessedData{
				FullText: "a business plan",
				KeyIdeas: manyIdeas,
				Entities: manyEntities,
			},
			want: true,
		},
		{
			name: "all four indicators",
			data: types.ProcessedData{
				FullText: "a Business plan",
				KeyIdeas: manyIdeas,
				Entities: manyEntities,
			},
			additional: someResults,
			want:       true,
		},
		{
			name: "two indicators only",
			data: types.ProcessedData{
				FullText: "a business plan",
				KeyIdeas: manyIdeas,
			},
			want: false,
		},
		{
			name: "empty data",
			data: types.ProcessedData{},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sufficient(tt.data, tt.additional))
		})
	}
}

func TestSufficientMonotonic(t *testing.T) {
	// Adding one more true indicator never flips sufficient to false.
	data := types.ProcessedData{
		FullText: "a business plan",
		KeyIdeas: []string{"a b", "c d", "e f", "g h", "i j", "k l"},
		Entities: []string{"A", "B", "C", "D"},
	}
	assert.True(t, Sufficient(data, nil))
	assert.True(t, Sufficient(data, []types.SearchResult{{Title: "extra"}}))
}

func TestAnalyzeStructure(t *testing.T) {
	data := types.ProcessedData{
		FullText: "Our technology startup serves the healthcare market with growth potential.",
		Topics: []types.TopicCount{
			{Topic: "platform", Count: 4}, {Topic: "patient", Count: 3},
		},
	}

	got := Analyze(data, nil)

	assert.Equal(t, "technology", got.Structure.BusinessType)
	assert.Equal(t, "healthcare", got.Structure.Industry)
	assert.Equal(t, "small", got.Structure.Size)
	assert.Len(t, got.Structure.KeyComponents, 2)
}

func TestAnalyzeStructureDefaults(t *testing.T) {
	got := Analyze(types.ProcessedData{FullText: "nothing recognizable here"}, nil)
	assert.Equal(t, "unknown", got.Structure.BusinessType)
	assert.Equal(t, "general", got.Structure.Industry)
	assert.Equal(t, "unknown", got.Structure.Size)
}

func TestAnalyzeStructureCapsKeyComponents(t *testing.T) {
	topics := make([]types.TopicCount, 15)
	for i := range topics {
		topics[i] = types.TopicCount{Topic: strings.Repeat("t", i+1), Count: 15 - i}
	}
	got := Analyze(types.ProcessedData{Topics: topics}, nil)
	assert.Len(t, got.Structure.KeyComponents, 10)
}

func TestRelationshipsSymmetric(t *testing.T) {
	data := types.ProcessedData{
		FullText: "Acme partners with Bolt on logistics. " + strings.Repeat("x ", 400) + "Crane operates elsewhere.",
		Entities: []string{"Acme", "Bolt", "Crane"},
	}

	got := Analyze(data, nil)

	assert.Contains(t, got.Relationships["Acme"], "Bolt")
	assert.Contains(t, got.Relationships["Bolt"], "Acme")
	assert.NotContains(t, got.Relationships["Acme"], "Crane")
	assert.NotContains(t, got.Relationships["Crane"], "Acme")

	for a, related := range got.Relationships {
		for _, b := range related {
			assert.Contains(t, got.Relationships[b], a, "edge %s-%s must be symmetric", a, b)
		}
	}
}

func TestRelationshipsMissingEntity(t *testing.T) {
	data := types.ProcessedData{
		FullText: "Acme is mentioned here.",
		Entities: []string{"Acme", "Ghost"},
	}
	got := Analyze(data, nil)
	assert.Empty(t, got.Relationships)
}

func TestMarketPosition(t *testing.T) {
	data := types.ProcessedData{
		KeyIdeas: []string{
			"unique delivery model", "standard packaging", "higher quality beans",
			"fourth idea", "fifth idea", "sixth idea",
		},
	}
	additional := []types.SearchResult{
		{Snippet: "Every shop faces the same problem with sourcing beans at a fair price and keeping them fresh over many weeks of storage"},
		{Snippet: "Nothing relevant"},
		{Snippet: "There is a gap"},
	}

	got := Analyze(data, additional)

	assert.Equal(t, []string{"unique delivery model", "higher quality beans"}, got.MarketPosition.CompetitiveAdvantages)
	assert.Len(t, got.MarketPosition.MarketGaps, 2)
	assert.True(t, strings.HasSuffix(got.MarketPosition.MarketGaps[0], "..."))
	assert.LessOrEqual(t, len([]rune(got.MarketPosition.MarketGaps[0])), 103)
	assert.Equal(t, "There is a gap...", got.MarketPosition.MarketGaps[1])
	assert.Equal(t, data.KeyIdeas[:5], got.MarketPosition.UniqueSellingPoints)
}

func TestValueNetworkStakeholders(t *testing.T) {
	data := types.ProcessedData{Entities: []string{"Acme", "Bolt"}}
	got := Analyze(data, nil)
	assert.Equal(t, []string{"Acme", "Bolt"}, got.ValueNetwork.Stakeholders)
	assert.Empty(t, got.ValueNetwork.Suppliers)
	assert.Empty(t, got.ValueNetwork.Competitors)
}

func TestGrowthOpportunities(t *testing.T) {
	data := types.ProcessedData{
		FullText: "We see growth and market potential in this segment.",
	}
	got := Analyze(data, nil)
	assert.Equal(t, []string{
		"Potential growth area identified",
		"Potential potential area identified",
		"Potential market area identified",
	}, got.GrowthOpportunities)
}
