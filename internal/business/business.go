// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package business heuristically classifies a business from processed
// document data: structure, entity relationships, market position, value
// network, and growth opportunities.
package business

import (
	"fmt"
	"strings"

	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

// proximityWindow is the maximum distance between two entities' first
// occurrences for them to count as related.
const proximityWindow = 500

// businessTypes is the business-type scan order. First match wins.
var businessTypes = []string{"retail", "service", "manufacturing", "technology", "consulting", "e-commerce"}

// industries is the industry scan order. First match wins.
var industries = []string{"healthcare", "finance", "education", "entertainment", "food", "automotive"}

// sizeIndicators groups size classes with their trigger phrases, checked in
// declaration order.
var sizeIndicators = []struct {
	size       string
	indicators []string
}{
	{"small", []string{"small business", "startup", "local"}},
	{"medium", []string{"growing", "established", "regional"}},
	{"large", []string{"enterprise", "international", "corporation"}},
}

// advantageKeywords mark a key idea as a competitive advantage.
var advantageKeywords = []string{"unique", "better", "faster", "cheaper", "quality", "innovation"}

// opportunityKeywords each emit one templated growth opportunity when
// present in the full text.
var opportunityKeywords = []string{"growth", "expansion", "opportunity", "potential", "market"}

// Sufficient reports whether the processed data carries enough signal to
// commit to an analysis: at least three of four indicators must hold. The
// caller is expected to request supplementary information when it is false.
func Sufficient(data types.ProcessedData, additional []types.SearchResult) bool {
	indicators := 0
	if strings.Contains(strings.ToLower(data.FullText), "business") {
		indicators++
	}
	if len(data.KeyIdeas) > 5 {
		indicators++
	}
	if len(data.Entities) > 3 {
		indicators++
	}
	if len(additional) > 0 {
		indicators++
	}
	return indicators >= 3
}

// Analyze builds the full business analysis. The result is immutable
// downstream; its Relationships map is symmetric.
func Analyze(data types.ProcessedData, additional []types.SearchResult) types.BusinessAnalysis {
	return types.BusinessAnalysis{
		Structure:           analyzeStructure(data),
		Relationships:       analyzeRelationships(data),
		MarketPosition:      analyzeMarketPosition(data, additional),
		ValueNetwork:        buildValueNetwork(data),
		GrowthOpportunities: growthOpportunities(data),
	}
}

func analyzeStructure(data types.ProcessedData) types.BusinessStructure {
	text := strings.ToLower(data.FullText)

	components := data.Topics
	if len(components) > 10 {
		components = components[:10]
	}

	return types.BusinessStructure{
		BusinessType:  firstMatch(text, businessTypes, "unknown"),
		Industry:      firstMatch(text, industries, "general"),
		Size:          estimateSize(text),
		KeyComponents: components,
	}
}

// firstMatch returns the first keyword contained in text, or fallback.
func firstMatch(text string, keywords []string, fallback string) string {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return kw
		}
	}
	return fallback
}

func estimateSize(text string) string {
	for _, group := range sizeIndicators {
		for _, indicator := range group.indicators {
			if strings.Contains(text, indicator) {
				return group.size
			}
		}
	}
	return "unknown"
}

// analyzeRelationships marks every pair of entities whose first occurrences
// in the full text fall within the proximity window. Edges are stored
// symmetrically. Quadratic over the entity list, which extraction keeps
// small.
func analyzeRelationships(data types.ProcessedData) map[string][]string {
	text := strings.ToLower(data.FullText)
	relationships := make(map[string][]string)

	for i, a := range data.Entities {
		for _, b := range data.Entities[i+1:] {
			if related(a, b, text) {
				relationships[a] = append(relationships[a], b)
				relationships[b] = append(relationships[b], a)
			}
		}
	}
	return relationships
}

// related checks first-occurrence proximity of two entities in the
// lower-cased text.
func related(a, b, lowerText string) bool {
	posA := strings.Index(lowerText, strings.ToLower(a))
	posB := strings.Index(lowerText, strings.ToLower(b))
	if posA < 0 || posB < 0 {
		return false
	}
	diff := posA - posB
	if diff < 0 {
		diff = -diff
	}
	return diff < proximityWindow
}

func analyzeMarketPosition(data types.ProcessedData, additional []types.SearchResult) types.MarketPosition {
	usp := data.KeyIdeas
	if len(usp) > 5 {
		usp = usp[:5]
	}

	return types.MarketPosition{
		CompetitiveAdvantages: competitiveAdvantages(data.KeyIdeas),
		MarketGaps:            marketGaps(additional),
		UniqueSellingPoints:   usp,
	}
}

func competitiveAdvantages(keyIdeas []string) []string {
	var advantages []string
	for _, idea := range keyIdeas {
		lower := strings.ToLower(idea)
		for _, kw := range advantageKeywords {
			if strings.Contains(lower, kw) {
				advantages = append(advantages, idea)
				break
			}
		}
	}
	return advantages
}

// marketGaps collects the leading 100 characters of any snippet that
// mentions a problem or gap.
func marketGaps(additional []types.SearchResult) []string {
	var gaps []string
	for _, info := range additional {
		lower := strings.ToLower(info.Snippet)
		if strings.Contains(lower, "problem") || strings.Contains(lower, "gap") {
			gaps = append(gaps, truncate(info.Snippet, 100)+"...")
		}
	}
	return gaps
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// buildValueNetwork places all entities as stakeholders. The other actor
// slots need a richer extraction than the current pipeline performs.
func buildValueNetwork(data types.ProcessedData) types.ValueNetwork {
	return types.ValueNetwork{Stakeholders: data.Entities}
}

func growthOpportunities(data types.ProcessedData) []string {
	text := strings.ToLower(data.FullText)
	var opportunities []string
	for _, kw := range opportunityKeywords {
		if strings.Contains(text, kw) {
			opportunities = append(opportunities, fmt.Sprintf("Potential %s area identified", kw))
		}
	}
	return opportunities
}
