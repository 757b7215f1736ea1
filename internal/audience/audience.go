// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package audience derives an audience profile from a business analysis by
// scoring fixed keyword tables against a flattened rendering of the whole
// analysis. A blunt instrument, kept deliberately simple and deterministic.
package audience

import (
	"fmt"
	"sort"
	"strings"

	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

// category pairs a name with its trigger keywords. Declaration order breaks
// score ties.
type category struct {
	name     string
	keywords []string
}

// toneCategories are the tone profiles. Zero-score falls back to professional.
var toneCategories = []category{
	{"professional", []string{"formal", "corporate", "business-like", "serious"}},
	{"casual", []string{"friendly", "relaxed", "conversational", "approachable"}},
	{"youthful", []string{"energetic", "trendy", "fun", "modern"}},
	{"expert", []string{"authoritative", "technical", "detailed", "informative"}},
	{"inspirational", []string{"motivational", "uplifting", "positive", "encouraging"}},
}

// languageCategories are the language styles. Zero-score falls back to simple.
var languageCategories = []category{
	{"simple", []string{"clear", "straightforward", "easy to understand"}},
	{"technical", []string{"industry-specific", "jargon", "detailed"}},
	{"storytelling", []string{"narrative", "engaging", "emotional"}},
	{"persuasive", []string{"convincing", "benefit-focused", "action-oriented"}},
}

// culturalCategories are the cultural-element groups. The top two non-zero
// scorers are reported.
var culturalCategories = []category{
	{"western", []string{"individualism", "achievement", "innovation"}},
	{"eastern", []string{"harmony", "tradition", "community"}},
	{"latin", []string{"family", "passion", "social connections"}},
	{"youth", []string{"technology", "social media", "trends"}},
	{"professional", []string{"expertise", "credibility", "results"}},
}

// Analyze derives the audience profile. It is a pure function: identical
// analyses yield identical profiles.
func Analyze(analysis types.BusinessAnalysis) types.AudienceProfile {
	text := Flatten(analysis)

	return types.AudienceProfile{
		Demographics:             demographics(analysis),
		Tone:                     bestCategory(text, toneCategories, "professional"),
		Language:                 bestCategory(text, languageCategories, "simple"),
		CulturalElements:         topCultural(text),
		CommunicationPreferences: communicationPreferences(text),
	}
}

// Flatten renders the entire analysis into one lower-cased searchable
// string, fields in declaration order, relationship keys sorted so the
// output is deterministic.
func Flatten(a types.BusinessAnalysis) string {
	var b strings.Builder

	b.WriteString(flattenStructure(a.Structure))

	keys := make([]string, 0, len(a.Relationships))
	for k := range a.Relationships {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		writeWords(&b, k)
		writeWords(&b, a.Relationships[k]...)
	}

	b.WriteString(" ")
	b.WriteString(flattenMarket(a.MarketPosition))

	writeWords(&b, a.ValueNetwork.Suppliers...)
	writeWords(&b, a.ValueNetwork.Customers...)
	writeWords(&b, a.ValueNetwork.Partners...)
	writeWords(&b, a.ValueNetwork.Competitors...)
	writeWords(&b, a.ValueNetwork.Stakeholders...)
	writeWords(&b, a.GrowthOpportunities...)

	return strings.ToLower(b.String())
}

func flattenStructure(s types.BusinessStructure) string {
	var b strings.Builder
	writeWords(&b, s.BusinessType, s.Industry, s.Size)
	for _, kc := range s.KeyComponents {
		writeWords(&b, fmt.Sprintf("%s %d", kc.Topic, kc.Count))
	}
	return b.String()
}

func flattenMarket(m types.MarketPosition) string {
	var b strings.Builder
	writeWords(&b, m.CompetitiveAdvantages...)
	writeWords(&b, m.MarketGaps...)
	writeWords(&b, m.UniqueSellingPoints...)
	return b.String()
}

func writeWords(b *strings.Builder, words ...string) {
	for _, w := range words {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(w)
	}
}

// score counts how many of the category's keywords appear in the text.
func score(text string, c category) int {
	n := 0
	for _, kw := range c.keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

// bestCategory returns the highest-scoring category name, ties broken by
// declaration order, or fallback when every category scores zero.
func bestCategory(text string, categories []category, fallback string) string {
	best := ""
	bestScore := 0
	for _, c := range categories {
		if s := score(text, c); s > bestScore {
			best = c.name
			bestScore = s
		}
	}
	if bestScore == 0 {
		return fallback
	}
	return best
}

// topCultural returns up to two non-zero cultural categories, highest score
// first, ties in declaration order.
func topCultural(text string) []string {
	type scored struct {
		name string
		n    int
	}
	all := make([]scored, 0, len(culturalCategories))
	for _, c := range culturalCategories {
		all = append(all, scored{c.name, score(text, c)})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].n > all[j].n })

	var top []string
	for _, s := range all[:2] {
		if s.n > 0 {
			top = append(top, s.name)
		}
	}
	return top
}

// demographics sniffs the structure and market-position renderings for age
// and income cues. First match wins; unresolved fields stay "unknown".
func demographics(a types.BusinessAnalysis) types.Demographics {
	structureText := strings.ToLower(flattenStructure(a.Structure))
	marketText := strings.ToLower(flattenMarket(a.MarketPosition))

	d := types.Demographics{
		AgeGroup:       "unknown",
		IncomeLevel:    "unknown",
		EducationLevel: "unknown",
		Location:       "unknown",
	}

	if strings.Contains(structureText, "youth") || strings.Contains(marketText, "young") {
		d.AgeGroup = "18-35"
	} else if strings.Contains(structureText, "professional") {
		d.AgeGroup = "25-55"
	}

	if strings.Contains(marketText, "premium") {
		d.IncomeLevel = "high"
	} else if strings.Contains(marketText, "budget") {
		d.IncomeLevel = "medium"
	}

	return d
}

// communicationPreferences appends a preference tag per matched cue, with a
// visual/video default when nothing matches.
func communicationPreferences(text string) []string {
	var prefs []string

	if strings.Contains(text, "social media") || strings.Contains(text, "instagram") {
		prefs = append(prefs, "visual content")
	}
	if strings.Contains(text, "video") {
		prefs = append(prefs, "video content")
	}
	if strings.Contains(text, "blog") || strings.Contains(text, "article") {
		prefs = append(prefs, "written content")
	}
	if strings.Contains(text, "presentation") {
		prefs = append(prefs, "live presentations")
	}

	if len(prefs) == 0 {
		prefs = []string{"visual content", "video content"}
	}
	return prefs
}
