// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ideas combinatorially produces script-idea records from fixed
// format/theme/angle pools and business-derived topics, and mutates selected
// ideas in response to user feedback.
package ideas

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

// contentFormats is the format pool.
var contentFormats = []string{
	"educational video", "testimonial", "product demo", "behind-the-scenes",
	"customer story", "expert interview", "tutorial", "case study",
	"motivational talk", "Q&A session", "live stream", "short clip",
	"documentary style", "animated explanation", "vlog", "webinar",
}

// themes is the theme pool.
var themes = []string{
	"success story", "problem-solution", "day in the life", "transformation",
	"expert insights", "industry trends", "tips and tricks", "myth busting",
	"comparison", "future vision", "historical perspective", "current events",
	"personal journey", "team spotlight", "innovation showcase", "community impact",
}

// angles is the angle pool.
var angles = []string{
	"emotional connection", "practical value", "entertainment", "education",
	"inspiration", "controversy", "uniqueness", "urgency", "social proof",
	"authority", "exclusivity", "simplicity", "innovation", "tradition",
}

// fallbackTopics seeds the topic pool when the analysis provides nothing.
var fallbackTopics = []string{"business growth", "customer success", "innovation"}

// durationByFormat maps exact format strings to duration estimates.
var durationByFormat = map[string]string{
	"short clip":        "15-30 seconds",
	"testimonial":       "1-2 minutes",
	"tutorial":          "3-5 minutes",
	"interview":         "5-10 minutes",
	"webinar":           "30-60 minutes",
	"documentary style": "10-15 minutes",
	"live stream":       "30-90 minutes",
}

const defaultDuration = "2-5 minutes"

// Generator samples script ideas from the pools. The random source is
// injected so runs are reproducible under a fixed seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator builds a Generator around rng. A nil rng gets a clock-seeded
// source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate produces count ideas with IDs 1..count. Each idea independently
// samples a format, theme, angle, and topic; empty inputs degrade to pool
// fallbacks, never an error.
func (g *Generator) Generate(analysis types.BusinessAnalysis, profile types.AudienceProfile, count int) []types.ScriptIdea {
	topics := topicPool(analysis)

	result := make([]types.ScriptIdea, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, g.generateOne(i+1, topics, profile))
	}
	return result
}

func (g *Generator) generateOne(id int, topics []string, profile types.AudienceProfile) types.ScriptIdea {
	format := contentFormats[g.rng.Intn(len(contentFormats))]
	theme := themes[g.rng.Intn(len(themes))]
	angle := angles[g.rng.Intn(len(angles))]

	topic := "business topic"
	if len(topics) > 0 {
		topic = topics[g.rng.Intn(len(topics))]
	}

	return types.ScriptIdea{
		ID:                id,
		Title:             g.title(format, theme, topic, angle),
		Format:            format,
		Theme:             theme,
		Angle:             angle,
		Topic:             topic,
		Description:       description(format, theme, topic, angle, profile),
		KeyElements:       keyElements(format, profile.CommunicationPreferences),
		EstimatedDuration: estimateDuration(format),
		TargetPlatforms:   suggestPlatforms(format, profile.CommunicationPreferences),
	}
}

// topicPool assembles candidate topics: up to 5 key components, up to 3
// unique selling points, up to 2 stakeholders, with a fixed fallback when
// the pool comes up empty.
func topicPool(analysis types.BusinessAnalysis) []string {
	var topics []string

	components := analysis.Structure.KeyComponents
	if len(components) > 5 {
		components = components[:5]
	}
	for _, kc := range components {
		topics = append(topics, kc.Topic)
	}

	usps := analysis.MarketPosition.UniqueSellingPoints
	if len(usps) > 3 {
		usps = usps[:3]
	}
	topics = append(topics, usps...)

	stakeholders := analysis.ValueNetwork.Stakeholders
	if len(stakeholders) > 2 {
		stakeholders = stakeholders[:2]
	}
	topics = append(topics, stakeholders...)

	if len(topics) == 0 {
		return fallbackTopics
	}
	return topics
}

// title samples one of eight title templates.
func (g *Generator) title(format, theme, topic, angle string) string {
	switch g.rng.Intn(8) {
	case 0:
		return fmt.Sprintf("How %s %s Changed Everything", topic, angle)
	case 1:
		return fmt.Sprintf("The %s Side of %s", angle, topic)
	case 2:
		return fmt.Sprintf("%s: A %s Story", titleCase(theme), topic)
	case 3:
		return fmt.Sprintf("Unlocking %s Through %s", topic, angle)
	case 4:
		return fmt.Sprintf("%s: %s %s", titleCase(format), topic, theme)
	case 5:
		return fmt.Sprintf("Discover %s in %s", angle, topic)
	case 6:
		return fmt.Sprintf("%s %s: What You Need to Know", topic, theme)
	default:
		return fmt.Sprintf("From %s to Success: %s", angle, topic)
	}
}

// description assembles the idea description deterministically: core
// sentence, optional angle/tone/language/cultural clauses, fixed closing.
func description(format, theme, topic, angle string, profile types.AudienceProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "This %s explores %s in %s, ", format, theme, topic)

	if angle != "" {
		fmt.Fprintf(&b, "focusing on the %s aspect. ", angle)
	}
	if profile.Tone != "" {
		fmt.Fprintf(&b, "The content uses a %s tone ", profile.Tone)
	}
	if profile.Language != "" {
		fmt.Fprintf(&b, "with %s language ", profile.Language)
	}
	if len(profile.CulturalElements) > 0 {
		fmt.Fprintf(&b, "incorporating %s cultural elements. ", strings.Join(profile.CulturalElements, ", "))
	}

	b.WriteString("Perfect for engaging your target audience and driving action.")
	return b.String()
}

// keyElements builds the deduplicated element set for a format. Format
// triggers are non-exclusive: a format matching several accumulates all of
// their base sets.
func keyElements(format string, commPrefs []string) []string {
	var elements []string

	if strings.Contains(format, "video") {
		elements = append(elements, "strong opening hook", "visual demonstrations", "clear call-to-action")
	}
	if strings.Contains(format, "interview") {
		elements = append(elements, "expert introduction", "key questions", "actionable insights")
	}
	if strings.Contains(format, "tutorial") {
		elements = append(elements, "step-by-step instructions", "visual aids", "practice exercises")
	}

	for _, pref := range commPrefs {
		switch pref {
		case "visual content":
			elements = append(elements, "compelling visuals")
		case "video content":
			elements = append(elements, "dynamic video elements")
		}
	}

	elements = append(elements, "engaging narrative", "clear messaging", "audience-focused content")

	return dedup(elements)
}

func estimateDuration(format string) string {
	if d, ok := durationByFormat[format]; ok {
		return d
	}
	return defaultDuration
}

// suggestPlatforms maps format substrings to platform sets and adds social
// platforms when the communication preferences mention social media.
func suggestPlatforms(format string, commPrefs []string) []string {
	var platforms []string

	switch {
	case strings.Contains(format, "video") || strings.Contains(format, "short clip"):
		platforms = append(platforms, "YouTube", "TikTok", "Instagram Reels")
	case strings.Contains(format, "live stream"):
		platforms = append(platforms, "YouTube Live", "Facebook Live", "LinkedIn Live")
	case strings.Contains(format, "educational"):
		platforms = append(platforms, "YouTube", "LinkedIn", "Website")
	}

	if strings.Contains(strings.ToLower(strings.Join(commPrefs, " ")), "social media") {
		platforms = append(platforms, "Instagram", "Facebook", "Twitter")
	}

	if len(platforms) == 0 {
		return []string{"YouTube", "Website"}
	}
	return dedup(platforms)
}

// Improve produces new records for the selected ideas per the feedback.
// Originals are never mutated. A tone change rewrites the tone word in the
// description; ideas carry no tone field, so the literal word
// "professional" is replaced. A format change regenerates key elements
// from the new format and the idea's platform list (see DESIGN.md on this
// inherited quirk). Additional elements are appended without re-dedup.
func (g *Generator) Improve(selected []types.ScriptIdea, feedback types.Feedback) []types.ScriptIdea {
	improved := make([]types.ScriptIdea, 0, len(selected))

	for _, idea := range selected {
		next := idea
		next.KeyElements = append([]string(nil), idea.KeyElements...)
		next.TargetPlatforms = append([]string(nil), idea.TargetPlatforms...)

		if feedback.ToneChange != "" {
			next.Description = strings.ReplaceAll(next.Description, "professional", feedback.ToneChange)
		}

		if feedback.FormatChange != "" {
			next.Format = feedback.FormatChange
			next.KeyElements = keyElements(feedback.FormatChange, idea.TargetPlatforms)
		}

		if len(feedback.AdditionalElements) > 0 {
			next.KeyElements = append(next.KeyElements, feedback.AdditionalElements...)
		}

		improved = append(improved, next)
	}
	return improved
}

// dedup removes duplicates keeping first-seen order.
func dedup(items []string) []string {
	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}

// titleCase upper-cases the first letter of every word. A letter following
// any non-letter starts a new word, so "behind-the-scenes" becomes
// "Behind-The-Scenes".
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if !prevLetter && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		b.WriteRune(r)
		prevLetter = unicode.IsLetter(r)
	}
	return b.String()
}
