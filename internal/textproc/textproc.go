// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textproc turns raw documents into normalized text, key phrases,
// named entities, and ranked topic frequencies.
package textproc

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/JorgeGarc1/obliquo-automatizacion/pkg/types"
)

// maxKeyPhrasesPerDoc caps how many noun phrases each document contributes.
const maxKeyPhrasesPerDoc = 20

// maxTopics caps the ranked topic list.
const maxTopics = 50

// Process extracts features from a document batch and aggregates them into
// a ProcessedData record. Key ideas and entities are deduplicated in
// first-seen order; topics are ranked by aggregate frequency with ties kept
// in first-seen order. An empty batch yields empty collections, not an error.
func Process(docs []types.Document, tagger Tagger) (types.ProcessedData, error) {
	var (
		fullText   strings.Builder
		keyIdeas   []string
		entities   []string
		seenIdeas  = make(map[string]bool)
		seenEnts   = make(map[string]bool)
		counts     = make(map[string]int)
		topicOrder []string
	)

	for _, doc := range docs {
		text := CleanText(doc.Content)

		tagging, err := tagger.Tag(text)
		if err != nil {
			return types.ProcessedData{}, fmt.Errorf("tagging document %q: %w", doc.Name, err)
		}

		fullText.WriteString(text)
		fullText.WriteString("\n")

		phrases := tagging.NounPhrases
		if len(phrases) > maxKeyPhrasesPerDoc {
			phrases = phrases[:maxKeyPhrasesPerDoc]
		}
		for _, p := range phrases {
			if !seenIdeas[p] {
				seenIdeas[p] = true
				keyIdeas = append(keyIdeas, p)
			}
		}

		for _, e := range tagging.Entities {
			if !seenEnts[e] {
				seenEnts[e] = true
				entities = append(entities, e)
			}
		}

		for _, topic := range tagging.Topics {
			if counts[topic] == 0 {
				topicOrder = append(topicOrder, topic)
			}
			counts[topic]++
		}
	}

	return types.ProcessedData{
		FullText:      fullText.String(),
		KeyIdeas:      keyIdeas,
		Entities:      entities,
		Topics:        rankTopics(topicOrder, counts),
		DocumentCount: len(docs),
	}, nil
}

// rankTopics orders topics by count descending, ties broken by first-seen
// order, and returns at most maxTopics entries. Insertion sort over the
// first-seen sequence keeps equal counts stable.
func rankTopics(order []string, counts map[string]int) []types.TopicCount {
	ranked := make([]types.TopicCount, 0, len(order))
	for _, topic := range order {
		ranked = append(ranked, types.TopicCount{Topic: topic, Count: counts[topic]})
	}
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].Count > ranked[j-1].Count; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	if len(ranked) > maxTopics {
		ranked = ranked[:maxTopics]
	}
	return ranked
}

// CleanText normalizes document text: whitespace runs collapse to a single
// space, characters outside word characters, whitespace, and basic
// punctuation (. , ! ? -) are stripped, and the ends are trimmed.
func CleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastSpace := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' ||
			r == '.' || r == ',' || r == '!' || r == '?' || r == '-':
			b.WriteRune(r)
			lastSpace = false
		default:
			// dropped
			lastSpace = false
		}
	}

	return strings.TrimSpace(b.String())
}
