// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textproc

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// Tagging is the output contract of the linguistic pipeline for one document:
// multi-word noun phrases (lower-cased), named-entity spans (original case),
// and lemma-cased common/proper nouns excluding stop words.
type Tagging struct {
	NounPhrases []string
	Entities    []string
	Topics      []string
}

// Tagger abstracts the linguistic pipeline so tests can supply a mock and
// the extraction logic stays independent of the tagging backend.
type Tagger interface {
	Tag(text string) (Tagging, error)
}

// NewTagger returns the tagger implementation selected by model. The only
// backend today is "prose"; an empty model selects it as well.
func NewTagger(model string) (Tagger, error) {
	switch model {
	case "", "prose":
		return &ProseTagger{}, nil
	default:
		return nil, fmt.Errorf("unknown text model %q", model)
	}
}

// ProseTagger tags text with the prose NLP library: part-of-speech tags,
// named-entity recognition, and noun-phrase segmentation derived from
// adjective/noun tag runs.
type ProseTagger struct{}

// Tag analyzes one cleaned document text.
func (p *ProseTagger) Tag(text string) (Tagging, error) {
	if strings.TrimSpace(text) == "" {
		return Tagging{}, nil
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return Tagging{}, fmt.Errorf("analyzing text: %w", err)
	}

	var tagging Tagging

	tokens := doc.Tokens()
	tagging.NounPhrases = nounPhrases(tokens)

	for _, ent := range doc.Entities() {
		tagging.Entities = append(tagging.Entities, ent.Text)
	}

	for _, tok := range tokens {
		if !isNounTag(tok.Tag) || !hasLetter(tok.Text) {
			continue
		}
		lower := strings.ToLower(tok.Text)
		if stopwords[lower] {
			continue
		}
		tagging.Topics = append(tagging.Topics, Lemma(lower))
	}

	return tagging, nil
}

// nounPhrases segments tokens into noun chunks: maximal runs of adjectives
// and nouns ending in a noun. Only chunks of at least two tokens qualify,
// lower-cased per the extraction contract.
func nounPhrases(tokens []prose.Token) []string {
	var phrases []string
	var run []prose.Token

	flush := func() {
		// Trim trailing adjectives so the chunk ends in a noun.
		end := len(run)
		for end > 0 && !isNounTag(run[end-1].Tag) {
			end--
		}
		if end >= 2 {
			words := make([]string, end)
			for i := 0; i < end; i++ {
				words[i] = strings.ToLower(run[i].Text)
			}
			phrases = append(phrases, strings.Join(words, " "))
		}
		run = nil
	}

	for _, tok := range tokens {
		if (isNounTag(tok.Tag) || isAdjectiveTag(tok.Tag)) && hasLetter(tok.Text) {
			run = append(run, tok)
			continue
		}
		flush()
	}
	flush()

	return phrases
}

// isNounTag reports whether a Penn Treebank tag is a common or proper noun.
func isNounTag(tag string) bool {
	return strings.HasPrefix(tag, "NN")
}

// isAdjectiveTag reports whether a Penn Treebank tag is an adjective.
func isAdjectiveTag(tag string) bool {
	return strings.HasPrefix(tag, "JJ")
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// Lemma reduces a lower-cased noun to a base form. English plural suffixes
// only; anything more needs a dictionary the pipeline does not carry.
func Lemma(word string) string {
	switch {
	case len(word) > 4 && strings.HasSuffix(word, "ies"):
		return word[:len(word)-3] + "y"
	case len(word) > 4 && (strings.HasSuffix(word, "ches") || strings.HasSuffix(word, "shes")):
		return word[:len(word)-2]
	case len(word) > 3 && (strings.HasSuffix(word, "xes") || strings.HasSuffix(word, "zes") || strings.HasSuffix(word, "sses")):
		return word[:len(word)-2]
	case len(word) > 3 && strings.HasSuffix(word, "s") &&
		!strings.HasSuffix(word, "ss") && !strings.HasSuffix(word, "us") && !strings.HasSuffix(word, "is"):
		return word[:len(word)-1]
	default:
		return word
	}
}
