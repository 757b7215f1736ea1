// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the content-agent pipeline:
// source documents, extracted text features, web search results, business and
// audience analyses, and generated script ideas.
package types

// Document is a raw text document retrieved from a document source. It is
// immutable input, consumed once by the feature extraction stage.
type Document struct {
	// Name is the document's display name (usually the file name).
	Name string `json:"name" yaml:"name"`

	// Content is the full document text.
	Content string `json:"content" yaml:"content"`

	// MIMEType is the document's media type (e.g. "text/plain").
	MIMEType string `json:"mime_type" yaml:"mime_type"`
}

// TopicCount is a topic term with its aggregate frequency across all documents.
type TopicCount struct {
	Topic string `json:"topic" yaml:"topic"`
	Count int    `json:"count" yaml:"count"`
}

// ProcessedData aggregates the extracted features of a document batch.
// KeyIdeas and Entities are deduplicated; Topics holds the 50 most frequent
// lemmas sorted by count descending, ties broken by first-seen order.
type ProcessedData struct {
	// FullText is the cleaned text of all documents, newline-separated.
	FullText string `json:"full_text" yaml:"full_text"`

	// KeyIdeas are multi-word noun phrases (lower-cased, deduplicated).
	KeyIdeas []string `json:"key_ideas" yaml:"key_ideas"`

	// Entities are named-entity spans in their original surface form.
	Entities []string `json:"entities" yaml:"entities"`

	// Topics are lemma frequencies, highest count first, at most 50 entries.
	Topics []TopicCount `json:"topics" yaml:"topics"`

	// DocumentCount is the number of input documents.
	DocumentCount int `json:"document_count" yaml:"document_count"`
}
