package monkeylearn

import (
	"encoding/json"
)

// Input is one text to classify, extract from or cluster.
type Input struct {
	Text       string `json:"text"`
	ExternalID string `json:"external_id,omitempty"`
}

// Texts converts plain strings to inputs.
func Texts(texts ...string) []Input {
	inputs := make([]Input, len(texts))
	for i, t := range texts {
		inputs[i] = Input{Text: t}
	}
	return inputs
}

// Classification is one tag predicted for a text.
type Classification struct {
	TagName    string  `json:"tag_name"`
	TagID      int64   `json:"tag_id"`
	Confidence float64 `json:"confidence"`
}

// ClassificationResult holds the predictions for one input, in input order.
type ClassificationResult struct {
	Text            string           `json:"text"`
	ExternalID      string           `json:"external_id"`
	Error           bool             `json:"error"`
	ErrorDetail     string           `json:"error_detail,omitempty"`
	Classifications []Classification `json:"classifications"`
}

// Extraction is one piece of data extracted from a text.
type Extraction struct {
	TagName       string          `json:"tag_name"`
	ExtractedText string          `json:"extracted_text"`
	ParsedValue   json.RawMessage `json:"parsed_value,omitempty"`
	OffsetSpan    []int           `json:"offset_span,omitempty"`
}

// ExtractionResult holds the extractions for one input, in input order.
type ExtractionResult struct {
	Text        string       `json:"text"`
	ExternalID  string       `json:"external_id"`
	Error       bool         `json:"error"`
	ErrorDetail string       `json:"error_detail,omitempty"`
	Extractions []Extraction `json:"extractions"`
}

// ClusterResult assigns one input to a cluster.
type ClusterResult struct {
	Text        string  `json:"text"`
	ExternalID  string  `json:"external_id"`
	Error       bool    `json:"error"`
	ErrorDetail string  `json:"error_detail,omitempty"`
	ClusterID   int64   `json:"cluster_id"`
	ClusterName string  `json:"cluster_name"`
	Score       float64 `json:"score"`
}

// Model describes a classifier, extractor or cluster model.
type Model struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ModelType   string `json:"model_type"`
	Created     string `json:"created"`
	Updated     string `json:"updated"`
	Language    string `json:"language,omitempty"`
	IsPublic    bool   `json:"is_public,omitempty"`
	Tags        []Tag  `json:"tags,omitempty"`
}

// Tag is a classifier tag.
type Tag struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent_id,omitempty"`
}

// ListOptions controls a page of a list endpoint. Zero values are omitted.
type ListOptions struct {
	Page    int
	PerPage int
	OrderBy []string
}

// String returns a pointer to s, for optional payload fields.
func String(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Int64 returns a pointer to i.
func Int64(i int64) *int64 { return &i }
