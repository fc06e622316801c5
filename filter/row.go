package filter

import (
	"github.com/s0up4200/monkeylearn-go/monkeylearn"
)

// Row kinds.
const (
	KindClassification = "classification"
	KindExtraction     = "extraction"
	KindCluster        = "cluster"
)

// Row is one flattened model result. A text with several predicted tags or
// extractions yields one row per tag or extraction; a text with none yields a
// single row with empty tag fields.
type Row struct {
	Kind       string
	Model      string
	Index      int // position of the text in the input
	Text       string
	ExternalID string
	Error      bool

	Tag        string
	TagID      int64
	Confidence float64

	Extracted string

	ClusterID int64
	Score     float64
}

// ClassificationRows flattens classification results of model.
func ClassificationRows(model string, results []monkeylearn.ClassificationResult) []Row {
	var rows []Row
	for i, r := range results {
		base := Row{Kind: KindClassification, Model: model, Index: i, Text: r.Text, ExternalID: r.ExternalID, Error: r.Error}
		if len(r.Classifications) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, c := range r.Classifications {
			row := base
			row.Tag = c.TagName
			row.TagID = c.TagID
			row.Confidence = c.Confidence
			rows = append(rows, row)
		}
	}
	return rows
}

// ExtractionRows flattens extraction results of model.
func ExtractionRows(model string, results []monkeylearn.ExtractionResult) []Row {
	var rows []Row
	for i, r := range results {
		base := Row{Kind: KindExtraction, Model: model, Index: i, Text: r.Text, ExternalID: r.ExternalID, Error: r.Error}
		if len(r.Extractions) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, e := range r.Extractions {
			row := base
			row.Tag = e.TagName
			row.Extracted = e.ExtractedText
			rows = append(rows, row)
		}
	}
	return rows
}

// ClusterRows flattens cluster predictions of model.
func ClusterRows(model string, results []monkeylearn.ClusterResult) []Row {
	rows := make([]Row, 0, len(results))
	for i, r := range results {
		rows = append(rows, Row{
			Kind:       KindCluster,
			Model:      model,
			Index:      i,
			Text:       r.Text,
			ExternalID: r.ExternalID,
			Error:      r.Error,
			Tag:        r.ClusterName,
			ClusterID:  r.ClusterID,
			Score:      r.Score,
		})
	}
	return rows
}
