package filter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/monkeylearn-go/monkeylearn"
)

func sampleRows() []Row {
	return ClassificationRows("cl_1", []monkeylearn.ClassificationResult{
		{
			Text: "The room was dirty and the staff rude",
			Classifications: []monkeylearn.Classification{
				{TagName: "Negative", TagID: 2, Confidence: 0.93},
				{TagName: "Service", TagID: 7, Confidence: 0.41},
			},
		},
		{
			Text:            "Lovely breakfast",
			ExternalID:      "r-2",
			Classifications: []monkeylearn.Classification{{TagName: "Positive", TagID: 1, Confidence: 0.88}},
		},
		{Text: "???", Error: true},
	})
}

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{name: "valid expression", expression: `hasTag("Negative")`},
		{name: "empty expression", expression: "  ", wantErr: true, errContains: "empty expression"},
		{name: "invalid syntax", expression: `hasTag("unclosed`, wantErr: true},
		{name: "non boolean", expression: `Confidence * 2`, wantErr: true},
		{name: "complex expression", expression: `Tag == "Negative" and Confidence > 0.9 and wordCount(Text) > 3`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.True(t, errors.As(err, &compErr))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, filter)
		})
	}
}

func TestClassificationRows(t *testing.T) {
	rows := sampleRows()
	require.Len(t, rows, 4)

	assert.Equal(t, Row{Kind: KindClassification, Model: "cl_1", Index: 0, Text: "The room was dirty and the staff rude", Tag: "Negative", TagID: 2, Confidence: 0.93}, rows[0])
	assert.Equal(t, "Service", rows[1].Tag)
	assert.Equal(t, 0, rows[1].Index)
	assert.Equal(t, "r-2", rows[2].ExternalID)
	assert.True(t, rows[3].Error)
	assert.Empty(t, rows[3].Tag)
}

func TestExtractionAndClusterRows(t *testing.T) {
	rows := ExtractionRows("ex_1", []monkeylearn.ExtractionResult{
		{Text: "Call Bob in Paris", Extractions: []monkeylearn.Extraction{
			{TagName: "PERSON", ExtractedText: "Bob"},
			{TagName: "LOCATION", ExtractedText: "Paris"},
		}},
		{Text: "nothing here"},
	})
	require.Len(t, rows, 3)
	assert.Equal(t, "Paris", rows[1].Extracted)
	assert.Equal(t, 1, rows[2].Index)

	clusters := ClusterRows("cs_1", []monkeylearn.ClusterResult{{Text: "refund", ClusterID: 4, ClusterName: "billing", Score: 0.5}})
	require.Len(t, clusters, 1)
	assert.Equal(t, "billing", clusters[0].Tag)
	assert.Equal(t, KindCluster, clusters[0].Kind)
}

func TestApply(t *testing.T) {
	rows := sampleRows()

	tests := []struct {
		name       string
		expression string
		wantTags   []string
	}{
		{"by tag and confidence", `Tag == "Negative" and Confidence >= 0.9`, []string{"Negative"}},
		{"case insensitive hasTag", `hasTag("positive")`, []string{"Positive"}},
		{"case insensitive contains", `containsFold(Text, "STAFF")`, []string{"Negative", "Service"}},
		{"contains operator is case sensitive", `Text contains "STAFF"`, nil},
		{"prefix and suffix", `hasPrefixFold(Text, "lovely") and hasSuffixFold(Text, "BREAKFAST")`, []string{"Positive"}},
		{"builtin lower", `lower(Tag) == "service"`, []string{"Service"}},
		{"errors only", `Error`, []string{""}},
		{"external id", `ExternalID != ""`, []string{"Positive"}},
		{"regex", `regexMatch(Text, "^Lovely")`, []string{"Positive"}},
		{"matches operator", `Text matches "^Lovely"`, []string{"Positive"}},
		{"invalid regex never matches", `regexMatch(Text, "(")`, nil},
		{"tag id", `TagID == 7`, []string{"Service"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)
			require.NoError(t, err)

			matched, err := Apply(filter, rows)
			require.NoError(t, err)

			var tags []string
			for _, r := range matched {
				tags = append(tags, r.Tag)
			}
			assert.Equal(t, tt.wantTags, tags)
		})
	}
}

func TestApplyNilFilterKeepsRows(t *testing.T) {
	rows := sampleRows()
	matched, err := Apply(nil, rows)
	require.NoError(t, err)
	assert.Equal(t, rows, matched)
}

func TestEvaluationError(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"fail": func() (bool, error) { return false, fmt.Errorf("boom") },
	}))
	filter, err := compiler.Compile(`fail()`)
	require.NoError(t, err)

	assert.False(t, filter.Evaluate(Row{}))

	_, err = Apply(filter, sampleRows())
	require.Error(t, err)
	var evalErr *EvaluationError
	require.True(t, errors.As(err, &evalErr))
	assert.Equal(t, "fail()", evalErr.Expression)
}

func TestManagerPresets(t *testing.T) {
	m := NewManager()

	require.NoError(t, m.RegisterPresets(map[string]string{
		"negative":  `hasTag("Negative")`,
		"confident": `Confidence >= 0.85`,
	}))
	assert.Equal(t, []string{"confident", "negative"}, m.Presets())

	err := m.RegisterPresets(map[string]string{
		"broken": `Confidence >`,
		"fine":   `true`,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, []string{"confident", "negative"}, m.Presets())

	filter, err := m.Preset("confident")
	require.NoError(t, err)
	matched, err := Apply(filter, sampleRows())
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	_, err = m.Preset("missing")
	var unknown *UnknownPresetError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "missing", unknown.Name)
}

func TestManagerResolve(t *testing.T) {
	m := NewManager()
	require.NoError(t, m.RegisterPreset("negative", `hasTag("Negative")`))

	filter, err := m.Resolve(`Tag == "Positive"`, "negative")
	require.NoError(t, err)
	assert.Equal(t, `Tag == "Positive"`, filter.Expression())

	filter, err = m.Resolve("", "negative")
	require.NoError(t, err)
	assert.Equal(t, `hasTag("Negative")`, filter.Expression())

	filter, err = m.Resolve("", "")
	require.NoError(t, err)
	assert.Nil(t, filter)
}

func TestCompilerCache(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))

	first, err := compiler.Compile(`Confidence > 0.5`)
	require.NoError(t, err)
	again, err := compiler.Compile(`  Confidence > 0.5  `)
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, 1, compiler.Size())

	_, err = compiler.Compile(`Error`)
	require.NoError(t, err)
	_, err = compiler.Compile(`hasTag("x")`)
	require.NoError(t, err)
	assert.Equal(t, 2, compiler.Size())

	compiler.Clear()
	assert.Zero(t, compiler.Size())
}

func TestLRUEviction(t *testing.T) {
	c := newLRUCache[int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	_, _ = c.Get("a")
	c.Put("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok, "least recently used entry is evicted")
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	c.Put("a", 10)
	v, _ = c.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, c.Len())
}

func BenchmarkApply(b *testing.B) {
	rows := make([]Row, 1000)
	for i := range rows {
		rows[i] = Row{Index: i, Text: fmt.Sprintf("text %d", i), Tag: []string{"Positive", "Negative", "Neutral"}[i%3], Confidence: float64(i%100) / 100}
	}
	filter, err := CompileFilter(`hasTag("Negative") and Confidence > 0.5`)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Apply(filter, rows); err != nil {
			b.Fatal(err)
		}
	}
}
