package search

import (
	"testing"

	"github.com/amankumarsingh77/invertex/internal/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineRunTokenizesAndExpands(t *testing.T) {
	ix := buildExpandedIndex(t)
	expander := MapExpander{
		"covid": {"coronavirus", "covid-19"},
		"happy": {"joyful", "delighted"},
		"rug":   {"carpet", "mat"},
	}
	p := NewPipeline(ix, expander)

	got := p.Run("Happy COVID rug", 10)

	assert.ElementsMatch(t, []string{"1", "4", "9"}, got.ResultDocIDs)
}

func TestPipelineRunWithNilExpander(t *testing.T) {
	ix := buildS2Index(t)
	p := NewPipeline(ix, nil)

	got := p.Run("alpha beta", 10)

	require.Equal(t, []string{"B", "A"}, got.ResultDocIDs)
}

func TestPipelineRunEmptyQuery(t *testing.T) {
	ix := buildS2Index(t)
	p := NewPipeline(ix, nil)

	got := p.Run("   ", 10)

	assert.Empty(t, got.ResultDocIDs)
}

func TestPipelineRunDeduplicatesRepeatedTermLookup(t *testing.T) {
	ix := index.New()
	lookups := 0
	counting := expanderFunc(func(term string) []string {
		lookups++
		return nil
	})
	p := NewPipeline(ix, counting)

	p.Run("alpha alpha alpha", 10)

	assert.Equal(t, 1, lookups)
}

type expanderFunc func(term string) []string

func (f expanderFunc) Alternatives(term string) []string { return f(term) }
