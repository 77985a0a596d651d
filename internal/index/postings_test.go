package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildS2Index(t *testing.T) *Index {
	t.Helper()
	ix := New()
	docs := []Document{
		{DocID: "A", Tokens: []string{"alpha", "beta", "beta", "gamma"}},
		{DocID: "B", Tokens: []string{"alpha", "alpha", "beta"}},
		{DocID: "C", Tokens: []string{"gamma", "delta"}},
	}
	for _, d := range docs {
		require.NoError(t, ix.AddDocument(d))
	}
	return ix
}

func TestAddDocumentInvariants(t *testing.T) {
	ix := buildS2Index(t)

	assert.Equal(t, 3, ix.NumDocuments())
	assert.Equal(t, 2, ix.DocFrequencyOf("alpha"))
	assert.Equal(t, 2, ix.DocFrequencyOf("beta"))
	assert.Equal(t, 2, ix.DocFrequencyOf("gamma"))
	assert.Equal(t, 1, ix.DocFrequencyOf("delta"))

	assert.InDelta(t, 0.25, ix.PostingsFor("alpha")["A"], 1e-9)
	assert.InDelta(t, 2.0/3.0, ix.PostingsFor("alpha")["B"], 1e-9)
	assert.InDelta(t, 0.5, ix.PostingsFor("beta")["A"], 1e-9)
	assert.InDelta(t, 1.0/3.0, ix.PostingsFor("beta")["B"], 1e-9)
	assert.InDelta(t, 0.25, ix.PostingsFor("gamma")["A"], 1e-9)
	assert.InDelta(t, 0.5, ix.PostingsFor("gamma")["C"], 1e-9)
	assert.InDelta(t, 0.5, ix.PostingsFor("delta")["C"], 1e-9)

	for _, term := range []string{"alpha", "beta", "gamma", "delta"} {
		for _, tf := range ix.PostingsFor(term) {
			assert.Greater(t, tf, 0.0)
			assert.LessOrEqual(t, tf, 1.0)
		}
	}
}

func TestAddDocumentDuplicateRejected(t *testing.T) {
	ix := New()
	require.NoError(t, ix.AddDocument(Document{DocID: "1", Tokens: []string{"a", "b"}}))
	err := ix.AddDocument(Document{DocID: "1", Tokens: []string{"c"}})
	assert.Error(t, err)
	assert.Equal(t, 1, ix.NumDocuments())
}

func TestAddDocumentEmptyTokensRejected(t *testing.T) {
	ix := New()
	err := ix.AddDocument(Document{DocID: "1", Tokens: nil})
	assert.Error(t, err)
	assert.Equal(t, 0, ix.NumDocuments())
}

func TestContainsTermAndMissing(t *testing.T) {
	ix := buildS2Index(t)
	assert.True(t, ix.ContainsTerm("alpha"))
	assert.False(t, ix.ContainsTerm("zeta"))
	assert.Nil(t, ix.PostingsFor("zeta"))
	assert.Equal(t, 0, ix.DocFrequencyOf("zeta"))
}
