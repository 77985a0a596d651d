package search

import "math"

// idf is the inverse document frequency: ln(N / df). Callers must only
// invoke it for terms with df >= 1 — the matcher guarantees this by skipping
// any contributing term with zero document frequency before scoring it.
func idf(df, n int) float64 {
	return math.Log(float64(n) / float64(df))
}

// tfSafe returns the stored term frequency of term in doc, or 0 if the term
// has no postings at all or doc isn't among them.
func tfSafe(postings map[string]float64, docID string) float64 {
	if postings == nil {
		return 0
	}
	return postings[docID]
}
