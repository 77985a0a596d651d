package index

import "fmt"

// Index is the inverted index: term -> (doc_id -> term_frequency), plus the
// document-frequency and document-count bookkeeping TF-IDF scoring needs.
//
// Lifecycle: built single-threaded via AddDocument, then frozen (persisted
// via Write, or simply left read-only) and served. Read accessors are safe
// to call concurrently with each other once building has stopped; nothing
// here is safe to call concurrently with AddDocument.
type Index struct {
	numDocuments int
	postings     map[Term]map[DocID]float64
	docFrequency map[Term]int
	docIDs       map[DocID]struct{}
}

// New returns an empty index, ready for AddDocument calls.
func New() *Index {
	return &Index{
		postings:     make(map[Term]map[DocID]float64),
		docFrequency: make(map[Term]int),
		docIDs:       make(map[DocID]struct{}),
	}
}

// AddDocument folds doc into the index. Each distinct term in doc.Tokens
// gets a posting of occurrences-in-doc / len(doc.Tokens), and its
// document-frequency is incremented once.
//
// A doc_id already present is rejected rather than silently overwritten or
// merged (see DESIGN.md) — each doc_id is added exactly once per index
// lifetime. A document with no tokens is rejected rather than indexed with
// undefined term frequencies.
func (ix *Index) AddDocument(doc Document) error {
	if _, exists := ix.docIDs[doc.DocID]; exists {
		return fmt.Errorf("index: doc_id %q already added", doc.DocID)
	}
	if len(doc.Tokens) == 0 {
		return fmt.Errorf("index: document %q has no tokens", doc.DocID)
	}

	counts := make(map[Term]int, len(doc.Tokens))
	for _, tok := range doc.Tokens {
		counts[tok]++
	}

	length := float64(len(doc.Tokens))
	for term, c := range counts {
		bucket := ix.postings[term]
		if bucket == nil {
			bucket = make(map[DocID]float64)
			ix.postings[term] = bucket
		}
		bucket[doc.DocID] = float64(c) / length
		ix.docFrequency[term]++
	}

	ix.docIDs[doc.DocID] = struct{}{}
	ix.numDocuments++
	return nil
}

// NumDocuments returns the number of distinct documents added so far.
func (ix *Index) NumDocuments() int {
	return ix.numDocuments
}

// ContainsTerm reports whether the term has any postings at all.
func (ix *Index) ContainsTerm(t Term) bool {
	_, ok := ix.postings[t]
	return ok
}

// PostingsFor returns the term's doc_id -> term_frequency mapping. The
// returned map is nil if the term has no postings; callers must not mutate
// it.
func (ix *Index) PostingsFor(t Term) map[DocID]float64 {
	return ix.postings[t]
}

// DocFrequencyOf returns the number of distinct documents containing t.
func (ix *Index) DocFrequencyOf(t Term) int {
	return ix.docFrequency[t]
}
