// Package search implements the query-time half of the engine: TF-IDF
// scoring (Scorer), the conjunctive-with-alternatives matcher (Query
// Matcher), and the query pipeline that ties tokenizing, matching, and
// ranking together.
package search

import "github.com/amankumarsingh77/invertex/internal/index"

// Query is a parsed, ready-to-match query against an index.
type Query struct {
	// Terms are the query's tokens, in input order. Duplicates are
	// meaningful: each occurrence tightens the conjunction and scores once.
	Terms []string
	// Alternatives maps a term to an ordered list of synonym terms that
	// also satisfy that term's position in the conjunction. A term absent
	// from this map behaves as though mapped to an empty list.
	Alternatives map[string][]string
	// NumResults caps the number of ranked doc_ids returned.
	NumResults int
}

// SearchResults is the ranked, truncated output of a query.
type SearchResults struct {
	ResultDocIDs []index.DocID
}
