// Package index implements the in-memory inverted index: its data model,
// the mutations that build it (Postings Store + Index Builder), and its
// line-delimited JSON on-disk form (Index Serializer).
package index

// Term is a token used as a dictionary key in the index. Textually
// identical to a token.
type Term = string

// DocID is an opaque, corpus-unique document identifier.
type DocID = string

// Document is the tokenizer's output bound to its source id — what
// AddDocument consumes. Tokens must include duplicates; len(Tokens) is the
// document length used for term frequency.
type Document struct {
	DocID  DocID
	Tokens []string
}
