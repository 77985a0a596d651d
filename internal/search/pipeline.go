package search

import (
	"github.com/amankumarsingh77/invertex/internal/index"
	"github.com/amankumarsingh77/invertex/internal/token"
)

// Expander supplies per-term alternatives for query expansion. A missing
// key is treated as an empty alternatives list.
type Expander interface {
	Alternatives(term string) []string
}

// MapExpander adapts a plain map (the shape §1 specifies the engine
// consumes: "the engine consumes expansions as a map") to Expander.
type MapExpander map[string][]string

// Alternatives implements Expander.
func (m MapExpander) Alternatives(term string) []string {
	return m[term]
}

// NoExpander is an Expander with no alternatives for any term.
var NoExpander Expander = MapExpander(nil)

// Pipeline is the query-time entry point (spec §4.G): tokenize, expand,
// match, rank.
type Pipeline struct {
	Index    *index.Index
	Expander Expander
}

// NewPipeline builds a Pipeline over a frozen index. expander may be nil, in
// which case queries run with no alternatives.
func NewPipeline(ix *index.Index, expander Expander) *Pipeline {
	if expander == nil {
		expander = NoExpander
	}
	return &Pipeline{Index: ix, Expander: expander}
}

// Run tokenizes queryString, resolves alternatives for each resulting term,
// and returns the ranked, truncated SearchResults.
func (p *Pipeline) Run(queryString string, numResults int) SearchResults {
	terms := token.Tokenize(queryString)
	if len(terms) == 0 || numResults <= 0 {
		return SearchResults{}
	}

	alternatives := make(map[string][]string, len(terms))
	for _, term := range terms {
		if _, ok := alternatives[term]; ok {
			continue
		}
		alternatives[term] = p.Expander.Alternatives(term)
	}

	q := Query{
		Terms:        terms,
		Alternatives: alternatives,
		NumResults:   numResults,
	}
	return Match(q, p.Index)
}
