package search

import (
	"sort"

	"github.com/amankumarsingh77/invertex/internal/index"
)

// Match is the conjunctive-with-alternatives query matcher (spec §4.F): for
// each query term position it accepts any document containing the term or
// one of its listed alternatives, intersects across positions, scores the
// survivors by summed TF-IDF, and returns the top NumResults doc_ids.
func Match(q Query, ix *index.Index) SearchResults {
	if len(q.Terms) == 0 || q.NumResults <= 0 {
		return SearchResults{}
	}

	groups := make([][]string, len(q.Terms))
	for i, term := range q.Terms {
		members := make([]string, 0, 1+len(q.Alternatives[term]))
		members = append(members, term)
		members = append(members, q.Alternatives[term]...)
		groups[i] = members
	}

	candidates, ok := intersectGroups(groups, ix)
	if !ok || len(candidates) == 0 {
		return SearchResults{}
	}

	contributing := contributingTerms(q.Terms, groups)
	n := ix.NumDocuments()

	scores := make(map[index.DocID]float64, len(candidates))
	for docID := range candidates {
		scores[docID] = scoreDocument(docID, contributing, ix, n)
	}

	ranked := make([]index.DocID, 0, len(candidates))
	for docID := range candidates {
		ranked = append(ranked, docID)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if scores[ranked[i]] != scores[ranked[j]] {
			return scores[ranked[i]] > scores[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	if len(ranked) > q.NumResults {
		ranked = ranked[:q.NumResults]
	}
	return SearchResults{ResultDocIDs: ranked}
}

// intersectGroups computes the candidate set: the intersection, across
// positions, of the union of documents containing any member of that
// position's group. ok is false if any position's union came up empty
// (short-circuiting per spec — neither the term nor any of its alternatives
// appears anywhere in the index).
func intersectGroups(groups [][]string, ix *index.Index) (map[index.DocID]struct{}, bool) {
	var candidates map[index.DocID]struct{}

	for _, members := range groups {
		union := make(map[index.DocID]struct{})
		for _, member := range members {
			for docID := range ix.PostingsFor(member) {
				union[docID] = struct{}{}
			}
		}
		if len(union) == 0 {
			return nil, false
		}

		if candidates == nil {
			candidates = union
			continue
		}
		candidates = intersect(candidates, union)
		if len(candidates) == 0 {
			return nil, false
		}
	}

	return candidates, true
}

func intersect(a, b map[index.DocID]struct{}) map[index.DocID]struct{} {
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	out := make(map[index.DocID]struct{}, len(small))
	for docID := range small {
		if _, ok := big[docID]; ok {
			out[docID] = struct{}{}
		}
	}
	return out
}

// contributingTerms builds T(Q): every original term (scored once per
// occurrence, matching the multiplicity of duplicates in q.Terms) plus
// every distinct alternative across the whole query, each alternative
// counted at most once even if it appears in more than one position's
// group (the whole-query de-dup spec §9 requires).
func contributingTerms(terms []string, groups [][]string) []string {
	contributing := make([]string, 0, len(terms))
	seenAlt := make(map[string]bool)

	for i, term := range terms {
		contributing = append(contributing, term)
		for _, alt := range groups[i][1:] {
			if seenAlt[alt] {
				continue
			}
			seenAlt[alt] = true
			contributing = append(contributing, alt)
		}
	}
	return contributing
}

func scoreDocument(docID index.DocID, contributing []string, ix *index.Index, n int) float64 {
	var score float64
	for _, term := range contributing {
		df := ix.DocFrequencyOf(term)
		if df == 0 {
			continue
		}
		tf := tfSafe(ix.PostingsFor(term), docID)
		score += tf * idf(df, n)
	}
	return score
}
