package locations

import "sort"

// Relevance scores per candidate shape. Higher is more relevant. The table is
// total: anything that survived classification but matches no row scores
// defaultScore.
const defaultScore = 10

type candidateShape struct {
	category string
	typ      string
}

var scoreTable = map[candidateShape]int{
	{"place", "state"}:             120,
	{"place", "city"}:              110,
	{"place", "town"}:              105,
	{"place", "village"}:           100,
	{"place", "municipality"}:      90,
	{"place", "suburb"}:            90,
	{"place", "locality"}:          90,
	{"place", "hamlet"}:            90,
	{"aeroway", "aerodrome"}:       80,
	{"boundary", "administrative"}: 70,
}

// postcode results carry the type without a stable category, so they are
// scored on type alone.
const postcodeScore = 75

// scoreCandidate returns the relevance score for one classified candidate.
func scoreCandidate(c RawCandidate) int {
	if s, ok := scoreTable[candidateShape{c.Category, c.Type}]; ok {
		return s
	}
	if c.Type == "postcode" {
		return postcodeScore
	}
	return defaultScore
}

// rank sorts candidates by descending score, ties broken by provider order,
// and truncates to limit. The input slice is not modified.
func rank(candidates []RawCandidate, limit int) []RawCandidate {
	ranked := make([]RawCandidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return scoreCandidate(ranked[i]) > scoreCandidate(ranked[j])
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
