package kb

import (
	"math"
	"sort"
	"strings"
)

// rrfK is the rank-fusion constant; 60 is the value from the original
// reciprocal rank fusion paper and works well without tuning.
const rrfK = 60

// Cosine returns the cosine similarity of two vectors, or 0 when either is
// empty or their lengths differ.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// FuseRRF merges ranked ID lists with reciprocal rank fusion. Each list
// contributes 1/(k + rank + 1) per ID; the fused order is by descending
// total score, ties broken by first appearance for determinism.
func FuseRRF(rankings ...[]int) []int {
	scores := make(map[int]float64)
	firstSeen := make(map[int]int)
	order := 0

	for _, ranking := range rankings {
		for rank, id := range ranking {
			scores[id] += 1.0 / float64(rrfK+rank+1)
			if _, seen := firstSeen[id]; !seen {
				firstSeen[id] = order
				order++
			}
		}
	}

	ids := make([]int, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		si, sj := scores[ids[i]], scores[ids[j]]
		if si != sj {
			return si > sj
		}
		return firstSeen[ids[i]] < firstSeen[ids[j]]
	})
	return ids
}

// FusedScore returns the RRF score an ID earned across rankings.
func FusedScore(id int, rankings ...[]int) float64 {
	var score float64
	for _, ranking := range rankings {
		for rank, rid := range ranking {
			if rid == id {
				score += 1.0 / float64(rrfK+rank+1)
				break
			}
		}
	}
	return score
}

// scoredID pairs an ID with a relevance score.
type scoredID struct {
	id    int
	score float64
}

// sortScored orders by descending score, ties broken by ascending ID.
func sortScored(hits []scoredID) {
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].id < hits[j].id
	})
}

// lexicalRank orders chunk IDs by how many distinct query terms their
// content contains, descending; chunks matching no term are excluded.
// Used as the in-process fallback when no SQL handle is available.
func lexicalRank(query string, chunks map[int]string) []int {
	terms := queryTerms(query)
	if len(terms) == 0 {
		return nil
	}

	type hit struct {
		id    int
		count int
	}
	var hits []hit
	for id, content := range chunks {
		lower := strings.ToLower(content)
		count := 0
		for _, term := range terms {
			if strings.Contains(lower, term) {
				count++
			}
		}
		if count > 0 {
			hits = append(hits, hit{id: id, count: count})
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].count != hits[j].count {
			return hits[i].count > hits[j].count
		}
		return hits[i].id < hits[j].id
	})

	ids := make([]int, len(hits))
	for i, h := range hits {
		ids[i] = h.id
	}
	return ids
}

func queryTerms(query string) []string {
	var terms []string
	for _, f := range strings.Fields(strings.ToLower(query)) {
		f = strings.Trim(f, `.,;:!?"'()`)
		if len(f) >= 2 {
			terms = append(terms, f)
		}
	}
	return terms
}
