package kb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/pkg/models"
)

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float32{1, 0}, []float32{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float32{1, 0}, []float32{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, Cosine([]float32{1, 0}, []float32{-1, 0}), 1e-9)

	// Degenerate inputs score zero instead of erroring.
	assert.Zero(t, Cosine(nil, []float32{1}))
	assert.Zero(t, Cosine([]float32{1, 2}, []float32{1}))
	assert.Zero(t, Cosine([]float32{0, 0}, []float32{1, 1}))
}

func TestFuseRRFBothListsBeatOneList(t *testing.T) {
	// Dense ranks [1,2,3]; lexical ranks [3,4,1]. Chunk 1 (ranks 0 and 2)
	// outscores chunk 3 (ranks 2 and 0)? No — they tie exactly, so first
	// appearance wins. Chunk 2 (dense only, rank 1) and chunk 4 (lexical
	// only, rank 1) tie and keep appearance order.
	fused := FuseRRF([]int{1, 2, 3}, []int{3, 4, 1})
	require.Equal(t, []int{1, 3, 2, 4}, fused)

	// Appearing in both lists beats a single better rank in one list.
	score1 := FusedScore(1, []int{1, 2, 3}, []int{3, 4, 1})
	score2 := FusedScore(2, []int{1, 2, 3}, []int{3, 4, 1})
	assert.Greater(t, score1, score2)
}

func TestFuseRRFSingleList(t *testing.T) {
	assert.Equal(t, []int{7, 9, 8}, FuseRRF([]int{7, 9, 8}))
	assert.Empty(t, FuseRRF(nil, nil))
}

func TestLexicalRank(t *testing.T) {
	chunks := map[int]string{
		1: "The quarterly revenue target was exceeded.",
		2: "Revenue and target figures are in the appendix.",
		3: "Unrelated meeting notes about lunch.",
	}

	ids := lexicalRank("revenue target", chunks)
	// Both 1 and 2 match both terms; tie breaks by ID.
	require.Equal(t, []int{1, 2}, ids)

	ids = lexicalRank("appendix", chunks)
	assert.Equal(t, []int{2}, ids)

	assert.Empty(t, lexicalRank("", chunks))
	assert.Empty(t, lexicalRank("zebra", chunks))
}

func TestQueryTermsDropsNoise(t *testing.T) {
	assert.Equal(t, []string{"revenue", "q3"}, queryTerms(`Revenue, "Q3"!`))
	assert.Empty(t, queryTerms("a I"))
}

type fixedEmbedder struct{ vec []float32 }

func (f fixedEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i := range out {
		out[i] = f.vec
	}
	return out, nil
}

func TestCandidateSetsScaleWithTopK(t *testing.T) {
	svc := NewService(nil, nil, fixedEmbedder{vec: []float32{1, 0}}, nil)

	chunks := make([]*ent.KBChunk, 0, 20)
	for i := 1; i <= 20; i++ {
		chunks = append(chunks, &ent.KBChunk{
			ID:        i,
			Content:   "quarterly revenue report",
			Embedding: []float32{1, 0},
		})
	}

	// topK of 3 caps each side at 6 candidates, not a fixed constant.
	dense := svc.denseRank(context.Background(), "revenue", chunks, 6)
	assert.Len(t, dense, 6)

	lexical := svc.lexicalRankFor(context.Background(), "team-1",
		models.SearchRequest{Query: "revenue"}, chunks, 6)
	assert.Len(t, lexical, 6)
}
