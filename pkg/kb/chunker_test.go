package kb

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, EstimateTokens(""))
	assert.Equal(t, 1, EstimateTokens("ab"))
	assert.Equal(t, 25, EstimateTokens(strings.Repeat("x", 100)))
}

func TestSplitChunksShortText(t *testing.T) {
	chunks := SplitChunks("One short paragraph.")
	require.Len(t, chunks, 1)
	assert.Equal(t, 0, chunks[0].Seq)
	assert.Equal(t, "One short paragraph.", chunks[0].Content)
}

func TestSplitChunksRespectsSizeAndOverlap(t *testing.T) {
	// 40 paragraphs of ~200 chars each → must split into several chunks.
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&sb, "Paragraph %02d. %s\n\n", i, strings.Repeat("word ", 37))
	}

	chunks := SplitChunks(sb.String())
	require.Greater(t, len(chunks), 2)

	maxChars := chunkTokens * charsPerToken
	for i, c := range chunks {
		assert.Equal(t, i, c.Seq)
		assert.LessOrEqual(t, len(c.Content), maxChars+overlapTokens*charsPerToken,
			"chunk %d too large", i)
		assert.Equal(t, EstimateTokens(c.Content), c.TokenCount)
	}

	// Overlap: the start of chunk n+1 repeats the tail of chunk n.
	for i := 1; i < len(chunks); i++ {
		head := chunks[i].Content[:min(60, len(chunks[i].Content))]
		firstLine := strings.SplitN(head, "\n", 2)[0]
		assert.Contains(t, chunks[i-1].Content, strings.TrimSpace(firstLine),
			"chunk %d does not overlap its predecessor", i)
	}
}

func TestSplitChunksHugeParagraphFallsBackToSentences(t *testing.T) {
	// One paragraph of 300 sentences with no blank lines.
	var sb strings.Builder
	for i := 0; i < 300; i++ {
		fmt.Fprintf(&sb, "Sentence number %d carries a bit of content. ", i)
	}

	chunks := SplitChunks(sb.String())
	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.NotEmpty(t, c.Content)
	}
}

func TestSplitChunksNoBoundariesHardCuts(t *testing.T) {
	chunks := SplitChunks(strings.Repeat("x", 5000))
	require.Greater(t, len(chunks), 1)
	assert.LessOrEqual(t, len(chunks[0].Content), chunkTokens*charsPerToken)
}

func TestSplitChunksEmpty(t *testing.T) {
	assert.Empty(t, SplitChunks(""))
	assert.Empty(t, SplitChunks("   \n\n  "))
}
