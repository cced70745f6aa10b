package kb

import "strings"

const (
	// chunkTokens is the target chunk size.
	chunkTokens = 500

	// overlapTokens is carried from the tail of one chunk into the next.
	overlapTokens = 50

	// charsPerToken is the approximation used throughout; exact tokenizer
	// counts are not worth the dependency for sizing purposes.
	charsPerToken = 4
)

// Chunk is one retrieval unit produced by the chunker.
type Chunk struct {
	Seq        int
	Content    string
	TokenCount int
}

// EstimateTokens approximates the token count of text.
func EstimateTokens(text string) int {
	n := len(text) / charsPerToken
	if n == 0 && len(text) > 0 {
		n = 1
	}
	return n
}

// SplitChunks cuts text into ~chunkTokens chunks with overlapTokens of
// overlap. Paragraph boundaries are preferred; paragraphs too large on their
// own are split on sentences, and as a last resort on raw size.
func SplitChunks(text string) []Chunk {
	maxChars := chunkTokens * charsPerToken
	overlapChars := overlapTokens * charsPerToken

	var pieces []string
	for _, para := range splitParagraphs(text) {
		if len(para) <= maxChars {
			pieces = append(pieces, para)
			continue
		}
		pieces = append(pieces, splitSentences(para, maxChars)...)
	}

	var (
		chunks  []Chunk
		current strings.Builder
	)
	flush := func() {
		content := strings.TrimSpace(current.String())
		if content == "" {
			return
		}
		chunks = append(chunks, Chunk{
			Seq:        len(chunks),
			Content:    content,
			TokenCount: EstimateTokens(content),
		})

		// Seed the next chunk with the tail of this one.
		tail := content
		if len(tail) > overlapChars {
			tail = tail[len(tail)-overlapChars:]
			if idx := strings.IndexByte(tail, ' '); idx >= 0 {
				tail = tail[idx+1:]
			}
		}
		current.Reset()
		current.WriteString(tail)
		current.WriteString("\n")
	}

	for _, piece := range pieces {
		if current.Len() > 0 && current.Len()+len(piece) > maxChars {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(piece)

		// Oversized single pieces (no sentence boundaries) get hard cuts.
		for current.Len() > maxChars {
			s := current.String()
			head := s[:maxChars]
			rest := s[maxChars:]
			current.Reset()
			current.WriteString(head)
			flush()
			current.WriteString(rest)
		}
	}

	// Final flush without seeding another overlap.
	content := strings.TrimSpace(current.String())
	if content != "" && !onlyOverlap(chunks, content) {
		chunks = append(chunks, Chunk{
			Seq:        len(chunks),
			Content:    content,
			TokenCount: EstimateTokens(content),
		})
	}
	return chunks
}

// onlyOverlap reports whether content is nothing but the overlap seeded from
// the previous chunk.
func onlyOverlap(chunks []Chunk, content string) bool {
	if len(chunks) == 0 {
		return false
	}
	return strings.HasSuffix(chunks[len(chunks)-1].Content, strings.TrimSpace(content))
}

func splitParagraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitSentences greedily packs sentences into pieces of at most maxChars.
func splitSentences(text string, maxChars int) []string {
	var (
		sentences []string
		start     int
	)
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			if s := strings.TrimSpace(text[start : i+1]); s != "" {
				sentences = append(sentences, s)
			}
			start = i + 1
		}
	}
	if s := strings.TrimSpace(text[start:]); s != "" {
		sentences = append(sentences, s)
	}

	var (
		out     []string
		current strings.Builder
	)
	for _, s := range sentences {
		if current.Len() > 0 && current.Len()+len(s)+1 > maxChars {
			out = append(out, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(s)
	}
	if current.Len() > 0 {
		out = append(out, current.String())
	}
	return out
}
