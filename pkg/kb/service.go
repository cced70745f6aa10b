package kb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/crewforge/crewd/ent"
	"github.com/crewforge/crewd/ent/kbchunk"
	"github.com/crewforge/crewd/ent/kbdocument"
	"github.com/crewforge/crewd/ent/memory"
	"github.com/crewforge/crewd/pkg/events"
	"github.com/crewforge/crewd/pkg/models"
)

const (
	// ingestTimeout bounds one document's background ingestion.
	ingestTimeout = 10 * time.Minute

	// errorColumnCap truncates ingestion errors persisted on the document.
	errorColumnCap = 256

	// defaultTopK is the search result count when the request omits one.
	defaultTopK = 8
)

// ErrDocumentNotFound is returned when a document is missing or belongs to
// another tenant.
var ErrDocumentNotFound = errors.New("document not found")

// ErrMemoryNotFound is returned when a memory is missing or belongs to
// another tenant.
var ErrMemoryNotFound = errors.New("memory not found")

// StatusPublisher announces document ingestion state changes to the team's
// event channel. Optional; a delivery failure never fails ingestion.
type StatusPublisher interface {
	PublishDocumentStatus(ctx context.Context, payload events.DocumentStatusPayload) error
}

// Service owns knowledge-base documents, chunks, memories, and retrieval.
// Embedder and Summarizer are optional; without them ingestion still
// completes with lexical-only retrieval and stub summaries.
type Service struct {
	client     *ent.Client
	db         *sql.DB
	embedder   Embedder
	summarizer Summarizer
	publisher  StatusPublisher
	logger     *slog.Logger
}

// NewService creates a knowledge-base service. db may be nil (in-process
// lexical ranking is used instead of the SQL path); embedder and summarizer
// may be nil.
func NewService(client *ent.Client, db *sql.DB, embedder Embedder, summarizer Summarizer) *Service {
	return &Service{
		client:     client,
		db:         db,
		embedder:   embedder,
		summarizer: summarizer,
		logger:     slog.With("service", "kb"),
	}
}

// Upload registers a document and starts background ingestion. The returned
// document is in status pending.
func (s *Service) Upload(ctx context.Context, teamID, filename string, data []byte) (*ent.KBDocument, error) {
	if len(data) > MaxUploadBytes {
		return nil, ErrTooLarge
	}
	format, err := DetectFormat(filename, data)
	if err != nil {
		return nil, err
	}

	doc, err := s.client.KBDocument.Create().
		SetID(uuid.New().String()).
		SetTeamID(teamID).
		SetFilename(filename).
		SetFormat(kbdocument.Format(format)).
		SetStatus(kbdocument.StatusPending).
		SetSizeBytes(int64(len(data))).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	s.ingestAsync(doc.ID, teamID, format, data)
	return doc, nil
}

// SetEventPublisher registers the document status hook. Must be called
// before any uploads are accepted.
func (s *Service) SetEventPublisher(p StatusPublisher) {
	s.publisher = p
}

// publishStatus is best-effort: ingestion outcome is already persisted on
// the document row.
func (s *Service) publishStatus(ctx context.Context, teamID, docID, status, errMsg string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishDocumentStatus(ctx, events.DocumentStatusPayload{
		Type:       events.EventTypeDocumentStatus,
		TeamID:     teamID,
		DocumentID: docID,
		Status:     status,
		Error:      errMsg,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
	}); err != nil {
		s.logger.Warn("Failed to publish document status",
			"document_id", docID, "status", status, "error", err)
	}
}

// ingestAsync runs ingestion in a supervised goroutine detached from the
// request context.
func (s *Service) ingestAsync(docID, teamID, format string, data []byte) {
	log := s.logger.With("document_id", docID, "team_id", teamID)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("Ingestion panicked", "panic", r, "stack", string(debug.Stack()))
				s.markFailed(context.Background(), teamID, docID, fmt.Sprintf("panic: %v", r))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout)
		defer cancel()

		if err := s.ingest(ctx, teamID, docID, format, data); err != nil {
			log.Error("Ingestion failed", "error", err)
			s.markFailed(context.Background(), teamID, docID, err.Error())
			return
		}
		log.Info("Document ingested")
	}()
}

func (s *Service) ingest(ctx context.Context, teamID, docID, format string, data []byte) error {
	if err := s.client.KBDocument.UpdateOneID(docID).
		SetStatus(kbdocument.StatusProcessing).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark processing: %w", err)
	}
	s.publishStatus(ctx, teamID, docID, string(kbdocument.StatusProcessing), "")

	text, err := ExtractText(format, data)
	if err != nil {
		return err
	}

	chunks := SplitChunks(text)
	if len(chunks) == 0 {
		return ErrEmptyDocument
	}

	var vectors [][]float32
	if s.embedder != nil {
		contents := make([]string, len(chunks))
		for i, c := range chunks {
			contents[i] = c.Content
		}
		vectors, err = s.embedder.Embed(ctx, contents)
		if err != nil {
			return fmt.Errorf("failed to embed chunks: %w", err)
		}
	}

	doc, err := s.client.KBDocument.Get(ctx, docID)
	if err != nil {
		return err
	}

	builders := make([]*ent.KBChunkCreate, len(chunks))
	for i, c := range chunks {
		b := s.client.KBChunk.Create().
			SetDocumentID(docID).
			SetTeamID(doc.TeamID).
			SetSeq(c.Seq).
			SetContent(c.Content).
			SetTokenCount(c.TokenCount)
		if vectors != nil {
			b.SetEmbedding(vectors[i])
		}
		builders[i] = b
	}
	if err := s.client.KBChunk.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("failed to store chunks: %w", err)
	}

	l0, l1 := s.summarize(ctx, text)

	if err := s.client.KBDocument.UpdateOneID(docID).
		SetStatus(kbdocument.StatusReady).
		SetChunkCount(len(chunks)).
		SetSummaryL0(l0).
		SetSummaryL1(l1).
		Exec(ctx); err != nil {
		return err
	}
	s.publishStatus(ctx, teamID, docID, string(kbdocument.StatusReady), "")
	return nil
}

// summarize produces L0 (short) and L1 (long) summaries, degrading to
// leading-text stubs when the model is unavailable.
func (s *Service) summarize(ctx context.Context, text string) (string, string) {
	l0Words := summaryL0Tokens * 3 / 4
	if s.summarizer == nil {
		return stubSummary(text, l0Words), stubSummary(text, summaryL1Words)
	}

	l0, err := s.summarizer.Summarize(ctx, text, l0Words)
	if err != nil {
		s.logger.Warn("L0 summary failed, using stub", "error", err)
		l0 = stubSummary(text, l0Words)
	}
	l1, err := s.summarizer.Summarize(ctx, text, summaryL1Words)
	if err != nil {
		s.logger.Warn("L1 summary failed, using stub", "error", err)
		l1 = stubSummary(text, summaryL1Words)
	}
	return l0, l1
}

func (s *Service) markFailed(ctx context.Context, teamID, docID, reason string) {
	if len(reason) > errorColumnCap {
		reason = reason[:errorColumnCap]
	}
	if err := s.client.KBDocument.UpdateOneID(docID).
		SetStatus(kbdocument.StatusFailed).
		SetError(reason).
		Exec(ctx); err != nil {
		s.logger.Error("Failed to mark document failed", "document_id", docID, "error", err)
		return
	}
	s.publishStatus(ctx, teamID, docID, string(kbdocument.StatusFailed), reason)
}

// CleanupStalled fails documents stuck in pending/processing, called once at
// startup: their ingestion goroutines did not survive the previous process.
func (s *Service) CleanupStalled(ctx context.Context) (int, error) {
	n, err := s.client.KBDocument.Update().
		Where(kbdocument.StatusIn(kbdocument.StatusPending, kbdocument.StatusProcessing)).
		SetStatus(kbdocument.StatusFailed).
		SetError("ingestion interrupted by restart").
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up stalled documents: %w", err)
	}
	if n > 0 {
		s.logger.Info("Failed stalled documents from previous run", "count", n)
	}
	return n, nil
}

// ListDocuments returns a tenant's documents, newest first.
func (s *Service) ListDocuments(ctx context.Context, teamID string) ([]*ent.KBDocument, error) {
	return s.client.KBDocument.Query().
		Where(kbdocument.TeamID(teamID)).
		Order(ent.Desc(kbdocument.FieldCreatedAt)).
		All(ctx)
}

// GetDocument returns one document, scoped to the tenant.
func (s *Service) GetDocument(ctx context.Context, teamID, docID string) (*ent.KBDocument, error) {
	doc, err := s.client.KBDocument.Query().
		Where(kbdocument.ID(docID), kbdocument.TeamID(teamID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

// DeleteDocument removes a document and its chunks.
func (s *Service) DeleteDocument(ctx context.Context, teamID, docID string) error {
	if _, err := s.GetDocument(ctx, teamID, docID); err != nil {
		return err
	}
	if _, err := s.client.KBChunk.Delete().
		Where(kbchunk.DocumentID(docID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete chunks: %w", err)
	}
	return s.client.KBDocument.DeleteOneID(docID).Exec(ctx)
}

// Search runs hybrid retrieval: dense cosine ranking fused with lexical
// ranking via reciprocal rank fusion.
func (s *Service) Search(ctx context.Context, teamID string, req models.SearchRequest) ([]models.SearchResult, error) {
	topK := req.TopK
	if topK <= 0 {
		topK = defaultTopK
	}

	q := s.client.KBChunk.Query().Where(kbchunk.TeamID(teamID))
	if len(req.DocumentIDs) > 0 {
		q = q.Where(kbchunk.DocumentIDIn(req.DocumentIDs...))
	}
	chunks, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chunks: %w", err)
	}
	if len(chunks) == 0 {
		return []models.SearchResult{}, nil
	}

	byID := make(map[int]*ent.KBChunk, len(chunks))
	for _, c := range chunks {
		byID[c.ID] = c
	}

	// Each retrieval side contributes up to twice the requested result
	// count, so fusion has depth to reorder.
	candidates := 2 * topK
	dense := s.denseRank(ctx, req.Query, chunks, candidates)
	lexical := s.lexicalRankFor(ctx, teamID, req, chunks, candidates)

	fused := FuseRRF(dense, lexical)
	if len(fused) > topK {
		fused = fused[:topK]
	}

	results := make([]models.SearchResult, 0, len(fused))
	for _, id := range fused {
		c, ok := byID[id]
		if !ok {
			continue
		}
		results = append(results, models.SearchResult{
			DocumentID: c.DocumentID,
			ChunkID:    c.ID,
			Content:    c.Content,
			Score:      FusedScore(id, dense, lexical),
		})
	}
	return results, nil
}

// denseRank orders chunk IDs by cosine similarity to the query embedding.
// Without an embedder (or without stored vectors) it contributes nothing.
func (s *Service) denseRank(ctx context.Context, query string, chunks []*ent.KBChunk, candidates int) []int {
	if s.embedder == nil {
		return nil
	}
	vectors, err := s.embedder.Embed(ctx, []string{query})
	if err != nil || len(vectors) != 1 {
		s.logger.Warn("Query embedding failed, dense ranking skipped", "error", err)
		return nil
	}
	queryVec := vectors[0]

	var hits []scoredID
	for _, c := range chunks {
		if len(c.Embedding) == 0 {
			continue
		}
		if score := Cosine(queryVec, c.Embedding); score > 0 {
			hits = append(hits, scoredID{id: c.ID, score: score})
		}
	}
	sortScored(hits)

	limit := min(len(hits), candidates)
	ids := make([]int, limit)
	for i := 0; i < limit; i++ {
		ids[i] = hits[i].id
	}
	return ids
}

// lexicalRankFor prefers the SQL full-text path (backed by the GIN index);
// without a raw handle it ranks in-process.
func (s *Service) lexicalRankFor(ctx context.Context, teamID string, req models.SearchRequest, chunks []*ent.KBChunk, candidates int) []int {
	if s.db != nil {
		ids, err := s.lexicalRankSQL(ctx, teamID, req, candidates)
		if err == nil {
			return ids
		}
		s.logger.Warn("SQL lexical ranking failed, falling back in-process", "error", err)
	}

	contents := make(map[int]string, len(chunks))
	for _, c := range chunks {
		contents[c.ID] = c.Content
	}
	ids := lexicalRank(req.Query, contents)
	if len(ids) > candidates {
		ids = ids[:candidates]
	}
	return ids
}

func (s *Service) lexicalRankSQL(ctx context.Context, teamID string, req models.SearchRequest, candidates int) ([]int, error) {
	query := `
		SELECT id FROM kb_chunks
		WHERE team_id = $1
		  AND to_tsvector('english', content) @@ plainto_tsquery('english', $2)
		ORDER BY ts_rank(to_tsvector('english', content), plainto_tsquery('english', $2)) DESC
		LIMIT $3`
	rows, err := s.db.QueryContext(ctx, query, teamID, req.Query, candidates)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// AddMemory stores an embedded agent memory.
func (s *Service) AddMemory(ctx context.Context, teamID, agentID, content string) (*ent.Memory, error) {
	create := s.client.Memory.Create().
		SetID(uuid.New().String()).
		SetTeamID(teamID).
		SetAgentID(agentID).
		SetContent(content)

	if s.embedder != nil {
		if vectors, err := s.embedder.Embed(ctx, []string{content}); err == nil && len(vectors) == 1 {
			create.SetEmbedding(vectors[0])
		} else if err != nil {
			s.logger.Warn("Memory embedding failed, storing without vector", "error", err)
		}
	}
	return create.Save(ctx)
}

// ListMemories returns an agent's memories, newest first.
func (s *Service) ListMemories(ctx context.Context, teamID, agentID string) ([]*ent.Memory, error) {
	return s.client.Memory.Query().
		Where(memory.TeamID(teamID), memory.AgentID(agentID)).
		Order(ent.Desc(memory.FieldCreatedAt)).
		All(ctx)
}

// SearchMemories returns the agent memories most similar to query. Without
// vectors it falls back to lexical term matching.
func (s *Service) SearchMemories(ctx context.Context, teamID, agentID, query string, topK int) ([]*ent.Memory, error) {
	if topK <= 0 {
		topK = defaultTopK
	}
	memories, err := s.client.Memory.Query().
		Where(memory.TeamID(teamID), memory.AgentID(agentID)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	if len(memories) == 0 {
		return []*ent.Memory{}, nil
	}

	var queryVec []float32
	if s.embedder != nil {
		if vectors, err := s.embedder.Embed(ctx, []string{query}); err == nil && len(vectors) == 1 {
			queryVec = vectors[0]
		}
	}

	byPos := make(map[int]*ent.Memory, len(memories))
	var hits []scoredID
	for i, m := range memories {
		byPos[i] = m
		var score float64
		if queryVec != nil && len(m.Embedding) > 0 {
			score = Cosine(queryVec, m.Embedding)
		} else {
			score = float64(len(lexicalRank(query, map[int]string{0: m.Content})))
		}
		if score > 0 {
			hits = append(hits, scoredID{id: i, score: score})
		}
	}
	sortScored(hits)

	limit := min(len(hits), topK)
	out := make([]*ent.Memory, limit)
	for i := 0; i < limit; i++ {
		out[i] = byPos[hits[i].id]
	}
	return out, nil
}

// DeleteMemory removes one memory, scoped to the tenant.
func (s *Service) DeleteMemory(ctx context.Context, teamID, memoryID string) error {
	n, err := s.client.Memory.Delete().
		Where(memory.ID(memoryID), memory.TeamID(teamID)).
		Exec(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMemoryNotFound
	}
	return nil
}
