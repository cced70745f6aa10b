package models

import "time"

// SearchRequest is the body of POST /api/v1/kb/search.
type SearchRequest struct {
	Query       string   `json:"query"`
	TopK        int      `json:"top_k,omitempty"`
	DocumentIDs []string `json:"document_ids,omitempty"`
}

// SearchResult is one fused retrieval hit.
type SearchResult struct {
	DocumentID string  `json:"document_id"`
	ChunkID    int     `json:"chunk_id"`
	Content    string  `json:"content"`
	Score      float64 `json:"score"`
}

// MemoryView is one agent memory returned as a full record.
type MemoryView struct {
	ID        string    `json:"id"`
	AgentID   string    `json:"agent_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// DocumentView summarizes an ingested document for list endpoints.
type DocumentView struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Format     string    `json:"format"`
	Status     string    `json:"status"`
	SummaryL0  string    `json:"summary_l0,omitempty"`
	ChunkCount int       `json:"chunk_count"`
	SizeBytes  int64     `json:"size_bytes"`
	Error      *string   `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
