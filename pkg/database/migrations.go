package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These back the lexical side of hybrid knowledge-base retrieval and chat
// message search, and cannot be expressed in the Ent schema files.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for knowledge-base chunk lexical matching
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_kb_chunks_content_gin
		ON kb_chunks USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create kb_chunks GIN index: %w", err)
	}

	// GIN index for chat message search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_chat_messages_content_gin
		ON chat_messages USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create chat_messages GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. DM and task-thread channels are lazily created
// singletons per (team, name); the partial index backs the lost-race re-read
// in ChatService.getOrCreate.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS chatchannel_team_id_name_singleton
		ON chat_channels (team_id, name)
		WHERE type IN ('dm', 'task_thread')`)
	if err != nil {
		return fmt.Errorf("failed to create singleton channel index: %w", err)
	}

	return nil
}
