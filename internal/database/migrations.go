package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	migrations := []string{
		createDocumentsTable,
		createDocumentsIndexes,
		createBlogPostSlugIndex,
	}

	for i, migration := range migrations {
		logger.Debug("running migration", zap.Int("step", i+1), zap.Int("total", len(migrations)))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	logger.Info("all migrations completed successfully")
	return nil
}

const createDocumentsTable = `
CREATE TABLE IF NOT EXISTS documents (
  seq BIGSERIAL,
  id UUID PRIMARY KEY,
  collection TEXT NOT NULL,
  data JSONB NOT NULL DEFAULT '{}'::jsonb,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
`

const createDocumentsIndexes = `
CREATE INDEX IF NOT EXISTS idx_documents_collection_seq ON documents(collection, seq);
CREATE INDEX IF NOT EXISTS idx_documents_data ON documents USING GIN (data jsonb_path_ops);
`

// Slugs are looked up by exact match; uniqueness is left to the writers.
const createBlogPostSlugIndex = `
CREATE INDEX IF NOT EXISTS idx_documents_blogpost_slug
  ON documents ((data->>'slug'))
  WHERE collection = 'blogpost';
`
