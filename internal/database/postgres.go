package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps documents as JSONB rows of a single documents table,
// one collection column per row.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Name() string {
	return s.pool.Config().ConnConfig.Database
}

func (s *PostgresStore) CreateDocument(ctx context.Context, collection string, doc any) (string, error) {
	d, err := toDocument(doc)
	if err != nil {
		return "", err
	}
	delete(d, IDField)

	data, err := json.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	id := uuid.New()

	query := `
		INSERT INTO documents (id, collection, data)
		VALUES ($1, $2, $3::jsonb)
	`

	if _, err := s.pool.Exec(ctx, query, id.String(), collection, data); err != nil {
		return "", fmt.Errorf("failed to insert into %s: %w", collection, err)
	}

	return id.String(), nil
}

func (s *PostgresStore) GetDocuments(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	match, err := encodeFilter(filter)
	if err != nil {
		return nil, err
	}

	// LIMIT NULL is unbounded.
	var lim *int
	if limit > 0 {
		lim = &limit
	}

	query := `
		SELECT id::text, data
		FROM documents
		WHERE collection = $1 AND data @> $2::jsonb
		ORDER BY seq
		LIMIT $3
	`

	rows, err := s.pool.Query(ctx, query, collection, match, lim)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer rows.Close()

	docs := []Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

func (s *PostgresStore) CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error) {
	match, err := encodeFilter(filter)
	if err != nil {
		return 0, err
	}

	query := `SELECT COUNT(*) FROM documents WHERE collection = $1 AND data @> $2::jsonb`

	var n int64
	if err := s.pool.QueryRow(ctx, query, collection, match).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", collection, err)
	}
	return n, nil
}

func (s *PostgresStore) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	match, err := encodeFilter(filter)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id::text, data
		FROM documents
		WHERE collection = $1 AND data @> $2::jsonb
		ORDER BY seq
		LIMIT 1
	`

	doc, err := scanDocument(s.pool.QueryRow(ctx, query, collection, match))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *PostgresStore) ListCollectionNames(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT DISTINCT collection FROM documents ORDER BY collection`)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close(_ context.Context) error {
	s.pool.Close()
	return nil
}

func encodeFilter(filter Filter) ([]byte, error) {
	if len(filter) == 0 {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter: %w", err)
	}
	return b, nil
}

func scanDocument(row pgx.Row) (Document, error) {
	var (
		id   string
		data []byte
	)
	if err := row.Scan(&id, &data); err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", id, err)
	}
	if doc == nil {
		doc = Document{}
	}
	doc[IDField] = id

	return doc, nil
}
