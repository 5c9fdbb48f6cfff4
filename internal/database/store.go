package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// IDField is the document key holding the store-assigned identifier.
// Backends always return it as a string.
const IDField = "_id"

var (
	// ErrUnavailable is returned when no store connection was established.
	ErrUnavailable = errors.New("database not available")
	// ErrNotFound is returned by FindOne when no document matches the filter.
	ErrNotFound = errors.New("document not found")
	// ErrNotConfigured is returned by Open when no connection URL is set.
	ErrNotConfigured = errors.New("database url not configured")
)

// Document is a loosely-typed stored record.
type Document map[string]any

// Filter selects documents by exact field equality. A nil or empty filter
// matches every document in the collection.
type Filter map[string]any

// DocumentStore is a connection to a database of named document collections.
type DocumentStore interface {
	// Name returns the database name.
	Name() string

	// CreateDocument inserts doc into collection and returns its identifier.
	CreateDocument(ctx context.Context, collection string, doc any) (string, error)

	// GetDocuments returns documents matching filter. limit <= 0 means no limit.
	GetDocuments(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)

	// CountDocuments counts documents matching filter.
	CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error)

	// FindOne returns the first document matching filter, or ErrNotFound.
	FindOne(ctx context.Context, collection string, filter Filter) (Document, error)

	// ListCollectionNames returns the names of the collections holding data.
	ListCollectionNames(ctx context.Context) ([]string, error)

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// toDocument converts a typed record into its JSON document form.
// An empty identifier is dropped so the backend can assign one.
func toDocument(v any) (Document, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("document must encode to a JSON object: %w", err)
	}
	if doc == nil {
		doc = Document{}
	}

	if id, ok := doc[IDField]; ok && (id == nil || id == "") {
		delete(doc, IDField)
	}

	return doc, nil
}

// Decode fills out from doc, going through the JSON field tags of out.
func Decode(doc Document, out any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}
