package repositories

import (
	"context"

	"portfolio_api/internal/database"
)

// Collection names are shared with databases written by earlier deployments.
const (
	ProjectCollection        = "project"
	BlogPostCollection       = "blogpost"
	ContactMessageCollection = "contactmessage"
)

// collection binds a possibly absent store to one collection name.
type collection struct {
	store database.DocumentStore
	name  string
}

func (c collection) available() bool {
	return c.store != nil
}

func (c collection) create(ctx context.Context, doc any) (string, error) {
	if !c.available() {
		return "", database.ErrUnavailable
	}
	return c.store.CreateDocument(ctx, c.name, doc)
}

func (c collection) count(ctx context.Context) (int64, error) {
	if !c.available() {
		return 0, database.ErrUnavailable
	}
	return c.store.CountDocuments(ctx, c.name, nil)
}

func (c collection) findOne(ctx context.Context, filter database.Filter) (database.Document, error) {
	if !c.available() {
		return nil, database.ErrUnavailable
	}
	return c.store.FindOne(ctx, c.name, filter)
}

// list decodes every document matching filter into T.
func list[T any](ctx context.Context, c collection, filter database.Filter) ([]T, error) {
	if !c.available() {
		return nil, database.ErrUnavailable
	}

	docs, err := c.store.GetDocuments(ctx, c.name, filter, 0)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		var item T
		if err := database.Decode(doc, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
