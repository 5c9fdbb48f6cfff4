package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contractRecord struct {
	ID        string     `json:"_id,omitempty" bson:"_id,omitempty"`
	Title     string     `json:"title" bson:"title"`
	Slug      string     `json:"slug" bson:"slug"`
	Tags      []string   `json:"tags" bson:"tags"`
	Link      *string    `json:"link" bson:"link"`
	Published *time.Time `json:"published_at,omitempty" bson:"published_at,omitempty"`
}

// runStoreContract exercises the behavior every DocumentStore backend shares.
func runStoreContract(t *testing.T, store DocumentStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("create returns distinct string ids", func(t *testing.T) {
		rec := contractRecord{Title: "same", Slug: "same", Tags: []string{"a"}}

		id1, err := store.CreateDocument(ctx, "contract_ids", rec)
		require.NoError(t, err)
		id2, err := store.CreateDocument(ctx, "contract_ids", rec)
		require.NoError(t, err)

		assert.NotEmpty(t, id1)
		assert.NotEmpty(t, id2)
		assert.NotEqual(t, id1, id2)

		docs, err := store.GetDocuments(ctx, "contract_ids", nil, 0)
		require.NoError(t, err)
		require.Len(t, docs, 2)
		for _, d := range docs {
			assert.IsType(t, "", d[IDField])
		}
	})

	t.Run("get documents honors filter and limit", func(t *testing.T) {
		for _, slug := range []string{"one", "two", "three"} {
			_, err := store.CreateDocument(ctx, "contract_list", contractRecord{Title: slug, Slug: slug})
			require.NoError(t, err)
		}

		all, err := store.GetDocuments(ctx, "contract_list", Filter{}, 0)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		limited, err := store.GetDocuments(ctx, "contract_list", nil, 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)

		filtered, err := store.GetDocuments(ctx, "contract_list", Filter{"slug": "two"}, 0)
		require.NoError(t, err)
		require.Len(t, filtered, 1)
		assert.Equal(t, "two", filtered[0]["title"])

		empty, err := store.GetDocuments(ctx, "contract_missing", nil, 0)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("count documents", func(t *testing.T) {
		n, err := store.CountDocuments(ctx, "contract_count", nil)
		require.NoError(t, err)
		assert.Zero(t, n)

		_, err = store.CreateDocument(ctx, "contract_count", contractRecord{Title: "x", Slug: "x"})
		require.NoError(t, err)
		_, err = store.CreateDocument(ctx, "contract_count", contractRecord{Title: "y", Slug: "y"})
		require.NoError(t, err)

		n, err = store.CountDocuments(ctx, "contract_count", nil)
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)

		n, err = store.CountDocuments(ctx, "contract_count", Filter{"slug": "y"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})

	t.Run("find one by field", func(t *testing.T) {
		published := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		link := "https://example.com"
		id, err := store.CreateDocument(ctx, "contract_find", contractRecord{
			Title:     "Found",
			Slug:      "found",
			Tags:      []string{"go", "db"},
			Link:      &link,
			Published: &published,
		})
		require.NoError(t, err)

		doc, err := store.FindOne(ctx, "contract_find", Filter{"slug": "found"})
		require.NoError(t, err)
		assert.Equal(t, id, doc[IDField])

		var rec contractRecord
		require.NoError(t, Decode(doc, &rec))
		assert.Equal(t, "Found", rec.Title)
		assert.Equal(t, []string{"go", "db"}, rec.Tags)
		require.NotNil(t, rec.Link)
		assert.Equal(t, link, *rec.Link)
		require.NotNil(t, rec.Published)
		assert.True(t, published.Equal(*rec.Published))

		_, err = store.FindOne(ctx, "contract_find", Filter{"slug": "absent"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list collection names", func(t *testing.T) {
		_, err := store.CreateDocument(ctx, "contract_names", contractRecord{Title: "n"})
		require.NoError(t, err)

		names, err := store.ListCollectionNames(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, "contract_names")
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, store.Ping(ctx))
	})
}
