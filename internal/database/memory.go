package database

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps every collection in process memory. Data is lost on restart.
// Safe for concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	name        string
	collections map[string][]Document
}

func NewMemoryStore(name string) *MemoryStore {
	if name == "" {
		name = "memory"
	}
	return &MemoryStore{
		name:        name,
		collections: make(map[string][]Document),
	}
}

func (m *MemoryStore) Name() string {
	return m.name
}

func (m *MemoryStore) CreateDocument(_ context.Context, collection string, doc any) (string, error) {
	d, err := toDocument(doc)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	d[IDField] = id

	m.mu.Lock()
	defer m.mu.Unlock()
	m.collections[collection] = append(m.collections[collection], d)

	return id, nil
}

func (m *MemoryStore) GetDocuments(_ context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	want, err := normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]Document, 0, len(m.collections[collection]))
	for _, d := range m.collections[collection] {
		if limit > 0 && len(docs) >= limit {
			break
		}
		if matches(d, want) {
			docs = append(docs, deepCopy(d))
		}
	}

	return docs, nil
}

func (m *MemoryStore) CountDocuments(_ context.Context, collection string, filter Filter) (int64, error) {
	want, err := normalizeFilter(filter)
	if err != nil {
		return 0, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, d := range m.collections[collection] {
		if matches(d, want) {
			n++
		}
	}
	return n, nil
}

func (m *MemoryStore) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	docs, err := m.GetDocuments(ctx, collection, filter, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	return docs[0], nil
}

func (m *MemoryStore) ListCollectionNames(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name, docs := range m.collections {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (m *MemoryStore) Close(_ context.Context) error {
	return nil
}

// normalizeFilter gives filter values the same shape stored documents have
// after their JSON round trip.
func normalizeFilter(filter Filter) (Document, error) {
	if len(filter) == 0 {
		return nil, nil
	}
	return toDocument(map[string]any(filter))
}

func matches(doc, want Document) bool {
	for k, v := range want {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, v) {
			return false
		}
	}
	return true
}

// deepCopy detaches a stored document from the caller.
func deepCopy(src Document) Document {
	dst, _ := toDocument(map[string]any(src))
	if id, ok := src[IDField]; ok {
		dst[IDField] = id
	}
	return dst
}
