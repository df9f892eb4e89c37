package repository

import (
	"context"
	"sync"

	"contentflow/internal/models"
	"contentflow/internal/tier"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryStore is a process-local Store for development and tests.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]map[models.Kind]models.Document
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]map[models.Kind]models.Document{}}
}

func (s *MemoryStore) kinds(ns tier.Namespace) map[models.Kind]models.Document {
	m, ok := s.data[ns.Prefix]
	if !ok {
		m = map[models.Kind]models.Document{}
		s.data[ns.Prefix] = m
	}
	return m
}

func (s *MemoryStore) Find(_ context.Context, ns tier.Namespace, kind models.Kind) (models.Document, error) {
	if _, err := newDocument(kind); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.kinds(ns)[kind]
	if !ok {
		return nil, nil
	}
	return models.Clone(doc), nil
}

func (s *MemoryStore) Load(ctx context.Context, ns tier.Namespace) (models.Content, error) {
	return loadAll(ctx, s, ns)
}

func (s *MemoryStore) Save(_ context.Context, ns tier.Namespace, doc models.Document) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.kinds(ns)
	id := bson.NewObjectID()
	if cur, ok := m[doc.Kind()]; ok {
		id = cur.DocID()
	}
	stored := withID(doc, id)
	m[doc.Kind()] = stored
	return models.Clone(stored), nil
}

func (s *MemoryStore) Delete(_ context.Context, ns tier.Namespace, kind models.Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.kinds(ns), kind)
	return nil
}

func (s *MemoryStore) AppendNews(_ context.Context, ns tier.Namespace, items []models.NewsItem) (*models.NewsDoc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.kinds(ns)
	doc, ok := m[models.KindNews].(*models.NewsDoc)
	if !ok {
		doc = &models.NewsDoc{ID: bson.NewObjectID()}
		m[models.KindNews] = doc
	}
	doc.NewsItems = append(doc.NewsItems, items...)
	return models.Clone(doc).(*models.NewsDoc), nil
}

func (s *MemoryStore) PullNews(_ context.Context, ns tier.Namespace, id bson.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.kinds(ns)[models.KindNews].(*models.NewsDoc)
	if !ok {
		return false, nil
	}
	kept := doc.NewsItems[:0]
	for _, it := range doc.NewsItems {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	removed := len(kept) != len(doc.NewsItems)
	doc.NewsItems = kept
	return removed, nil
}

func (s *MemoryStore) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *MemoryStore) Transactional() bool { return false }
