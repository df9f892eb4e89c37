package repository

import (
	"context"
	"errors"
	"fmt"

	"contentflow/internal/models"
	"contentflow/internal/tier"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var ErrUnknownKind = errors.New("unknown content kind")

// Store persists the singleton content documents of every namespace.
// Find returns (nil, nil) when a kind has no document.
type Store interface {
	Find(ctx context.Context, ns tier.Namespace, kind models.Kind) (models.Document, error)
	Load(ctx context.Context, ns tier.Namespace) (models.Content, error)
	// Save replaces the singleton of doc's kind and returns what was stored.
	// The stored document keeps its existing _id, or gets a new one.
	Save(ctx context.Context, ns tier.Namespace, doc models.Document) (models.Document, error)
	Delete(ctx context.Context, ns tier.Namespace, kind models.Kind) error
	AppendNews(ctx context.Context, ns tier.Namespace, items []models.NewsItem) (*models.NewsDoc, error)
	PullNews(ctx context.Context, ns tier.Namespace, id bson.ObjectID) (bool, error)
	// Transact runs fn as one unit. Transactional reports whether a failed
	// unit is rolled back by the store itself.
	Transact(ctx context.Context, fn func(ctx context.Context) error) error
	Transactional() bool
}

func collectionName(ns tier.Namespace, kind models.Kind) string {
	return ns.Prefix + string(kind)
}

func newDocument(kind models.Kind) (models.Document, error) {
	switch kind {
	case models.KindGallery:
		return &models.GalleryDoc{}, nil
	case models.KindNews:
		return &models.NewsDoc{}, nil
	case models.KindToggle:
		return &models.ToggleDoc{}, nil
	case models.KindBanner:
		return &models.BannerDoc{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// withID returns a copy of doc carrying id.
func withID(doc models.Document, id bson.ObjectID) models.Document {
	cp := models.Clone(doc)
	switch d := cp.(type) {
	case *models.GalleryDoc:
		d.ID = id
	case *models.NewsDoc:
		d.ID = id
	case *models.ToggleDoc:
		d.ID = id
	case *models.BannerDoc:
		d.ID = id
	}
	return cp
}

func loadAll(ctx context.Context, s Store, ns tier.Namespace) (models.Content, error) {
	var c models.Content
	for _, k := range models.Kinds {
		doc, err := s.Find(ctx, ns, k)
		if err != nil {
			return models.Content{}, fmt.Errorf("load %s%s: %w", ns.Prefix, k, err)
		}
		if doc != nil {
			c.Set(doc)
		}
	}
	return c, nil
}
