package services

import (
	"context"
	"sort"
	"sync"

	"contentflow/dto"
	"contentflow/internal/models"
	"contentflow/internal/repository"
	"contentflow/internal/tier"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Deps struct {
	Store    repository.Store
	Chain    tier.Chain
	Users    repository.UserDirectory
	Notifier Notifier
	Log      zerolog.Logger
}

// ContentService owns every tier's content documents. All reads, writes and
// tier transitions go through it.
type ContentService struct {
	store    repository.Store
	chain    tier.Chain
	users    repository.UserDirectory
	notifier Notifier
	log      zerolog.Logger

	locks map[string]*sync.Mutex
}

func NewContentService(d Deps) *ContentService {
	s := &ContentService{
		store:    d.Store,
		chain:    d.Chain,
		users:    d.Users,
		notifier: d.Notifier,
		log:      d.Log,
		locks:    map[string]*sync.Mutex{tier.PublishedName: {}},
	}
	for _, t := range d.Chain.Tiers {
		s.locks[t.Name] = &sync.Mutex{}
	}
	if s.notifier == nil {
		s.notifier = NewLogNotifier(d.Log)
	}
	return s
}

func (s *ContentService) Chain() tier.Chain { return s.chain }

func (s *ContentService) resolve(name string) (tier.Namespace, error) {
	if name == tier.PublishedName {
		return s.chain.Published(), nil
	}
	t, _, err := s.chain.Lookup(name)
	if err != nil {
		return tier.Namespace{}, err
	}
	return t.Namespace(), nil
}

// lock takes the per-tier mutexes in chain order and returns the release func.
func (s *ContentService) lock(nss ...tier.Namespace) func() {
	sorted := append([]tier.Namespace{}, nss...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return s.chain.Order(sorted[i]) < s.chain.Order(sorted[j])
	})
	var held []*sync.Mutex
	seen := map[string]bool{}
	for _, ns := range sorted {
		if seen[ns.Name] {
			continue
		}
		seen[ns.Name] = true
		mu := s.locks[ns.Name]
		mu.Lock()
		held = append(held, mu)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

// getOrCreate applies the MissingCreate policy: the empty document is stored
// on first read.
func (s *ContentService) getOrCreate(ctx context.Context, ns tier.Namespace, empty models.Document) (models.Document, error) {
	doc, err := s.store.Find(ctx, ns, empty.Kind())
	if err != nil || doc != nil {
		return doc, err
	}

	unlock := s.lock(ns)
	defer unlock()

	if doc, err = s.store.Find(ctx, ns, empty.Kind()); err != nil || doc != nil {
		return doc, err
	}
	return s.store.Save(ctx, ns, empty)
}

// read applies the kind's MissingPolicy. A nil document comes back only for
// MissingNotFound.
func (s *ContentService) read(ctx context.Context, ns tier.Namespace, empty models.Document) (models.Document, error) {
	policy := models.MissingPolicies[empty.Kind()]
	if policy == models.MissingCreate {
		return s.getOrCreate(ctx, ns, empty)
	}
	doc, err := s.store.Find(ctx, ns, empty.Kind())
	if err != nil || doc != nil || policy == models.MissingNotFound {
		return doc, err
	}
	return empty, nil
}

func (s *ContentService) save(ctx context.Context, ns tier.Namespace, doc models.Document, actor models.Actor) (models.Document, error) {
	unlock := s.lock(ns)
	defer unlock()

	prev, err := s.store.Find(ctx, ns, doc.Kind())
	if err != nil {
		return nil, err
	}
	out, err := s.store.Save(ctx, ns, doc)
	if err != nil {
		return nil, err
	}

	action := "updated"
	if prev == nil {
		action = "created"
	}
	s.log.Info().
		Str("tier", ns.Name).
		Str("kind", string(doc.Kind())).
		Str("performedBy", actor.Label()).
		Msgf("%s %s", doc.Kind(), action)
	return models.Normalize(out), nil
}

func (s *ContentService) Gallery(ctx context.Context, name string) (*models.GalleryDoc, error) {
	ns, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	doc, err := s.read(ctx, ns, &models.GalleryDoc{GalleryImages: []string{}})
	if err != nil {
		return nil, err
	}
	return models.Normalize(doc).(*models.GalleryDoc), nil
}

// SetGallery replaces the gallery images wholesale.
func (s *ContentService) SetGallery(ctx context.Context, name string, images []string, actor models.Actor) (*models.GalleryDoc, error) {
	ns, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	doc, err := s.save(ctx, ns, &models.GalleryDoc{GalleryImages: images}, actor)
	if err != nil {
		return nil, err
	}
	return doc.(*models.GalleryDoc), nil
}

func (s *ContentService) News(ctx context.Context, name string) ([]models.NewsItem, error) {
	ns, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	doc, err := s.read(ctx, ns, &models.NewsDoc{NewsItems: []models.NewsItem{}})
	if err != nil {
		return nil, err
	}
	return models.Normalize(doc).(*models.NewsDoc).NewsItems, nil
}

func (s *ContentService) NewsItem(ctx context.Context, name, id string) (models.NewsItem, error) {
	ns, err := s.resolve(name)
	if err != nil {
		return models.NewsItem{}, err
	}
	doc, err := s.store.Find(ctx, ns, models.KindNews)
	if err != nil {
		return models.NewsItem{}, err
	}
	if doc == nil {
		return models.NewsItem{}, ErrNoNews
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.NewsItem{}, ErrNewsItemNotFound
	}
	item, ok := doc.(*models.NewsDoc).Item(oid)
	if !ok {
		return models.NewsItem{}, ErrNewsItemNotFound
	}
	return item, nil
}

// AppendNews adds items after the existing ones. Items without an id get one.
func (s *ContentService) AppendNews(ctx context.Context, name string, items []models.NewsItem, actor models.Actor) (*models.NewsDoc, error) {
	ns, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	withIDs := make([]models.NewsItem, len(items))
	for i, it := range items {
		if it.ID.IsZero() {
			it.ID = bson.NewObjectID()
		}
		withIDs[i] = it
	}

	unlock := s.lock(ns)
	defer unlock()

	doc, err := s.store.AppendNews(ctx, ns, withIDs)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("tier", ns.Name).
		Int("added", len(withIDs)).
		Int("total", len(doc.NewsItems)).
		Str("performedBy", actor.Label()).
		Msg("news updated")
	return models.Normalize(doc).(*models.NewsDoc), nil
}

func (s *ContentService) RemoveNews(ctx context.Context, name, id string, actor models.Actor) error {
	ns, err := s.resolve(name)
	if err != nil {
		return err
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrNewsItemNotFound
	}

	unlock := s.lock(ns)
	defer unlock()

	removed, err := s.store.PullNews(ctx, ns, oid)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNewsItemNotFound
	}
	s.log.Info().
		Str("tier", ns.Name).
		Str("newsItemId", id).
		Str("performedBy", actor.Label()).
		Msg("news item deleted")
	return nil
}

func (s *ContentService) Toggle(ctx context.Context, name string) (*models.ToggleDoc, error) {
	ns, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	doc, err := s.read(ctx, ns, &models.ToggleDoc{IsActive: false})
	if err != nil {
		return nil, err
	}
	return doc.(*models.ToggleDoc), nil
}

func (s *ContentService) SetToggle(ctx context.Context, name string, active bool, actor models.Actor) (*models.ToggleDoc, error) {
	ns, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	doc, err := s.save(ctx, ns, &models.ToggleDoc{IsActive: active}, actor)
	if err != nil {
		return nil, err
	}
	return doc.(*models.ToggleDoc), nil
}

// Banner is not created on read; a missing banner is ErrNoBanner.
func (s *ContentService) Banner(ctx context.Context, name string) (*models.BannerDoc, error) {
	ns, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	doc, err := s.read(ctx, ns, &models.BannerDoc{Images: []string{}})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNoBanner
	}
	return models.Normalize(doc).(*models.BannerDoc), nil
}

func (s *ContentService) SetBanner(ctx context.Context, name string, images []string, actor models.Actor) (*models.BannerDoc, error) {
	ns, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	doc, err := s.save(ctx, ns, &models.BannerDoc{Images: images}, actor)
	if err != nil {
		return nil, err
	}
	return doc.(*models.BannerDoc), nil
}

// AllContent aggregates the four kinds without creating anything.
func (s *ContentService) AllContent(ctx context.Context, name string) (dto.AllContentResponse, error) {
	ns, err := s.resolve(name)
	if err != nil {
		return dto.AllContentResponse{}, err
	}
	c, err := s.store.Load(ctx, ns)
	if err != nil {
		return dto.AllContentResponse{}, err
	}
	return dto.NewAllContentResponse(c), nil
}
