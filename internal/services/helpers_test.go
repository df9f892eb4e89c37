package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"contentflow/internal/models"
	"contentflow/internal/repository"
	"contentflow/internal/tier"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type sentMail struct {
	to      []string
	subject string
	text    string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (n *recordingNotifier) SendToMultiple(_ context.Context, to []string, subject, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, sentMail{to: to, subject: subject, text: text})
	return nil
}

// faultStore fails Save with whatever error failSave returns.
type faultStore struct {
	repository.Store
	failSave func(ns tier.Namespace, kind models.Kind) error
}

var (
	errInjected = errors.New("injected write failure")
	errUndo     = errors.New("injected undo failure")
)

func (f *faultStore) Save(ctx context.Context, ns tier.Namespace, doc models.Document) (models.Document, error) {
	if f.failSave != nil {
		if err := f.failSave(ns, doc.Kind()); err != nil {
			return nil, err
		}
	}
	return f.Store.Save(ctx, ns, doc)
}

// overlapStore records whether two writes ever ran on the same namespace at
// the same time.
type overlapStore struct {
	repository.Store

	mu      sync.Mutex
	busy    map[string]int
	overlap []string
}

func newOverlapStore(st repository.Store) *overlapStore {
	return &overlapStore{Store: st, busy: map[string]int{}}
}

func (o *overlapStore) enter(ns tier.Namespace) func() {
	o.mu.Lock()
	o.busy[ns.Name]++
	if o.busy[ns.Name] > 1 {
		o.overlap = append(o.overlap, ns.Name)
	}
	o.mu.Unlock()

	// Widen the window so unserialised writers would collide.
	time.Sleep(20 * time.Microsecond)

	return func() {
		o.mu.Lock()
		o.busy[ns.Name]--
		o.mu.Unlock()
	}
}

func (o *overlapStore) Overlaps() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.overlap...)
}

func (o *overlapStore) Save(ctx context.Context, ns tier.Namespace, doc models.Document) (models.Document, error) {
	defer o.enter(ns)()
	return o.Store.Save(ctx, ns, doc)
}

func (o *overlapStore) Delete(ctx context.Context, ns tier.Namespace, kind models.Kind) error {
	defer o.enter(ns)()
	return o.Store.Delete(ctx, ns, kind)
}

func (o *overlapStore) AppendNews(ctx context.Context, ns tier.Namespace, items []models.NewsItem) (*models.NewsDoc, error) {
	defer o.enter(ns)()
	return o.Store.AppendNews(ctx, ns, items)
}

func (o *overlapStore) PullNews(ctx context.Context, ns tier.Namespace, id bson.ObjectID) (bool, error) {
	defer o.enter(ns)()
	return o.Store.PullNews(ctx, ns, id)
}

// downDirectory fails every lookup.
type downDirectory struct{}

func (downDirectory) EmailsByRole(context.Context, string) ([]string, error) {
	return nil, errors.New("directory down")
}

type fixture struct {
	svc      *ContentService
	store    *repository.MemoryStore
	users    *repository.MemoryUsers
	notifier *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store: repository.NewMemoryStore(),
		users: repository.NewMemoryUsers(
			models.User{Email: "ada@example.com", Role: "admin"},
			models.User{Email: "lin@example.com", Role: "leadadmin"},
			models.User{Email: "sam@example.com", Role: "superadmin"},
		),
		notifier: &recordingNotifier{},
	}
	f.svc = NewContentService(Deps{
		Store:    f.store,
		Chain:    tier.Default(),
		Users:    f.users,
		Notifier: f.notifier,
		Log:      zerolog.Nop(),
	})
	return f
}

// withStore rebuilds the service over st, keeping the other collaborators.
func (f *fixture) withStore(st repository.Store) *ContentService {
	return f.with(st, f.users)
}

func (f *fixture) with(st repository.Store, users repository.UserDirectory) *ContentService {
	return NewContentService(Deps{
		Store:    st,
		Chain:    tier.Default(),
		Users:    users,
		Notifier: f.notifier,
		Log:      zerolog.Nop(),
	})
}

var editor = models.Actor{UID: "u1", Email: "editor@example.com", Role: "superadmin"}

func ns(t *testing.T, name string) tier.Namespace {
	t.Helper()
	if name == tier.PublishedName {
		return tier.Default().Published()
	}
	tr, _, err := tier.Default().Lookup(name)
	if err != nil {
		t.Fatalf("lookup %s: %v", name, err)
	}
	return tr.Namespace()
}
