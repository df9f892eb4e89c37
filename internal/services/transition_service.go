package services

import (
	"context"
	"errors"
	"fmt"

	"contentflow/internal/models"
	"contentflow/internal/tier"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const rejectSubject = "Content Rejected"

// TransitionResult describes a completed forward, reject or restore.
type TransitionResult struct {
	OperationID string   `json:"operationId"`
	Action      string   `json:"action"`
	Source      string   `json:"source"`
	Destination string   `json:"destination,omitempty"`
	Notified    []string `json:"notified,omitempty"`
	// NotifyError is set when the rejection mail could not be sent. The
	// rejection itself still happened.
	NotifyError string `json:"notifyError,omitempty"`
}

// Forward promotes the tier's content to the next namespace in the chain using
// the tier's forward policy.
func (s *ContentService) Forward(ctx context.Context, name string, actor models.Actor) (TransitionResult, error) {
	t, _, err := s.chain.Lookup(name)
	if err != nil {
		return TransitionResult{}, err
	}
	dst, err := s.chain.Destination(name)
	if err != nil {
		return TransitionResult{}, err
	}
	src := t.Namespace()
	res := TransitionResult{OperationID: uuid.NewString(), Action: "forward", Source: src.Name, Destination: dst.Name}

	unlock := s.lock(src, dst)
	defer unlock()

	touched := []tier.Namespace{dst}
	if t.Forward.ClearSource {
		touched = append(touched, src)
	}

	err = s.unitOfWork(ctx, res, touched, func(ctx context.Context) error {
		content, err := s.store.Load(ctx, src)
		if err != nil {
			return err
		}
		for _, k := range models.Kinds {
			if err := s.forwardKind(ctx, t.Forward.Mode, dst, k, content.Get(k)); err != nil {
				return fmt.Errorf("forward %s: %w", k, err)
			}
		}
		if t.Forward.ClearSource {
			return s.clear(ctx, src)
		}
		return nil
	})
	if err != nil {
		return res, err
	}

	s.log.Info().
		Str("op", res.OperationID).
		Str("source", src.Name).
		Str("destination", dst.Name).
		Str("mode", string(t.Forward.Mode)).
		Bool("clearSource", t.Forward.ClearSource).
		Str("performedBy", actor.Label()).
		Msg("content forwarded")
	return res, nil
}

func (s *ContentService) forwardKind(ctx context.Context, mode tier.ForwardMode, dst tier.Namespace, k models.Kind, doc models.Document) error {
	if mode == tier.ModeReplace {
		if err := s.store.Delete(ctx, dst, k); err != nil {
			return err
		}
		if doc == nil {
			return nil
		}
		_, err := s.store.Save(ctx, dst, doc)
		return err
	}

	if doc == nil {
		return nil
	}
	cur, err := s.store.Find(ctx, dst, k)
	if err != nil {
		return err
	}
	_, err = s.store.Save(ctx, dst, merge(cur, doc))
	return err
}

// merge folds src into cur without dropping anything already in cur. Images
// are unioned in order, news items are appended under fresh ids and the toggle
// takes the incoming value.
func merge(cur, src models.Document) models.Document {
	if cur == nil {
		if news, ok := src.(*models.NewsDoc); ok {
			return &models.NewsDoc{NewsItems: reissue(news.NewsItems)}
		}
		return src
	}
	switch c := cur.(type) {
	case *models.GalleryDoc:
		return &models.GalleryDoc{GalleryImages: union(c.GalleryImages, src.(*models.GalleryDoc).GalleryImages)}
	case *models.BannerDoc:
		return &models.BannerDoc{Images: union(c.Images, src.(*models.BannerDoc).Images)}
	case *models.NewsDoc:
		items := append(append([]models.NewsItem{}, c.NewsItems...), reissue(src.(*models.NewsDoc).NewsItems)...)
		return &models.NewsDoc{NewsItems: items}
	}
	return src
}

func union(a, b []string) []string {
	out := append([]string{}, a...)
	seen := make(map[string]bool, len(a))
	for _, v := range a {
		seen[v] = true
	}
	for _, v := range b {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func reissue(items []models.NewsItem) []models.NewsItem {
	out := make([]models.NewsItem, len(items))
	for i, it := range items {
		it.ID = bson.NewObjectID()
		out[i] = it
	}
	return out
}

// Reject discards the tier's content and mails the configured role. Mail and
// directory failures are logged and never stop the deletion.
func (s *ContentService) Reject(ctx context.Context, name string, actor models.Actor) (TransitionResult, error) {
	t, _, err := s.chain.Lookup(name)
	if err != nil {
		return TransitionResult{}, err
	}
	if !t.Reject.Enabled {
		return TransitionResult{}, fmt.Errorf("%w: reject on %s", tier.ErrTransitionDisabled, name)
	}
	ns := t.Namespace()
	res := TransitionResult{OperationID: uuid.NewString(), Action: "reject", Source: ns.Name}

	unlock := s.lock(ns)
	defer unlock()

	prev, err := s.store.Load(ctx, ns)
	if err != nil {
		return res, err
	}

	res.Notified, err = s.notifyRejection(ctx, t, prev)
	if err != nil {
		res.NotifyError = err.Error()
		s.log.Warn().Err(err).Str("op", res.OperationID).Str("tier", ns.Name).Msg("rejection notice not sent")
	}

	if err := s.unitOfWork(ctx, res, []tier.Namespace{ns}, func(ctx context.Context) error {
		return s.clear(ctx, ns)
	}); err != nil {
		return res, err
	}

	s.log.Info().
		Str("op", res.OperationID).
		Str("tier", ns.Name).
		Strs("notified", res.Notified).
		Str("performedBy", actor.Label()).
		RawJSON("previousContent", mustJSON(summarize(prev))).
		Msg("content rejected")
	return res, nil
}

func (s *ContentService) notifyRejection(ctx context.Context, t tier.Tier, prev models.Content) ([]string, error) {
	if t.Reject.NotifyRole == "" {
		return nil, nil
	}
	emails, err := s.users.EmailsByRole(ctx, t.Reject.NotifyRole)
	if err != nil {
		return nil, fmt.Errorf("resolve %s recipients: %w", t.Reject.NotifyRole, err)
	}
	if len(emails) == 0 {
		return nil, nil
	}
	if err := s.notifier.SendToMultiple(ctx, emails, rejectSubject, RejectionText(t.Name, prev)); err != nil {
		return nil, fmt.Errorf("send rejection notice: %w", err)
	}
	return emails, nil
}

type contentSummary struct {
	News    []models.NewsItem `json:"news"`
	Gallery []string          `json:"gallery"`
	Toggle  bool              `json:"toggle"`
	Banner  []string          `json:"banner"`
}

func summarize(c models.Content) contentSummary {
	sum := contentSummary{News: []models.NewsItem{}, Gallery: []string{}, Banner: []string{}}
	if c.News != nil && c.News.NewsItems != nil {
		sum.News = c.News.NewsItems
	}
	if c.Gallery != nil && c.Gallery.GalleryImages != nil {
		sum.Gallery = c.Gallery.GalleryImages
	}
	if c.Toggle != nil {
		sum.Toggle = c.Toggle.IsActive
	}
	if c.Banner != nil && c.Banner.Images != nil {
		sum.Banner = c.Banner.Images
	}
	return sum
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		return []byte("null")
	}
	return b
}

// RejectionText is the plain-text body of the rejection mail.
func RejectionText(tierName string, prev models.Content) string {
	sum := summarize(prev)
	return fmt.Sprintf("%s content rejected and cleared.\n\nPrevious content:\nNews: %s\nGallery: %s\nToggle: %t\nBanner: %s",
		tierName,
		mustJSON(sum.News),
		mustJSON(sum.Gallery),
		sum.Toggle,
		mustJSON(sum.Banner),
	)
}

// Restore replaces the tier's content with the published set.
func (s *ContentService) Restore(ctx context.Context, name string, actor models.Actor) (TransitionResult, error) {
	t, _, err := s.chain.Lookup(name)
	if err != nil {
		return TransitionResult{}, err
	}
	if !t.Restore {
		return TransitionResult{}, fmt.Errorf("%w: restore on %s", tier.ErrTransitionDisabled, name)
	}
	ns, pub := t.Namespace(), s.chain.Published()
	res := TransitionResult{OperationID: uuid.NewString(), Action: "restore", Source: pub.Name, Destination: ns.Name}

	unlock := s.lock(ns, pub)
	defer unlock()

	err = s.unitOfWork(ctx, res, []tier.Namespace{ns}, func(ctx context.Context) error {
		published, err := s.store.Load(ctx, pub)
		if err != nil {
			return err
		}
		return s.replace(ctx, ns, published)
	})
	if err != nil {
		return res, err
	}

	s.log.Info().
		Str("op", res.OperationID).
		Str("tier", ns.Name).
		Str("performedBy", actor.Label()).
		Msg("content restored from published")
	return res, nil
}

func (s *ContentService) clear(ctx context.Context, ns tier.Namespace) error {
	for _, k := range models.Kinds {
		if err := s.store.Delete(ctx, ns, k); err != nil {
			return fmt.Errorf("clear %s%s: %w", ns.Prefix, k, err)
		}
	}
	return nil
}

// replace makes ns hold exactly c, kind by kind.
func (s *ContentService) replace(ctx context.Context, ns tier.Namespace, c models.Content) error {
	for _, k := range models.Kinds {
		if err := s.store.Delete(ctx, ns, k); err != nil {
			return fmt.Errorf("delete %s%s: %w", ns.Prefix, k, err)
		}
		if doc := c.Get(k); doc != nil {
			if _, err := s.store.Save(ctx, ns, doc); err != nil {
				return fmt.Errorf("insert %s%s: %w", ns.Prefix, k, err)
			}
		}
	}
	return nil
}

// unitOfWork snapshots every namespace fn may touch, then runs fn through the
// store. When the store cannot roll back itself, a failed fn is compensated by
// writing the snapshots back.
func (s *ContentService) unitOfWork(ctx context.Context, res TransitionResult, touched []tier.Namespace, fn func(ctx context.Context) error) error {
	snapshots := make([]models.Content, len(touched))
	if !s.store.Transactional() {
		for i, ns := range touched {
			c, err := s.store.Load(ctx, ns)
			if err != nil {
				return fmt.Errorf("snapshot %s: %w", ns.Name, err)
			}
			snapshots[i] = c
		}
	}

	err := s.store.Transact(ctx, fn)
	if err == nil || s.store.Transactional() {
		return err
	}

	// Compensation must run even if the request context is already gone.
	cctx := context.WithoutCancel(ctx)
	errs := []error{err}
	for i, ns := range touched {
		if cerr := s.replace(cctx, ns, snapshots[i]); cerr != nil {
			errs = append(errs, fmt.Errorf("compensate %s: %w", ns.Name, cerr))
		}
	}
	ev := s.log.Error().Err(err).Str("op", res.OperationID).Str("action", res.Action)
	if len(errs) > 1 {
		ev.Bool("compensated", false).Msg("transition failed and could not be undone")
	} else {
		ev.Bool("compensated", true).Msg("transition failed and was undone")
	}
	return errors.Join(errs...)
}
