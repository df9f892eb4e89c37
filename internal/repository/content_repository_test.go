package repository

import (
	"context"
	"os"
	"testing"

	"contentflow/database"
	"contentflow/internal/models"
	"contentflow/internal/tier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// newMongoStore connects to MONGO_URI and returns a store over a throwaway
// database that is dropped when the test ends.
func newMongoStore(t *testing.T) *MongoStore {
	t.Helper()
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}

	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, uri)
	require.NoError(t, err)

	db := client.Database("contentflow_test_" + bson.NewObjectID().Hex())
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return NewMongoStore(client, db, false)
}

func TestMongoSaveKeepsSingleton(t *testing.T) {
	s := newMongoStore(t)
	ctx := context.Background()
	admin := tier.Default().Tiers[0].Namespace()

	first, err := s.Save(ctx, admin, &models.GalleryDoc{GalleryImages: []string{"a.png"}})
	require.NoError(t, err)
	require.False(t, first.DocID().IsZero())

	// A document carrying a foreign id still replaces the singleton in place.
	second, err := s.Save(ctx, admin, &models.GalleryDoc{ID: bson.NewObjectID(), GalleryImages: []string{"b.png"}})
	require.NoError(t, err)
	assert.Equal(t, first.DocID(), second.DocID())

	n, err := s.db.Collection("admin_gallery").CountDocuments(ctx, bson.D{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := s.Find(ctx, admin, models.KindGallery)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.png"}, got.(*models.GalleryDoc).GalleryImages)
}

func TestMongoEmptySliceIsStoredAsArray(t *testing.T) {
	s := newMongoStore(t)
	ctx := context.Background()
	pub := tier.Default().Published()

	_, err := s.Save(ctx, pub, &models.BannerDoc{})
	require.NoError(t, err)

	var raw bson.M
	require.NoError(t, s.db.Collection("banner").FindOne(ctx, bson.D{}).Decode(&raw))
	assert.NotNil(t, raw["images"])
}

func TestMongoNewsAppendAndPull(t *testing.T) {
	s := newMongoStore(t)
	ctx := context.Background()
	lead := tier.Default().Tiers[1].Namespace()

	a, b := bson.NewObjectID(), bson.NewObjectID()
	_, err := s.AppendNews(ctx, lead, []models.NewsItem{{ID: a, Title: "A"}})
	require.NoError(t, err)
	doc, err := s.AppendNews(ctx, lead, []models.NewsItem{{ID: b, Title: "B", Year: 2024}})
	require.NoError(t, err)
	require.Len(t, doc.NewsItems, 2)
	assert.Equal(t, "A", doc.NewsItems[0].Title)

	removed, err := s.PullNews(ctx, lead, a)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.PullNews(ctx, lead, a)
	require.NoError(t, err)
	assert.False(t, removed)

	got, err := s.Find(ctx, lead, models.KindNews)
	require.NoError(t, err)
	require.Len(t, got.(*models.NewsDoc).NewsItems, 1)
	assert.Equal(t, b, got.(*models.NewsDoc).NewsItems[0].ID)
}

func TestMongoFindMissingAndDelete(t *testing.T) {
	s := newMongoStore(t)
	ctx := context.Background()
	super := tier.Default().Tiers[2].Namespace()

	doc, err := s.Find(ctx, super, models.KindToggle)
	require.NoError(t, err)
	assert.Nil(t, doc)

	_, err = s.Save(ctx, super, &models.ToggleDoc{IsActive: true})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, super, models.KindToggle))

	c, err := s.Load(ctx, super)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
}
