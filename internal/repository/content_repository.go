package repository

import (
	"context"
	"errors"
	"time"

	"contentflow/internal/models"
	"contentflow/internal/tier"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const opTimeout = 5 * time.Second

// MongoStore keeps each namespace kind in its own collection, e.g. admin_gallery.
type MongoStore struct {
	client       *mongo.Client
	db           *mongo.Database
	transactions bool
}

// NewMongoStore wraps db. With transactions set, Transact runs inside a
// session transaction, which needs a replica set.
func NewMongoStore(client *mongo.Client, db *mongo.Database, transactions bool) *MongoStore {
	return &MongoStore{client: client, db: db, transactions: transactions}
}

func (s *MongoStore) col(ns tier.Namespace, kind models.Kind) *mongo.Collection {
	return s.db.Collection(collectionName(ns, kind))
}

func (s *MongoStore) Find(ctx context.Context, ns tier.Namespace, kind models.Kind) (models.Document, error) {
	doc, err := newDocument(kind)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	err = s.col(ns, kind).FindOne(ctx, bson.D{}).Decode(doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *MongoStore) Load(ctx context.Context, ns tier.Namespace) (models.Content, error) {
	return loadAll(ctx, s, ns)
}

func (s *MongoStore) Save(ctx context.Context, ns tier.Namespace, doc models.Document) (models.Document, error) {
	out, err := newDocument(doc.Kind())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// _id is omitted from the replacement so the existing singleton keeps its id
	// and an upsert gets a fresh one.
	repl := withID(doc, bson.NilObjectID)
	opts := options.FindOneAndReplace().
		SetUpsert(true).
		SetReturnDocument(options.After)
	if err := s.col(ns, doc.Kind()).FindOneAndReplace(ctx, bson.D{}, repl, opts).Decode(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStore) Delete(ctx context.Context, ns tier.Namespace, kind models.Kind) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.col(ns, kind).DeleteMany(ctx, bson.D{})
	return err
}

func (s *MongoStore) AppendNews(ctx context.Context, ns tier.Namespace, items []models.NewsItem) (*models.NewsDoc, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	update := bson.M{"$push": bson.M{"newsItems": bson.M{"$each": items}}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var out models.NewsDoc
	if err := s.col(ns, models.KindNews).FindOneAndUpdate(ctx, bson.D{}, update, opts).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MongoStore) PullNews(ctx context.Context, ns tier.Namespace, id bson.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := s.col(ns, models.KindNews).UpdateOne(ctx, bson.D{},
		bson.M{"$pull": bson.M{"newsItems": bson.M{"_id": id}}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (s *MongoStore) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	if !s.transactions {
		return fn(ctx)
	}

	sess, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(tx context.Context) (any, error) {
		return nil, fn(tx)
	})
	return err
}

func (s *MongoStore) Transactional() bool { return s.transactions }
