package repository

import (
	"context"
	"sync"

	"contentflow/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// UserDirectory resolves notification recipients.
type UserDirectory interface {
	EmailsByRole(ctx context.Context, role string) ([]string, error)
}

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

func (r *UserRepository) EmailsByRole(ctx context.Context, role string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"role": role},
		options.Find().SetProjection(bson.D{{Key: "email", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return emails(users), nil
}

// MemoryUsers is an in-process directory.
type MemoryUsers struct {
	mu    sync.RWMutex
	users []models.User
}

func NewMemoryUsers(users ...models.User) *MemoryUsers {
	return &MemoryUsers{users: users}
}

func (m *MemoryUsers) Add(u models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = append(m.users, u)
}

func (m *MemoryUsers) EmailsByRole(_ context.Context, role string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []models.User
	for _, u := range m.users {
		if u.Role == role {
			matched = append(matched, u)
		}
	}
	return emails(matched), nil
}

func emails(users []models.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		if u.Email != "" {
			out = append(out, u.Email)
		}
	}
	return out
}
