// database/repository/user.go
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"luxebeauty/models"

	"github.com/go-redis/redis/v8"
)

// UserSnapshotKey is the fixed key holding the serialized user snapshot.
const UserSnapshotKey = "luxe_user"

// UserRepository owns the persisted user snapshot.
type UserRepository interface {
	Get(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}

// RedisUserRepo implements UserRepository with whole-snapshot overwrite.
type RedisUserRepo struct {
	Client *redis.Client
}

func NewRedisUserRepo(client *redis.Client) *RedisUserRepo {
	return &RedisUserRepo{Client: client}
}

// Get loads the user snapshot, defaulting when no snapshot exists. A stored
// value that fails to parse is reported as an error, never silently reset.
func (r *RedisUserRepo) Get(ctx context.Context) (*models.User, error) {
	data, err := r.Client.Get(ctx, UserSnapshotKey).Result()
	if err == redis.Nil {
		user := models.DefaultUser()
		return &user, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user snapshot: %w", err)
	}
	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("failed to parse user snapshot: %w", err)
	}
	return &user, nil
}

// Save overwrites the whole user snapshot.
func (r *RedisUserRepo) Save(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user snapshot: %w", err)
	}
	if err := r.Client.Set(ctx, UserSnapshotKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to persist user snapshot: %w", err)
	}
	return nil
}
