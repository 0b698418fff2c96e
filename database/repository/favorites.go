// database/repository/favorites.go
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// FavoritesSnapshotKey is the fixed key holding the serialized favorites set.
const FavoritesSnapshotKey = "luxe_favorites"

// FavoritesRepository owns the persisted set of favorite service IDs.
type FavoritesRepository interface {
	List(ctx context.Context) ([]string, error)
	Toggle(ctx context.Context, serviceID string) ([]string, error)
}

// RedisFavoritesRepo implements FavoritesRepository with whole-snapshot overwrite.
type RedisFavoritesRepo struct {
	Client *redis.Client
}

func NewRedisFavoritesRepo(client *redis.Client) *RedisFavoritesRepo {
	return &RedisFavoritesRepo{Client: client}
}

// List loads the favorites snapshot, defaulting to empty when absent.
func (r *RedisFavoritesRepo) List(ctx context.Context) ([]string, error) {
	data, err := r.Client.Get(ctx, FavoritesSnapshotKey).Result()
	if err == redis.Nil {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites snapshot: %w", err)
	}
	var favorites []string
	if err := json.Unmarshal([]byte(data), &favorites); err != nil {
		return nil, fmt.Errorf("failed to parse favorites snapshot: %w", err)
	}
	return favorites, nil
}

// Toggle symmetrically flips membership of the service ID and rewrites the
// whole set. Toggling twice restores the original set.
func (r *RedisFavoritesRepo) Toggle(ctx context.Context, serviceID string) ([]string, error) {
	favorites, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]string, 0, len(favorites)+1)
	removed := false
	for _, id := range favorites {
		if id == serviceID {
			removed = true
			continue
		}
		updated = append(updated, id)
	}
	if !removed {
		updated = append(updated, serviceID)
	}

	data, err := json.Marshal(updated)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal favorites snapshot: %w", err)
	}
	if err := r.Client.Set(ctx, FavoritesSnapshotKey, data, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to persist favorites snapshot: %w", err)
	}
	return updated, nil
}
