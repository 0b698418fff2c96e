// database/repository/booking.go
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"luxebeauty/models"

	"github.com/go-redis/redis/v8"
)

// BookingSnapshotKey is the fixed key holding the serialized booking list.
const BookingSnapshotKey = "luxe_bookings"

// BookingRepository owns the persisted booking list, most-recent-first.
type BookingRepository interface {
	List(ctx context.Context) ([]models.Booking, error)
	Add(ctx context.Context, booking models.Booking) error
}

// RedisBookingRepo implements BookingRepository with whole-snapshot overwrite.
type RedisBookingRepo struct {
	Client *redis.Client
}

func NewRedisBookingRepo(client *redis.Client) *RedisBookingRepo {
	return &RedisBookingRepo{Client: client}
}

// List loads the booking list snapshot, defaulting to empty when absent.
func (r *RedisBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	data, err := r.Client.Get(ctx, BookingSnapshotKey).Result()
	if err == redis.Nil {
		return []models.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking snapshot: %w", err)
	}
	var bookings []models.Booking
	if err := json.Unmarshal([]byte(data), &bookings); err != nil {
		return nil, fmt.Errorf("failed to parse booking snapshot: %w", err)
	}
	return bookings, nil
}

// Add prepends the booking and rewrites the whole list. Duplicate IDs are
// not checked.
func (r *RedisBookingRepo) Add(ctx context.Context, booking models.Booking) error {
	bookings, err := r.List(ctx)
	if err != nil {
		return err
	}
	bookings = append([]models.Booking{booking}, bookings...)
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to marshal booking snapshot: %w", err)
	}
	if err := r.Client.Set(ctx, BookingSnapshotKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to persist booking snapshot: %w", err)
	}
	return nil
}
