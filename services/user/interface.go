package user

import (
	"context"

	"luxebeauty/database/repository"
	"luxebeauty/models"
)

// UserService manages the persisted user snapshot, the booking history, the
// favorites set, and the onboarding gates.
type UserService interface {
	Get(ctx context.Context) (*models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (*models.User, error)

	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	Signup(ctx context.Context, name, email, password string) (*AuthResponse, error)
	Logout(ctx context.Context) (*models.User, error)

	Favorites(ctx context.Context) ([]string, error)
	ToggleFavorite(ctx context.Context, serviceID string) ([]string, error)
	Bookings(ctx context.Context) ([]models.Booking, error)

	CompleteSplash(ctx context.Context) (*models.User, error)
	CompleteOnboarding(ctx context.Context) (*models.User, error)
	CompleteLocationDetection(ctx context.Context, city string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo          repository.UserRepository
	BookingRepo   repository.BookingRepository
	FavoritesRepo repository.FavoritesRepository
	Auth          AuthProvider
}

// AuthResponse carries the refreshed snapshot and the session token issued
// after a successful login or signup.
type AuthResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}
