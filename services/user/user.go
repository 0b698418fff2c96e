package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"luxebeauty/models"
	"luxebeauty/utils"

	"go.uber.org/zap"
)

const sessionTokenTTL = 72 * time.Hour

// Get returns the current user snapshot.
func (s *DefaultUserService) Get(ctx context.Context) (*models.User, error) {
	return s.Repo.Get(ctx)
}

// UpdateUser shallow-merges the partial update into the snapshot and
// persists it. Email and phone formats are not validated.
func (s *DefaultUserService) UpdateUser(ctx context.Context, update models.UserUpdate) (*models.User, error) {
	userRec, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	update.ApplyTo(userRec)
	if err := s.Repo.Save(ctx, userRec); err != nil {
		return nil, err
	}
	return userRec, nil
}

// Login authenticates through the pluggable provider, marks the snapshot
// logged in, and derives the display name from the email local part.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if err := s.Auth.Login(ctx, email, password); err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	userRec, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	userRec.IsLoggedIn = true
	userRec.Email = email
	userRec.Name = strings.SplitN(email, "@", 2)[0]
	if err := s.Repo.Save(ctx, userRec); err != nil {
		return nil, err
	}

	return s.authResponse(userRec)
}

// Signup registers through the pluggable provider and marks the snapshot
// logged in with the given name.
func (s *DefaultUserService) Signup(ctx context.Context, name, email, password string) (*AuthResponse, error) {
	if err := s.Auth.Signup(ctx, name, email, password); err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}

	userRec, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	userRec.IsLoggedIn = true
	userRec.Name = name
	userRec.Email = email
	if err := s.Repo.Save(ctx, userRec); err != nil {
		return nil, err
	}

	return s.authResponse(userRec)
}

func (s *DefaultUserService) authResponse(userRec *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(userRec.Email, userRec.Email, sessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	return &AuthResponse{User: *userRec, Token: token}, nil
}

// Logout resets the snapshot to defaults but keeps the one-way gate flags
// and the detected location, so a returning user is not walked through
// splash, location detection, or onboarding again.
func (s *DefaultUserService) Logout(ctx context.Context) (*models.User, error) {
	userRec, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	reset := models.DefaultUser()
	reset.HasSeenOnboarding = userRec.HasSeenOnboarding
	reset.HasSeenSplash = userRec.HasSeenSplash
	reset.HasDetectedLocation = userRec.HasDetectedLocation
	reset.Location = userRec.Location

	if err := s.Repo.Save(ctx, &reset); err != nil {
		return nil, err
	}
	zap.L().Info("user logged out", zap.String("email", userRec.Email))
	return &reset, nil
}

// Favorites returns the persisted favorites set.
func (s *DefaultUserService) Favorites(ctx context.Context) ([]string, error) {
	return s.FavoritesRepo.List(ctx)
}

// ToggleFavorite symmetrically toggles the service's membership.
func (s *DefaultUserService) ToggleFavorite(ctx context.Context, serviceID string) ([]string, error) {
	return s.FavoritesRepo.Toggle(ctx, serviceID)
}

// Bookings returns the persisted booking history, most recent first.
func (s *DefaultUserService) Bookings(ctx context.Context) ([]models.Booking, error) {
	return s.BookingRepo.List(ctx)
}

// CompleteSplash sets the one-way splash gate.
func (s *DefaultUserService) CompleteSplash(ctx context.Context) (*models.User, error) {
	return s.setGate(ctx, func(u *models.User) { u.HasSeenSplash = true })
}

// CompleteOnboarding sets the one-way onboarding gate.
func (s *DefaultUserService) CompleteOnboarding(ctx context.Context) (*models.User, error) {
	return s.setGate(ctx, func(u *models.User) { u.HasSeenOnboarding = true })
}

// CompleteLocationDetection sets the one-way location gate and records the
// resolved city.
func (s *DefaultUserService) CompleteLocationDetection(ctx context.Context, city string) (*models.User, error) {
	return s.setGate(ctx, func(u *models.User) {
		u.HasDetectedLocation = true
		u.Location = city
	})
}

func (s *DefaultUserService) setGate(ctx context.Context, apply func(*models.User)) (*models.User, error) {
	userRec, err := s.Repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	apply(userRec)
	if err := s.Repo.Save(ctx, userRec); err != nil {
		return nil, err
	}
	return userRec, nil
}
