package user

import (
	"context"
	"testing"

	"luxebeauty/database/repository"
	"luxebeauty/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(t *testing.T) *DefaultUserService {
	t.Helper()
	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	return &DefaultUserService{
		Repo:          repository.NewRedisUserRepo(client),
		BookingRepo:   repository.NewRedisBookingRepo(client),
		FavoritesRepo: repository.NewRedisFavoritesRepo(client),
		Auth:          NewStubAuthProvider(0),
	}
}

func TestLogin(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, "priya@example.com", "whatever")
	require.NoError(t, err)
	assert.True(t, resp.User.IsLoggedIn)
	assert.Equal(t, "priya@example.com", resp.User.Email)
	// display name is the email local part
	assert.Equal(t, "priya", resp.User.Name)
	assert.NotEmpty(t, resp.Token)
}

func TestSignup(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	resp, err := svc.Signup(ctx, "Priya Sharma", "priya@example.com", "irrelevant")
	require.NoError(t, err)
	assert.True(t, resp.User.IsLoggedIn)
	assert.Equal(t, "Priya Sharma", resp.User.Name)
}

func TestLogoutPreservesGatesAndLocation(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "priya@example.com", "pw")
	require.NoError(t, err)
	_, err = svc.CompleteSplash(ctx)
	require.NoError(t, err)
	_, err = svc.CompleteOnboarding(ctx)
	require.NoError(t, err)
	_, err = svc.CompleteLocationDetection(ctx, "Delhi")
	require.NoError(t, err)

	userRec, err := svc.Logout(ctx)
	require.NoError(t, err)

	assert.False(t, userRec.IsLoggedIn)
	assert.Empty(t, userRec.Name)
	assert.Empty(t, userRec.Email)
	assert.True(t, userRec.HasSeenSplash)
	assert.True(t, userRec.HasSeenOnboarding)
	assert.True(t, userRec.HasDetectedLocation)
	assert.Equal(t, "Delhi", userRec.Location)
}

func TestUpdateUserShallowMerge(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, "priya@example.com", "pw")
	require.NoError(t, err)

	phone := "9876543210"
	userRec, err := svc.UpdateUser(ctx, models.UserUpdate{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "9876543210", userRec.Phone)
	// untouched fields survive the merge
	assert.Equal(t, "priya@example.com", userRec.Email)
}

func TestToggleFavoriteIdempotentUnderDoubleToggle(t *testing.T) {
	svc := newTestUserService(t)
	ctx := context.Background()

	before, err := svc.Favorites(ctx)
	require.NoError(t, err)

	_, err = svc.ToggleFavorite(ctx, "4")
	require.NoError(t, err)
	after, err := svc.ToggleFavorite(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
