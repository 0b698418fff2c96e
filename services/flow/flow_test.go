package flow

import (
	"testing"

	"luxebeauty/models"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		user models.User
		want Stage
	}{
		{"FreshUserSeesSplash", models.User{}, StageSplash},
		{"SplashDoneWaitsOnLocation", models.User{HasSeenSplash: true}, StageLocation},
		{"LocationDoneWaitsOnOnboarding", models.User{HasSeenSplash: true, HasDetectedLocation: true}, StageOnboarding},
		{"AllGatesPassedReachMain", models.User{HasSeenSplash: true, HasDetectedLocation: true, HasSeenOnboarding: true}, StageMain},
		// onboarding alone is not enough: gates are ordered
		{"OnboardingWithoutSplashStillSplash", models.User{HasSeenOnboarding: true}, StageSplash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.user))
		})
	}
}
