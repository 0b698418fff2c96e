// Package flow evaluates which top-level screen a client should show. It is
// not a router: just an ordered gate check over the user snapshot's one-way
// flags, re-evaluated on every request.
package flow

import "luxebeauty/models"

// Stage is the top-level screen the client should currently present.
type Stage string

const (
	StageSplash     Stage = "splash"
	StageLocation   Stage = "location"
	StageOnboarding Stage = "onboarding"
	StageMain       Stage = "main"
)

// Evaluate walks the gates in order. Each gate is one-way: once its flag is
// set it never resets except through logout policy, which preserves them.
func Evaluate(u models.User) Stage {
	switch {
	case !u.HasSeenSplash:
		return StageSplash
	case !u.HasDetectedLocation:
		return StageLocation
	case !u.HasSeenOnboarding:
		return StageOnboarding
	default:
		return StageMain
	}
}
