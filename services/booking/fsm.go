package booking

import "luxebeauty/models"

// Step is a named state of the booking wizard.
type Step string

const (
	StepCatalogSelect  Step = "catalog"
	StepArtistSelect   Step = "artist"
	StepDateTimeSelect Step = "datetime"
	StepReview         Step = "review"
	StepPayment        Step = "payment"
	StepComplete       Step = "complete"
)

// CatalogRedirect is where the client is sent when a step guard rejects.
const CatalogRedirect = "/services"

// ParseStep maps a step name from the request path to a Step.
func ParseStep(name string) (Step, error) {
	switch Step(name) {
	case StepCatalogSelect, StepArtistSelect, StepDateTimeSelect, StepReview, StepPayment:
		return Step(name), nil
	default:
		return "", ErrUnknownStep
	}
}

// CheckEntry validates the step's declared preconditions against the draft.
// Preconditions only gate entry; a draft may still be mutated backward, and
// later fields are not re-validated against earlier changes.
func CheckEntry(step Step, d models.BookingDraft) error {
	var missing []string

	switch step {
	case StepCatalogSelect:
		return nil
	case StepArtistSelect, StepPayment:
		if d.ServiceID == "" {
			missing = append(missing, "service")
		}
	case StepDateTimeSelect:
		if d.ServiceID == "" {
			missing = append(missing, "service")
		}
		if d.ArtistID == "" {
			missing = append(missing, "artist")
		}
	case StepReview:
		if d.ServiceID == "" {
			missing = append(missing, "service")
		}
		if d.ArtistID == "" {
			missing = append(missing, "artist")
		}
		if d.Date == "" {
			missing = append(missing, "date")
		}
		if d.Time == "" {
			missing = append(missing, "time")
		}
	default:
		return ErrUnknownStep
	}

	if len(missing) > 0 {
		return &GuardError{Step: step, Missing: missing, Redirect: CatalogRedirect}
	}
	return nil
}
