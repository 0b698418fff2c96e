package booking

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPromoCode is returned when a promo code matches no offer.
var ErrInvalidPromoCode = errors.New("this promo code is not valid")

// ErrUnknownStep is returned for an unrecognized wizard step name.
var ErrUnknownStep = errors.New("unknown booking step")

// GuardError reports a wizard step entered before its preconditions were
// met. Redirect names the view the client should be sent to instead.
type GuardError struct {
	Step     Step
	Missing  []string
	Redirect string
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("cannot enter step %q: missing %s", e.Step, strings.Join(e.Missing, ", "))
}

// AsGuardError unwraps err into a GuardError if it is one.
func AsGuardError(err error) (*GuardError, bool) {
	var ge *GuardError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}
