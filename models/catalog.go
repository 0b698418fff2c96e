package models

// Service is a bookable beauty service from the static catalog.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Duration    int     `json:"duration"` // minutes
	Price       int     `json:"price"`    // whole currency units (INR)
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Popular     bool    `json:"popular,omitempty"`
}

// Artist is a makeup artist from the static catalog.
type Artist struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Speciality string  `json:"speciality"`
	Rating     float64 `json:"rating"`
	Reviews    int     `json:"reviews"`
	Experience int     `json:"experience"` // years
	Image      string  `json:"image"`
	Location   string  `json:"location"`
	Available  bool    `json:"available"`
}

// DiscountKind tags how an offer's discount value is interpreted.
type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountAbsolute   DiscountKind = "absolute"
)

// Offer is a promotional offer redeemable by code.
// ValidUntil and MinOrder are informational only; redemption does not
// check them (see ApplyPromo in services/booking).
type Offer struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Code        string       `json:"code"`
	Discount    int          `json:"discount"`
	Kind        DiscountKind `json:"kind"`
	ValidUntil  string       `json:"validUntil"`
	MinOrder    int          `json:"minOrder,omitempty"`
}

// DiscountOn returns the discount amount for the given subtotal.
// Percentage offers are recomputed against the subtotal at apply time;
// absolute offers yield a fixed amount regardless of subtotal.
func (o Offer) DiscountOn(subtotal int) int {
	if o.Kind == DiscountAbsolute {
		return o.Discount
	}
	return roundHalfUp(float64(subtotal) * float64(o.Discount) / 100)
}

func roundHalfUp(v float64) int {
	return int(v + 0.5)
}

// Subscription is a membership plan from the static catalog.
type Subscription struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    int      `json:"price"`
	Period   string   `json:"period"` // "monthly" or "yearly"
	Features []string `json:"features"`
	Popular  bool     `json:"popular,omitempty"`
}

// Category groups services for catalog filtering.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
