package models

// Booking statuses. New bookings always start as upcoming; nothing in the
// system advances them afterwards.
const (
	BookingStatusUpcoming  = "upcoming"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a confirmed booking record. The list is persisted
// most-recent-first as a whole snapshot.
type Booking struct {
	ID        string `json:"id"` // Unix-millisecond timestamp at creation
	ServiceID string `json:"serviceId"`
	ArtistID  string `json:"artistId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Status    string `json:"status"`
	Total     int    `json:"total"`
}

// BookingDraft is the in-progress booking selection accumulated across the
// wizard steps. There is exactly one draft; it is reset after a booking is
// confirmed. Discount is non-zero only while PromoCode names an offer that
// validated at apply time.
type BookingDraft struct {
	ServiceID string `json:"serviceId"`
	ArtistID  string `json:"artistId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	PromoCode string `json:"promoCode"`
	Discount  int    `json:"discount"`
}

// IsEmpty reports whether the draft equals the default empty draft.
func (d BookingDraft) IsEmpty() bool {
	return d == BookingDraft{}
}

// DraftUpdate is a partial draft update; nil fields are left untouched.
// The controller only merges; step preconditions are checked separately
// when a wizard step is entered.
type DraftUpdate struct {
	ServiceID *string `json:"serviceId,omitempty"`
	ArtistID  *string `json:"artistId,omitempty"`
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
}

// ApplyTo shallow-merges the update into the draft. Changing the service
// deliberately does not clear a previously picked artist, date, or time.
func (u DraftUpdate) ApplyTo(dst *BookingDraft) {
	if u.ServiceID != nil {
		dst.ServiceID = *u.ServiceID
	}
	if u.ArtistID != nil {
		dst.ArtistID = *u.ArtistID
	}
	if u.Date != nil {
		dst.Date = *u.Date
	}
	if u.Time != nil {
		dst.Time = *u.Time
	}
}

// Quote is the price breakdown for the current draft.
type Quote struct {
	Subtotal int `json:"subtotal"`
	Tax      int `json:"tax"`
	Discount int `json:"discount"`
	Total    int `json:"total"`
}
