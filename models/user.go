package models

// User is the whole persisted user snapshot. Every mutation rewrites the
// full snapshot under a single key.
type User struct {
	IsLoggedIn          bool   `json:"isLoggedIn"`
	HasSeenOnboarding   bool   `json:"hasSeenOnboarding"`
	HasSeenSplash       bool   `json:"hasSeenSplash"`
	HasDetectedLocation bool   `json:"hasDetectedLocation"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Location            string `json:"location"`
	Avatar              string `json:"avatar,omitempty"`
}

// DefaultUser returns the snapshot used before any login or detection.
func DefaultUser() User {
	return User{Location: "Detecting..."}
}

// UserUpdate is a partial user update; nil fields are left untouched.
// No format validation is applied to email or phone.
type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Location *string `json:"location,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

// ApplyTo shallow-merges the update into the snapshot.
func (u UserUpdate) ApplyTo(dst *User) {
	if u.Name != nil {
		dst.Name = *u.Name
	}
	if u.Email != nil {
		dst.Email = *u.Email
	}
	if u.Phone != nil {
		dst.Phone = *u.Phone
	}
	if u.Location != nil {
		dst.Location = *u.Location
	}
	if u.Avatar != nil {
		dst.Avatar = *u.Avatar
	}
}
