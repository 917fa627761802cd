package domain

import "time"

const (
	RoleFounder  = "founder"
	RoleInvestor = "investor"
	RoleAdmin    = "admin"
)

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleFounder || role == RoleInvestor || role == RoleAdmin
}

// User models an account in the marketplace. PasswordHash never leaves the
// server: it is excluded from JSON and from guard-side store projections.
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Role           string    `json:"role"`
	Location       string    `json:"location,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
	Verified       bool      `json:"verified"`
	EmailUpdates   bool      `json:"email_updates"`
	PublicProfile  bool      `json:"public_profile"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PublicProfile carries only display fields, for embedding in other
// entities' list responses.
type PublicProfile struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Location       string `json:"location,omitempty"`
	Bio            string `json:"bio,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	Verified       bool   `json:"verified"`
}

// Public returns the embeddable view of the user.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:             u.ID,
		Name:           u.Name,
		Role:           u.Role,
		Location:       u.Location,
		Bio:            u.Bio,
		ProfilePicture: u.ProfilePicture,
		Verified:       u.Verified,
	}
}

// CanActOn reports whether the user may mutate a record owned by ownerID.
// Admins may act on anything; everyone else only on their own records.
func (u *User) CanActOn(ownerID string) bool {
	return u.Role == RoleAdmin || u.ID == ownerID
}
