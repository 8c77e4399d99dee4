package models

const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
)

// Profile is the profiles row kept one-to-one with a platform auth user.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ProfileSummary is the projection returned by get-user-profile.
type ProfileSummary struct {
	Name string `json:"name"`
	Role string `json:"role"`
}
