package models

// User roles.
const (
	RoleCustomer   = "customer"
	RoleTeamMember = "team_member"
	RoleAdmin      = "admin"
)

// User represents an account in the users collection. Passwords are stored
// as cleartext demo credentials and must be stripped before a user record
// leaves the public API or enters client session state.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

// WithoutPassword returns a copy of the user with the password cleared.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}
