// Package models defines the request and response schemas exchanged with
// the marketplace backend and the locally persisted session record.
package models

// User is the account object returned by the authentication endpoints.
type User struct {
	ID        ID       `json:"id" validate:"required"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email,omitempty"`
	Roles     []string `json:"roles,omitempty"`
}

// DisplayName is the first name when known, the email otherwise.
func (u User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Email
}

// Session is the locally persisted proof of login. Its presence alone is
// treated as being authenticated; it has no expiry.
type Session struct {
	User  User
	Token string
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the body returned by POST /auth/login.
type LoginResponse struct {
	User        *User  `json:"user" validate:"required"`
	AccessToken string `json:"accessToken,omitempty"`
}

// SignUpRequest is the body of POST /user.
type SignUpRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Terms           bool   `json:"terms"`
}

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
