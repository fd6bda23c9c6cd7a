package forms

import "github.com/dmitrijs2005/vidmarkt/internal/client/models"

type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

var loginMessages = messages{
	"username.required": "Username is required",
	"password.required": "Password is required",
}

func (f LoginForm) Validate() error {
	return check(f, loginMessages)
}

// SignUpForm is the full registration form posted to /user.
type SignUpForm struct {
	FirstName       string `form:"firstName" validate:"required"`
	LastName        string `form:"lastName" validate:"required"`
	Email           string `form:"email" validate:"required,looseemail"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
	Terms           bool   `form:"terms" validate:"required"`
}

var signUpMessages = messages{
	"firstName.required":       "First name is required",
	"lastName.required":        "Last name is required",
	"email.required":           "Email is required",
	"email.looseemail":         "Invalid email format",
	"password.required":        "Password is required",
	"password.min":             "Password must be at least 6 characters",
	"confirmPassword.required": "Please confirm your password",
	"confirmPassword.eqfield":  "Passwords do not match",
	"terms.required":           "You must agree to the terms",
}

func (f SignUpForm) Validate() error {
	return check(f, signUpMessages)
}

func (f SignUpForm) Request() models.SignUpRequest {
	return models.SignUpRequest{
		FirstName:       f.FirstName,
		LastName:        f.LastName,
		Email:           f.Email,
		Password:        f.Password,
		ConfirmPassword: f.ConfirmPassword,
		Terms:           f.Terms,
	}
}

// RegisterForm is the short email/password registration posted to
// /api/register.
type RegisterForm struct {
	Email           string `form:"email" validate:"required,looseemail"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

func (f RegisterForm) Validate() error {
	return check(f, signUpMessages)
}

func (f RegisterForm) Request() models.RegisterRequest {
	return models.RegisterRequest{Email: f.Email, Password: f.Password}
}
