package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/vidmarkt/internal/client/client"
	"github.com/dmitrijs2005/vidmarkt/internal/client/forms"
	"github.com/dmitrijs2005/vidmarkt/internal/common"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

// Login prompts for username and password and authenticates. On success the
// session is stored and the prompt shows the user's first name. A rejected
// login gets a generic message; the server's reason is only logged.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username (email)", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		switch {
		case a.showValidation(err):
		case errors.Is(err, client.ErrUnauthorized), errors.Is(err, client.ErrNotFound):
			a.log.Warn(ctx, "login rejected", "username", userName, "error", err)
			fmt.Fprintln(a.out, "Login failed: invalid username or password")
		default:
			a.report(ctx, "Login", err)
		}
		return err
	}

	a.session = s
	a.setMode(ModeOnline)
	a.log.Info(ctx, "login successful", "user_id", s.User.ID)
	fmt.Fprintf(a.out, "Welcome, %s!\n", s.User.DisplayName())
	return nil
}

// SignUp collects the full registration form and posts it to /user.
func (a *App) SignUp(ctx context.Context) error {
	var f forms.SignUpForm
	var err error

	if f.FirstName, err = getSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if f.LastName, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if f.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.out, "Password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	f.Password, f.ConfirmPassword = string(password), string(confirm)

	if f.Terms, err = getConfirmation(a.reader, "I agree to the terms and conditions", a.out); err != nil {
		return err
	}

	if err := a.authService.SignUp(ctx, f); err != nil {
		a.report(ctx, "Sign up", err)
		return err
	}

	fmt.Fprintln(a.out, "Account created. You can now log in.")
	return nil
}

// Register is the short email/password registration (POST /api/register).
func (a *App) Register(ctx context.Context) error {
	var f forms.RegisterForm
	var err error

	if f.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)
	f.Password, f.ConfirmPassword = string(password), string(confirm)

	if err := a.authService.Register(ctx, f); err != nil {
		a.report(ctx, "Registration", err)
		return err
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

// Logout removes the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.report(ctx, "Logout", err)
		return err
	}
	a.session = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if a.session == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	u := a.session.User
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.DisplayName()
	}
	fmt.Fprintf(a.out, "%s <%s> id=%s\n", name, u.Email, u.ID)
	if len(u.Roles) > 0 {
		fmt.Fprintf(a.out, "roles: %s\n", strings.Join(u.Roles, ", "))
	}
	return nil
}
