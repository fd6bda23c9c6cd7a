// Package forms validates the interactive forms (login, sign-up,
// registration, payment) and formats their fields for display.
//
// Validation is pure and synchronous: a form value goes in, and either nil
// or a ValidationErrors listing one message per failing field comes out.
// Messages are the ones shown to the user verbatim.
package forms

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MinPasswordLength is the shortest password sign-up accepts.
const MinPasswordLength = 6

var (
	emailPattern  = regexp.MustCompile(`(?i)^\S+@\S+$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])\s*/\s*\d{2}$`)
	cvcPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

// FieldError is a single failing field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors lists failing fields in form order.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// Message returns the message for field, or "" when the field passed.
func (v ValidationErrors) Message(field string) string {
	for _, fe := range v {
		if fe.Field == field {
			return fe.Message
		}
	}
	return ""
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name, _, _ := strings.Cut(f.Tag.Get("form"), ","); name != "" {
			return name
		}
		return f.Name
	})

	mustRegister(v, "looseemail", func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	mustRegister(v, "cardnumber", func(fl validator.FieldLevel) bool {
		digits := StripCardNumber(fl.Field().String())
		return len(digits) >= 12 && len(digits) <= MaxCardDigits && onlyDigits(digits)
	})
	mustRegister(v, "expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	mustRegister(v, "cvc", func(fl validator.FieldLevel) bool {
		return cvcPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// IsEmail reports whether s looks like an address: something, an @, then
// something, with no whitespace anywhere.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// messages maps "field.tag" to the text shown to the user.
type messages map[string]string

func check(form any, msgs messages) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(verrs))
	seen := make(map[string]struct{}, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if _, dup := seen[field]; dup {
			continue
		}
		seen[field] = struct{}{}

		msg, ok := msgs[field+"."+fe.Tag()]
		if !ok {
			msg = field + " is invalid"
		}
		out = append(out, FieldError{Field: field, Message: msg})
	}
	return out
}
