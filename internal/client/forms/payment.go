package forms

import (
	"strings"
	"unicode"
)

// MaxCardDigits caps card input at four groups of four.
const MaxCardDigits = 16

type PaymentForm struct {
	FullName   string `form:"fullName" validate:"required"`
	CardNumber string `form:"cardNumber" validate:"required,cardnumber"`
	Expiration string `form:"expiration" validate:"required,expiry"`
	CVC        string `form:"cvc" validate:"required,cvc"`
}

var paymentMessages = messages{
	"fullName.required":     "Full name is required",
	"cardNumber.required":   "Card number is required",
	"cardNumber.cardnumber": "Invalid card number",
	"expiration.required":   "Expiration is required",
	"expiration.expiry":     "Expiration must be MM/YY",
	"cvc.required":          "CVC is required",
	"cvc.cvc":               "Invalid CVC",
}

func (f PaymentForm) Validate() error {
	return check(f, paymentMessages)
}

// FormatCardNumber drops every non-digit, keeps at most MaxCardDigits digits
// and groups them in blocks of four separated by single spaces:
// "4111111111111111" becomes "4111 1111 1111 1111".
func FormatCardNumber(value string) string {
	digits := make([]rune, 0, MaxCardDigits)
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
			if len(digits) == MaxCardDigits {
				break
			}
		}
	}

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripCardNumber removes whitespace so a formatted number can be submitted.
func StripCardNumber(display string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, display)
}

func onlyDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
