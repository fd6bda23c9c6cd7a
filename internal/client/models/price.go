package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var ErrInvalidPrice = errors.New("price must be a number or a numeric string")

// Price is an amount in the backend's currency. Decimal columns are
// sometimes serialized as strings ("12.50"), so both forms are accepted;
// null means free. Prices are always written back as numbers.
type Price float64

func (p Price) Float64() float64 { return float64(p) }

func (p *Price) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = 0
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return ErrInvalidPrice
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*p = 0
			return nil
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ErrInvalidPrice
	}
	*p = Price(f)
	return nil
}
