package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

var ErrInvalidID = errors.New("id must be a string or a number")

// ID identifies a backend resource. The backend uses numeric ids, but
// string ids are accepted too; numeric ids are written back as numbers so
// request payloads keep the backend's shape.
type ID string

func (id ID) String() string { return string(id) }

func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return ErrInvalidID
		}
		*id = ID(n.String())
		return nil
	}
}

// Text is a display-only scalar. Fields like media length or file size come
// back as strings from some backends and as numbers from others.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case nil:
		*t = ""
	case string:
		*t = Text(value)
	case float64:
		*t = Text(strconv.FormatFloat(value, 'f', -1, 64))
	case bool:
		*t = Text(strconv.FormatBool(value))
	default:
		return errors.New("text must be a scalar")
	}
	return nil
}
