// Package codec adapts the text specialization to host serialization
// boundaries: JSON, MessagePack and MUS. Every decode path routes
// through the validating text constructors, never the unchecked ones,
// so foreign bytes can never smuggle invalid UTF-8 into a Str.
package codec

import (
	json "github.com/goccy/go-json"

	"github.com/Pavez7274/kaff-sso/text"
)

// JSONStr adapts text.Str to the encoding/json interfaces, encoding as
// a plain JSON string.
type JSONStr struct {
	Str text.Str
}

// MarshalJSON encodes the contents through the validating text view.
func (j JSONStr) MarshalJSON() ([]byte, error) {
	v, err := j.Str.Text()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes a JSON string and rebuilds the Str through the
// validating constructor.
func (j *JSONStr) UnmarshalJSON(data []byte) error {
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s, err := text.FromString(v)
	if err != nil {
		return err
	}
	j.Str = s
	return nil
}

// MarshalJSON encodes s as a JSON string.
func MarshalJSON(s *text.Str) ([]byte, error) {
	return JSONStr{Str: *s}.MarshalJSON()
}

// UnmarshalJSON decodes a JSON string into a freshly built Str.
func UnmarshalJSON(data []byte) (text.Str, error) {
	var j JSONStr
	if err := j.UnmarshalJSON(data); err != nil {
		return text.Str{}, err
	}
	return j.Str, nil
}
