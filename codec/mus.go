package codec

import (
	"github.com/mus-format/mus-go/ord"

	"github.com/Pavez7274/kaff-sso/text"
)

// SizeMUS returns the encoded size of s under the MUS string
// serializer.
func SizeMUS(s *text.Str) (int, error) {
	v, err := s.Text()
	if err != nil {
		return 0, err
	}
	return ord.String.Size(v), nil
}

// MarshalMUS encodes s into bs, which must hold at least SizeMUS
// bytes, and returns the number of bytes written.
func MarshalMUS(s *text.Str, bs []byte) (int, error) {
	v, err := s.Text()
	if err != nil {
		return 0, err
	}
	return ord.String.Marshal(v, bs), nil
}

// UnmarshalMUS decodes a MUS string from bs into a freshly built Str,
// returning the number of bytes read.
func UnmarshalMUS(bs []byte) (text.Str, int, error) {
	v, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return text.Str{}, n, err
	}
	s, err := text.FromString(v)
	if err != nil {
		return text.Str{}, n, err
	}
	return s, n, nil
}
