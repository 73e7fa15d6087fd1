package codec

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Pavez7274/kaff-sso/text"
)

// MsgpackStr adapts text.Str to msgpack custom encoding, packing the
// contents as a msgpack string.
type MsgpackStr struct {
	Str text.Str
}

var (
	_ msgpack.CustomEncoder = (*MsgpackStr)(nil)
	_ msgpack.CustomDecoder = (*MsgpackStr)(nil)
)

func (m *MsgpackStr) EncodeMsgpack(enc *msgpack.Encoder) error {
	v, err := m.Str.Text()
	if err != nil {
		return err
	}
	return enc.EncodeString(v)
}

// DecodeMsgpack rebuilds the Str through the validating constructor;
// msgpack string payloads may carry arbitrary bytes on the wire.
func (m *MsgpackStr) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeString()
	if err != nil {
		return err
	}
	s, err := text.FromString(v)
	if err != nil {
		return err
	}
	m.Str = s
	return nil
}

// MarshalMsgpack encodes s as a msgpack string.
func MarshalMsgpack(s *text.Str) ([]byte, error) {
	return msgpack.Marshal(&MsgpackStr{Str: *s})
}

// UnmarshalMsgpack decodes a msgpack string into a freshly built Str.
func UnmarshalMsgpack(data []byte) (text.Str, error) {
	var m MsgpackStr
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return text.Str{}, err
	}
	return m.Str, nil
}
