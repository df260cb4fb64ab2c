package types

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
)

// Bytes is an opaque byte payload. It is encoded in JSON as an array of byte values,
// which is the layout the gateway contract expects for its binary message fields.
// Decoding additionally accepts a base64 string.
type Bytes []byte

// MarshalJSON encodes the payload as a JSON array of numbers. A nil payload
// is encoded as an empty array, never as null.
func (b Bytes) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(2 + 4*len(b))
	buf.WriteByte('[')
	for i, v := range b {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Itoa(int(v)))
	}
	buf.WriteByte(']')

	return buf.Bytes(), nil
}

// UnmarshalJSON decodes either an array of byte values or a base64 string.
func (b *Bytes) UnmarshalJSON(bz []byte) error {
	trimmed := bytes.TrimSpace(bz)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var encoded string
		if err := json.Unmarshal(trimmed, &encoded); err != nil {
			return err
		}

		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return fmt.Errorf("invalid base64 payload: %w", err)
		}

		*b = append(Bytes{}, decoded...)
		return nil
	}

	var values []int
	if err := json.Unmarshal(trimmed, &values); err != nil {
		return err
	}

	out := make(Bytes, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return fmt.Errorf("byte value %d at index %d out of range", v, i)
		}
		out[i] = byte(v)
	}

	*b = out
	return nil
}
