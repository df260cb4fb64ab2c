package types

import (
	"unicode/utf8"

	errorsmod "cosmossdk.io/errors"
)

// DecodePayload interprets the inbound payload as UTF-8 text. The error carries
// the index of the first invalid byte sequence.
func DecodePayload(data []byte) (string, error) {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return "", errorsmod.Wrapf(ErrDecode, "invalid utf-8 sequence from index %d", i)
		}
		i += size
	}

	return string(data), nil
}
