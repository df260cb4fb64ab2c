package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/cosmos/xcall-dapp/internal/collections"
)

// UnmarshalContractMsg decodes a single JSON contract message into msg. Unknown fields
// and trailing data are rejected.
func UnmarshalContractMsg(bz []byte, msg any) error {
	dec := json.NewDecoder(bytes.NewReader(bz))
	dec.DisallowUnknownFields()

	if err := dec.Decode(msg); err != nil {
		return err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after message")
	}

	return nil
}

// unmarshalObject decodes a JSON object into v after checking that every key is exactly
// one of fields. encoding/json matches keys case-insensitively, contract messages do not.
func unmarshalObject(bz []byte, v any, fields ...string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(bz, &raw); err != nil {
		return err
	}

	for key := range raw {
		if !collections.Contains(key, fields) {
			return fmt.Errorf("unknown field %q, expected one of %v", key, fields)
		}
	}

	return UnmarshalContractMsg(bz, v)
}

func missingField(name string) error {
	return fmt.Errorf("missing field %q", name)
}
