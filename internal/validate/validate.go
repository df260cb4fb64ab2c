package validate

import (
	"cosmossdk.io/core/address"
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
)

// CanonicalAddress validates that addr decodes with the given address codec and that
// re-encoding the decoded bytes yields addr unchanged.
func CanonicalAddress(codec address.Codec, addr string) error {
	bz, err := codec.StringToBytes(addr)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}

	canonical, err := codec.BytesToString(bz)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "address could not be re-encoded: %v", err)
	}

	if canonical != addr {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "address %s is not normalized, expected %s", addr, canonical)
	}

	return nil
}
