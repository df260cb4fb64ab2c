package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// GenesisState defines the hello-world module's genesis state.
type GenesisState struct {
	// XCallAddress is the trusted gateway address. It may be empty, in which case the
	// endpoint stays unconfigured until instantiated.
	XCallAddress string `json:"xcall_address"`
}

// NewGenesisState creates a new GenesisState instance.
func NewGenesisState(xcallAddress string) *GenesisState {
	return &GenesisState{XCallAddress: xcallAddress}
}

// DefaultGenesisState returns a GenesisState with no gateway configured.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{}
}

// Validate performs basic genesis state validation returning an error upon any
// failure. The bech32 prefix is checked by the keeper on import.
func (gs GenesisState) Validate() error {
	if gs.XCallAddress == "" {
		return nil
	}

	if _, _, err := bech32.DecodeAndConvert(gs.XCallAddress); err != nil {
		return errorsmod.Wrapf(ErrInvalidAddress, "string could not be parsed as address: %v", err)
	}

	return nil
}
