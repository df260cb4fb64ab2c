package dapptesting

import (
	"crypto/sha256"
	"testing"

	"cosmossdk.io/core/address"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
)

const (
	// RemoteNetworkAddress is a counterparty on a remote chain.
	RemoteNetworkAddress = types.NetworkAddress("0x1.icon/0xabc")
)

// AddressCodec is the address codec of the test host chain.
var AddressCodec address.Codec = types.DefaultConfig().AddressCodec()

// NewAccAddress returns a deterministic account address for the given name.
func NewAccAddress(name string) sdk.AccAddress {
	hash := sha256.Sum256([]byte(name))
	return sdk.AccAddress(hash[:20])
}

// NewBech32Address returns the bech32 rendering of NewAccAddress(name) on the test host chain.
func NewBech32Address(tb testing.TB, name string) string {
	tb.Helper()

	addr, err := AddressCodec.BytesToString(NewAccAddress(name))
	if err != nil {
		tb.Fatalf("failed to encode address for %s: %v", name, err)
	}

	return addr
}
