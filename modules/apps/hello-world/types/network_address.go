package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
)

const networkAddressSeparator = "/"

// NetworkAddress identifies an account on a (possibly remote) chain in the form
// "<network-id>/<account>", e.g. "0x1.icon/hx1234".
type NetworkAddress string

// NewNetworkAddress joins a network identifier and an account into a NetworkAddress.
func NewNetworkAddress(networkID, account string) NetworkAddress {
	return NetworkAddress(networkID + networkAddressSeparator + account)
}

// ParseNetworkAddress parses and validates a network address string.
func ParseNetworkAddress(s string) (NetworkAddress, error) {
	na := NetworkAddress(s)
	if err := na.Validate(); err != nil {
		return "", err
	}

	return na, nil
}

// Validate checks that the address holds exactly one separator with a non-empty
// network identifier and account on either side.
func (na NetworkAddress) Validate() error {
	parts := strings.Split(string(na), networkAddressSeparator)
	if len(parts) != 2 {
		return errorsmod.Wrapf(ErrInvalidNetworkAddress, "expected <network-id>/<account>, got %q", string(na))
	}

	if strings.TrimSpace(parts[0]) == "" {
		return errorsmod.Wrapf(ErrInvalidNetworkAddress, "network id cannot be blank in %q", string(na))
	}

	if strings.TrimSpace(parts[1]) == "" {
		return errorsmod.Wrapf(ErrInvalidNetworkAddress, "account cannot be blank in %q", string(na))
	}

	return nil
}

// NetworkID returns the network identifier part of the address.
func (na NetworkAddress) NetworkID() string {
	networkID, _, _ := strings.Cut(string(na), networkAddressSeparator)
	return networkID
}

// Account returns the account part of the address.
func (na NetworkAddress) Account() string {
	_, account, _ := strings.Cut(string(na), networkAddressSeparator)
	return account
}

func (na NetworkAddress) String() string {
	return string(na)
}
