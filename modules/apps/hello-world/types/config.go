package types

import (
	"errors"
	"strings"

	"cosmossdk.io/core/address"

	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
)

const defaultBech32Prefix = "wasm"

// Config holds the host chain settings the endpoint needs to validate addresses.
type Config struct {
	// Bech32Prefix is the account address prefix of the host chain, e.g. "wasm" or "cosmos".
	Bech32Prefix string `mapstructure:"bech32-prefix"`
}

// DefaultConfig returns the default settings for Config.
func DefaultConfig() Config {
	return Config{
		Bech32Prefix: defaultBech32Prefix,
	}
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Bech32Prefix) == "" {
		return errors.New("bech32 prefix cannot be blank")
	}
	if strings.ToLower(c.Bech32Prefix) != c.Bech32Prefix {
		return errors.New("bech32 prefix must be lower case")
	}

	return nil
}

// AddressCodec returns the account address codec for the configured prefix.
func (c Config) AddressCodec() address.Codec {
	return addresscodec.NewBech32Codec(c.Bech32Prefix)
}
