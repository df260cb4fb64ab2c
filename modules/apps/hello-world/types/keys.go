package types

import "cosmossdk.io/collections"

const (
	// ModuleName defines the hello-world xcall endpoint module name
	ModuleName = "helloworld"

	// StoreKey is the store key string for the hello-world module
	StoreKey = ModuleName

	// ContractName is the name the endpoint reports for itself in logs and telemetry
	ContractName = "hello-world"
)

// XCallAddressKey is the single key under which the trusted gateway address is stored.
var XCallAddressKey = collections.NewPrefix("XCALL_ADDRESS")
