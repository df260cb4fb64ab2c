package types

import errorsmod "cosmossdk.io/errors"

var (
	ErrInvalidAddress           = errorsmod.Register(ModuleName, 1, "invalid address")
	ErrGatewayNotConfigured     = errorsmod.Register(ModuleName, 2, "gateway address not configured")
	ErrUnauthorized             = errorsmod.Register(ModuleName, 3, "unauthorized")
	ErrDecode                   = errorsmod.Register(ModuleName, 4, "decode error")
	ErrNotImplemented           = errorsmod.Register(ModuleName, 5, "not implemented")
	ErrInvalidNetworkAddress    = errorsmod.Register(ModuleName, 6, "invalid network address")
	ErrInvalidMessage           = errorsmod.Register(ModuleName, 7, "invalid message")
	ErrGatewayAlreadyConfigured = errorsmod.Register(ModuleName, 8, "gateway address already configured")
)
