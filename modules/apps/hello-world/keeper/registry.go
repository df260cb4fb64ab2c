package keeper

import (
	"context"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/xcall-dapp/internal/validate"
	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
)

// InitializeGateway validates the raw gateway address and stores it. The address must be a
// valid account address of the host chain in its canonical encoding. The gateway can only
// be set once.
func (k Keeper) InitializeGateway(ctx context.Context, rawAddress string) error {
	if err := validate.CanonicalAddress(k.addressCodec, rawAddress); err != nil {
		return err
	}

	has, err := k.XCallAddress.Has(ctx)
	if err != nil {
		return err
	}
	if has {
		return errorsmod.Wrap(types.ErrGatewayAlreadyConfigured, "gateway address is write-once")
	}

	if err := k.XCallAddress.Set(ctx, rawAddress); err != nil {
		return errorsmod.Wrapf(err, "failed to set gateway address %s in store", rawAddress)
	}

	k.Logger(ctx).Info("gateway address configured", "xcall_address", rawAddress)
	return nil
}

// GetGateway returns the stored gateway address.
func (k Keeper) GetGateway(ctx context.Context) (string, error) {
	gateway, err := k.XCallAddress.Get(ctx)
	if err != nil {
		if errorsmod.IsOf(err, collections.ErrNotFound) {
			return "", errorsmod.Wrap(types.ErrGatewayNotConfigured, "endpoint has not been instantiated")
		}
		return "", err
	}

	return gateway, nil
}
