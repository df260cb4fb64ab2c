package keeper

import (
	"context"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
)

// InitGenesis initializes the module state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, data *types.GenesisState) error {
	if data.XCallAddress == "" {
		return nil
	}

	return k.InitializeGateway(ctx, data.XCallAddress)
}

// ExportGenesis exports the module state to a genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gateway, err := k.XCallAddress.Get(ctx)
	if err != nil {
		if errorsmod.IsOf(err, collections.ErrNotFound) {
			return types.DefaultGenesisState(), nil
		}
		return nil, err
	}

	return types.NewGenesisState(gateway), nil
}
