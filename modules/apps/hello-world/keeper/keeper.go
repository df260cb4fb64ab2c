package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
)

// Keeper implements the hello-world xcall endpoint. It owns the single stored
// gateway address and builds the responses of the contract entry points.
type Keeper struct {
	storeService store.KVStoreService
	addressCodec address.Codec

	rollbackHandler types.RollbackHandler

	// state management
	Schema collections.Schema
	// XCallAddress is the trusted gateway address, written once at instantiation
	XCallAddress collections.Item[string]
}

// NewKeeper creates a new Keeper instance
func NewKeeper(storeService store.KVStoreService, addressCodec address.Codec, opts ...Option) Keeper {
	if storeService == nil {
		panic(errors.New("store service must not be nil"))
	}

	if addressCodec == nil {
		panic(errors.New("address codec must not be nil"))
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := &Keeper{
		storeService: storeService,
		addressCodec: addressCodec,
		XCallAddress: collections.NewItem(sb, types.XCallAddressKey, "xcall_address", collections.StringValue),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}

	k.Schema = schema

	for _, opt := range opts {
		opt.apply(k)
	}

	return *k
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}
