package keeper

import (
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	xcallerrors "github.com/cosmos/xcall-dapp/internal/errors"
	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
)

// Instantiate is the construction entry point. It decodes the InstantiateMsg and stores
// the gateway address; on failure nothing is written.
func (k Keeper) Instantiate(ctx sdk.Context, _ wasmvmtypes.MessageInfo, msg []byte) (*wasmvmtypes.Response, error) {
	var instantiateMsg types.InstantiateMsg
	if err := types.UnmarshalContractMsg(msg, &instantiateMsg); err != nil {
		return nil, errorsmod.Wrapf(xcallerrors.ErrInvalidType, "failed to unmarshal instantiate message: %v", err)
	}

	cacheCtx, writeFn := ctx.CacheContext()
	if err := k.InitializeGateway(cacheCtx, instantiateMsg.XCallAddress); err != nil {
		return nil, err
	}

	writeFn()

	return &wasmvmtypes.Response{
		Messages:   []wasmvmtypes.SubMsg{},
		Attributes: []wasmvmtypes.EventAttribute{},
		Events:     []wasmvmtypes.Event{},
	}, nil
}

// Execute is the execute entry point. It decodes the ExecuteMsg and dispatches it to
// SendCallMessage or HandleCallMessage. State changes and events are committed only
// when the dispatched call succeeds.
func (k Keeper) Execute(ctx sdk.Context, info wasmvmtypes.MessageInfo, msg []byte) (*wasmvmtypes.Response, error) {
	var executeMsg types.ExecuteMsg
	if err := types.UnmarshalContractMsg(msg, &executeMsg); err != nil {
		return nil, errorsmod.Wrapf(xcallerrors.ErrInvalidType, "failed to unmarshal execute message: %v", err)
	}

	if err := executeMsg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()

	var (
		res *wasmvmtypes.Response
		err error
	)
	// ValidateBasic guarantees exactly one variant is set.
	if m := executeMsg.SendCallMessage; m != nil {
		res, err = k.SendCallMessage(cacheCtx, info.Funds, m.To, m.Data, m.RollbackBytes())
	} else {
		m := executeMsg.HandleCallMessage
		res, err = k.HandleCallMessage(cacheCtx, string(info.Sender), m.From, m.Data)
	}

	if err != nil {
		return nil, err
	}

	writeFn()

	return res, nil
}

// Query is the query entry point. The endpoint defines no queries.
func (Keeper) Query(_ sdk.Context, _ []byte) ([]byte, error) {
	return nil, errorsmod.Wrap(types.ErrNotImplemented, "hello-world endpoint defines no queries")
}
