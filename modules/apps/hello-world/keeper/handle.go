package keeper

import (
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/internal/events"
	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/internal/telemetry"
	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
)

// HandleCallMessage processes a message relayed by the gateway.
// HandleCallMessage returns an error if:
// - the caller is not exactly the configured gateway address
// - the payload is not valid UTF-8
// - a registered rollback handler fails
//
// On success a MessageReceived event is returned, followed by a RollbackDataReceived
// event when the payload is the rollback sentinel. Replays are not detected here.
func (k Keeper) HandleCallMessage(
	ctx sdk.Context,
	caller string,
	from types.NetworkAddress,
	data []byte,
) (*wasmvmtypes.Response, error) {
	gateway, err := k.GetGateway(ctx)
	if err != nil {
		return nil, err
	}

	if caller != gateway {
		telemetry.ReportUnauthorizedCaller()
		k.Logger(ctx).Debug("rejected call message from unauthorized caller", "caller", caller, "from", from.String())
		return nil, errorsmod.Wrapf(types.ErrUnauthorized, "caller %s is not the gateway", caller)
	}

	payload, err := types.DecodePayload(data)
	if err != nil {
		return nil, err
	}

	contractEvents := []wasmvmtypes.Event{
		events.NewMessageReceivedEvent(from.String(), payload),
	}

	isRollback := types.IsRollbackSentinel(payload)
	if isRollback {
		if k.rollbackHandler != nil {
			if err := k.rollbackHandler.OnRollbackReceived(ctx, from, payload); err != nil {
				return nil, errorsmod.Wrap(err, "rollback handler failed")
			}
		}

		contractEvents = append(contractEvents, events.NewRollbackDataReceivedEvent(from.String(), payload))
		k.Logger(ctx).Info("rollback payload received", "from", from.String())
	}

	events.EmitContractEvents(ctx, contractEvents)
	telemetry.ReportHandleCallMessage(from, isRollback)
	k.Logger(ctx).Info("call message received", "from", from.String(), "data", payload)

	return &wasmvmtypes.Response{
		Messages:   []wasmvmtypes.SubMsg{},
		Attributes: []wasmvmtypes.EventAttribute{},
		Events:     contractEvents,
	}, nil
}
