package keeper

import (
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	xcallerrors "github.com/cosmos/xcall-dapp/internal/errors"
	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/internal/events"
	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/internal/telemetry"
	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
)

// SendCallMessage builds the gateway-bound call message for the given destination and payloads.
// The returned response carries a single execute sub-message targeted at the gateway with the
// caller's funds attached unchanged, and the Action=SendMessage attribute. The destination is
// not checked beyond its own format: delivery is the gateway's responsibility.
//
// A nil rollback means no rollback payload.
func (k Keeper) SendCallMessage(
	ctx sdk.Context,
	funds []wasmvmtypes.Coin,
	to types.NetworkAddress,
	data,
	rollback []byte,
) (*wasmvmtypes.Response, error) {
	gateway, err := k.GetGateway(ctx)
	if err != nil {
		return nil, err
	}

	envelope := types.NewCallEnvelope(to, data, rollback)
	msg, err := envelope.Marshal()
	if err != nil {
		return nil, errorsmod.Wrap(xcallerrors.ErrLogic, err.Error())
	}

	if funds == nil {
		funds = []wasmvmtypes.Coin{}
	}

	res := &wasmvmtypes.Response{
		Messages: []wasmvmtypes.SubMsg{
			{
				ID: 0,
				Msg: wasmvmtypes.CosmosMsg{
					Wasm: &wasmvmtypes.WasmMsg{
						Execute: &wasmvmtypes.ExecuteMsg{
							ContractAddr: gateway,
							Msg:          msg,
							Funds:        funds,
						},
					},
				},
				ReplyOn: wasmvmtypes.ReplyNever,
			},
		},
		Attributes: []wasmvmtypes.EventAttribute{
			{Key: types.AttributeKeyAction, Value: types.AttributeValueSendMessage},
		},
		Events: []wasmvmtypes.Event{},
	}

	events.EmitSendCallMessage(ctx, gateway, to)
	telemetry.ReportSendCallMessage(to, rollback != nil)
	k.Logger(ctx).Info("call message forwarded to gateway", "gateway", gateway, "to", to.String(), "data_len", len(data), "has_rollback", rollback != nil)

	return res, nil
}
