package events

import (
	wasmvmtypes "github.com/CosmWasm/wasmvm/v2/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
)

// NewMessageReceivedEvent returns the event recording a message delivered by the gateway.
func NewMessageReceivedEvent(from, data string) wasmvmtypes.Event {
	return newContractEvent(types.EventTypeMessageReceived, from, data)
}

// NewRollbackDataReceivedEvent returns the event recording a rollback payload delivered by the gateway.
func NewRollbackDataReceivedEvent(from, data string) wasmvmtypes.Event {
	return newContractEvent(types.EventTypeRollbackDataReceived, from, data)
}

func newContractEvent(eventType, from, data string) wasmvmtypes.Event {
	return wasmvmtypes.Event{
		Type: eventType,
		Attributes: []wasmvmtypes.EventAttribute{
			{Key: types.AttributeKeyFrom, Value: from},
			{Key: types.AttributeKeyData, Value: data},
		},
	}
}

// EmitContractEvents mirrors the contract events on the sdk event manager, preserving order.
func EmitContractEvents(ctx sdk.Context, contractEvents []wasmvmtypes.Event) {
	if len(contractEvents) == 0 {
		return
	}

	sdkEvents := make(sdk.Events, 0, len(contractEvents)+1)
	for _, ev := range contractEvents {
		attributes := make([]sdk.Attribute, 0, len(ev.Attributes))
		for _, attr := range ev.Attributes {
			attributes = append(attributes, sdk.NewAttribute(attr.Key, attr.Value))
		}
		sdkEvents = append(sdkEvents, sdk.NewEvent(ev.Type, attributes...))
	}

	sdkEvents = append(sdkEvents, sdk.NewEvent(
		sdk.EventTypeMessage,
		sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
	))

	ctx.EventManager().EmitEvents(sdkEvents)
}

// EmitSendCallMessage emits the event recording an outbound call message handed to the gateway.
func EmitSendCallMessage(ctx sdk.Context, gateway string, to types.NetworkAddress) {
	ctx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeSendCallMessage,
			sdk.NewAttribute(types.AttributeKeyAction, types.AttributeValueSendMessage),
			sdk.NewAttribute(types.AttributeKeyGateway, gateway),
			sdk.NewAttribute(types.AttributeKeyTo, to.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}
