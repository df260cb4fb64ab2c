package types

import (
	errorsmod "cosmossdk.io/errors"
)

// The contract messages below follow the JSON layout used by CosmWasm contracts:
// enum variants are encoded as an object with a single snake_case key. The json omitempty
// tags on the variant pointers are mandatory so that only the populated variant is encoded.

// InstantiateMsg is the message the endpoint is constructed with.
type InstantiateMsg struct {
	XCallAddress string `json:"xcall_address"`
}

// ExecuteMsg is the message sent to the endpoint's execute entry point.
type ExecuteMsg struct {
	SendCallMessage   *SendCallMessageMsg   `json:"send_call_message,omitempty"`
	HandleCallMessage *HandleCallMessageMsg `json:"handle_call_message,omitempty"`
}

// SendCallMessageMsg asks the endpoint to forward data to a remote network through the gateway.
type SendCallMessageMsg struct {
	To   NetworkAddress `json:"to"`
	Data Bytes          `json:"data"`
	// Rollback is optional; a nil pointer means no rollback payload.
	Rollback *Bytes `json:"rollback,omitempty"`
}

// HandleCallMessageMsg is delivered by the gateway when a message from a remote network arrives.
type HandleCallMessageMsg struct {
	From NetworkAddress `json:"from"`
	Data Bytes          `json:"data"`
}

// QueryMsg is the message sent to the endpoint's query entry point. No queries are defined.
type QueryMsg struct{}

// NewSendCallMessage creates an ExecuteMsg carrying a SendCallMessageMsg.
// A nil rollback is encoded as no rollback payload.
func NewSendCallMessage(to NetworkAddress, data, rollback []byte) *ExecuteMsg {
	msg := &SendCallMessageMsg{
		To:   to,
		Data: data,
	}
	if rollback != nil {
		rb := Bytes(rollback)
		msg.Rollback = &rb
	}

	return &ExecuteMsg{SendCallMessage: msg}
}

// NewHandleCallMessage creates an ExecuteMsg carrying a HandleCallMessageMsg.
func NewHandleCallMessage(from NetworkAddress, data []byte) *ExecuteMsg {
	return &ExecuteMsg{
		HandleCallMessage: &HandleCallMessageMsg{
			From: from,
			Data: data,
		},
	}
}

// UnmarshalJSON requires the gateway address.
func (msg *InstantiateMsg) UnmarshalJSON(bz []byte) error {
	var raw struct {
		XCallAddress *string `json:"xcall_address"`
	}
	if err := unmarshalObject(bz, &raw, "xcall_address"); err != nil {
		return err
	}
	if raw.XCallAddress == nil {
		return missingField("xcall_address")
	}

	*msg = InstantiateMsg{XCallAddress: *raw.XCallAddress}
	return nil
}

// UnmarshalJSON rejects variants other than send_call_message and handle_call_message.
func (msg *ExecuteMsg) UnmarshalJSON(bz []byte) error {
	type executeMsg ExecuteMsg
	var raw executeMsg
	if err := unmarshalObject(bz, &raw, "send_call_message", "handle_call_message"); err != nil {
		return err
	}

	*msg = ExecuteMsg(raw)
	return nil
}

// UnmarshalJSON requires to and data. A missing or null rollback means no rollback payload.
func (msg *SendCallMessageMsg) UnmarshalJSON(bz []byte) error {
	var raw struct {
		To       *NetworkAddress `json:"to"`
		Data     *Bytes          `json:"data"`
		Rollback *Bytes          `json:"rollback"`
	}
	if err := unmarshalObject(bz, &raw, "to", "data", "rollback"); err != nil {
		return err
	}
	if raw.To == nil {
		return missingField("to")
	}
	if raw.Data == nil {
		return missingField("data")
	}

	*msg = SendCallMessageMsg{To: *raw.To, Data: *raw.Data, Rollback: raw.Rollback}
	return nil
}

// UnmarshalJSON requires from and data.
func (msg *HandleCallMessageMsg) UnmarshalJSON(bz []byte) error {
	var raw struct {
		From *NetworkAddress `json:"from"`
		Data *Bytes          `json:"data"`
	}
	if err := unmarshalObject(bz, &raw, "from", "data"); err != nil {
		return err
	}
	if raw.From == nil {
		return missingField("from")
	}
	if raw.Data == nil {
		return missingField("data")
	}

	*msg = HandleCallMessageMsg{From: *raw.From, Data: *raw.Data}
	return nil
}

// ValidateBasic checks that exactly one variant is set and that the destination of an
// outbound call is well formed. The source of an inbound call is supplied by the gateway
// and taken verbatim, so that any caller other than the gateway is rejected as unauthorized
// whatever the message content.
func (msg ExecuteMsg) ValidateBasic() error {
	switch {
	case msg.SendCallMessage != nil && msg.HandleCallMessage != nil:
		return errorsmod.Wrap(ErrInvalidMessage, "execute message must set exactly one variant")
	case msg.SendCallMessage != nil:
		return msg.SendCallMessage.To.Validate()
	case msg.HandleCallMessage != nil:
		return nil
	default:
		return errorsmod.Wrap(ErrInvalidMessage, "empty execute message")
	}
}

// RollbackBytes returns the rollback payload, or nil when none was given.
// An explicitly empty rollback is returned as a non-nil empty slice.
func (msg SendCallMessageMsg) RollbackBytes() []byte {
	if msg.Rollback == nil {
		return nil
	}
	if *msg.Rollback == nil {
		return []byte{}
	}

	return []byte(*msg.Rollback)
}
