package types

import (
	"encoding/json"

	errorsmod "cosmossdk.io/errors"
)

// CallEnvelope is the payload of the gateway's send_call_message entry point.
// Sources and Destinations are relay hints; leaving them unset lets the gateway pick
// its default connections.
type CallEnvelope struct {
	To           NetworkAddress `json:"to"`
	Data         Bytes          `json:"data"`
	Sources      []string       `json:"sources,omitempty"`
	Destinations []string       `json:"destinations,omitempty"`
	Rollback     *Bytes         `json:"rollback,omitempty"`
}

// GatewayExecuteMsg is the execute message understood by the gateway contract.
type GatewayExecuteMsg struct {
	SendCallMessage *CallEnvelope `json:"send_call_message,omitempty"`
}

// GatewayQueryMsg is the query message understood by the gateway contract.
type GatewayQueryMsg struct {
	GetNetworkAddress *getNetworkAddressMsg `json:"get_network_address,omitempty"`
}

// getNetworkAddressMsg queries the gateway for its own network address.
type getNetworkAddressMsg struct{}

// NewCallEnvelope creates an envelope with unset relay hints. A nil rollback
// means no rollback payload; a non-nil empty rollback is forwarded as is.
func NewCallEnvelope(to NetworkAddress, data, rollback []byte) CallEnvelope {
	envelope := CallEnvelope{
		To:   to,
		Data: data,
	}
	if rollback != nil {
		rb := Bytes(rollback)
		envelope.Rollback = &rb
	}

	return envelope
}

// NewGetNetworkAddressQuery returns the gateway query for its network address.
func NewGetNetworkAddressQuery() GatewayQueryMsg {
	return GatewayQueryMsg{GetNetworkAddress: &getNetworkAddressMsg{}}
}

// Marshal encodes the envelope as a gateway execute message.
func (e CallEnvelope) Marshal() ([]byte, error) {
	bz, err := json.Marshal(GatewayExecuteMsg{SendCallMessage: &e})
	if err != nil {
		return nil, errorsmod.Wrap(err, "failed to marshal gateway execute message")
	}

	return bz, nil
}
