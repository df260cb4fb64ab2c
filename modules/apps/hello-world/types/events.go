package types

// hello-world endpoint events
const (
	EventTypeMessageReceived      = "MessageReceived"
	EventTypeRollbackDataReceived = "RollbackDataReceived"
	EventTypeSendCallMessage      = "send_call_message"

	AttributeKeyFrom    = "from"
	AttributeKeyData    = "data"
	AttributeKeyAction  = "Action"
	AttributeKeyGateway = "gateway"
	AttributeKeyTo      = "to"

	AttributeValueSendMessage = "SendMessage"
	AttributeValueCategory    = ModuleName
)
