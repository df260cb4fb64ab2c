package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RollbackSentinel is the reserved payload the gateway delivers back to the endpoint
// when a previously sent call message failed on the destination chain and carried a
// rollback payload.
const RollbackSentinel = "ExecuteRollback"

// IsRollbackSentinel reports whether the decoded payload is exactly the rollback sentinel.
// The comparison is byte-exact: no trimming and no case folding.
func IsRollbackSentinel(payload string) bool {
	return payload == RollbackSentinel
}

// RollbackHandler is invoked by the keeper after a rollback payload has been received
// from the gateway. Returning an error aborts the whole inbound call.
type RollbackHandler interface {
	OnRollbackReceived(ctx sdk.Context, from NetworkAddress, data string) error
}
