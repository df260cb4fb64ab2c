package keeper

import (
	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
)

// Option is an extension point to instantiate keeper with non default values
type Option interface {
	apply(*Keeper)
}

type optsFn func(*Keeper)

func (f optsFn) apply(keeper *Keeper) {
	f(keeper)
}

// WithRollbackHandler registers a handler that is called whenever the gateway delivers
// the rollback sentinel. Without it the endpoint only records the rollback as an event.
func WithRollbackHandler(handler types.RollbackHandler) Option {
	return optsFn(func(k *Keeper) {
		k.rollbackHandler = handler
	})
}
