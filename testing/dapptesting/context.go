package dapptesting

import (
	"testing"

	"cosmossdk.io/core/store"
	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
)

// NewTestContext returns a context backed by an in-memory multistore with the
// hello-world store mounted, together with the store service for that store.
func NewTestContext(tb testing.TB) (sdk.Context, store.KVStoreService) {
	tb.Helper()

	key := storetypes.NewKVStoreKey(types.StoreKey)
	testCtx := testutil.DefaultContextWithDB(tb, key, storetypes.NewTransientStoreKey("transient_test"))

	return testCtx.Ctx, runtime.NewKVStoreService(key)
}
