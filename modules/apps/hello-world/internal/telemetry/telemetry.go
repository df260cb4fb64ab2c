package telemetry

import (
	"strconv"

	"github.com/hashicorp/go-metrics"

	"github.com/cosmos/cosmos-sdk/telemetry"

	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
)

const (
	labelNetworkID = "network_id"
	labelRollback  = "rollback"
)

func ReportSendCallMessage(to types.NetworkAddress, hasRollback bool) {
	telemetry.IncrCounterWithLabels(
		[]string{"xcall", types.ModuleName, "send"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(labelNetworkID, to.NetworkID()),
			telemetry.NewLabel(labelRollback, strconv.FormatBool(hasRollback)),
		},
	)
}

func ReportHandleCallMessage(from types.NetworkAddress, rollback bool) {
	telemetry.IncrCounterWithLabels(
		[]string{"xcall", types.ModuleName, "receive"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(labelNetworkID, from.NetworkID()),
			telemetry.NewLabel(labelRollback, strconv.FormatBool(rollback)),
		},
	)
}

func ReportUnauthorizedCaller() {
	telemetry.IncrCounter(1, "xcall", types.ModuleName, "unauthorized")
}
