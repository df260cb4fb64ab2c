package cli

import (
	"github.com/spf13/cobra"

	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
)

const (
	FlagBech32Prefix = "bech32-prefix"
	FlagOutput       = "output"
	FlagHex          = "hex"
	FlagRollback     = "rollback"

	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// NewTxCmd returns the root command for building hello-world contract messages. The
// commands print the JSON message to pass to the host chain's contract execution command.
func NewTxCmd() *cobra.Command {
	txCmd := &cobra.Command{
		Use:                        "hello-world",
		Short:                      "hello-world xcall endpoint message builders",
		SuggestionsMinimumDistance: 2,
	}

	txCmd.AddCommand(
		newInstantiateMsgCmd(),
		newSendCallMessageCmd(),
		newHandleCallMessageCmd(),
		newGatewayNetworkAddressQueryCmd(),
	)

	txCmd.PersistentFlags().String(FlagBech32Prefix, types.DefaultConfig().Bech32Prefix, "Account address prefix of the host chain")
	txCmd.PersistentFlags().StringP(FlagOutput, "o", OutputFormatJSON, "Output format (json|yaml)")

	return txCmd
}
