package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/cosmos/xcall-dapp/internal/validate"
	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
)

// newInstantiateMsgCmd returns the command to build the endpoint's instantiate message.
func newInstantiateMsgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "instantiate [xcall-address]",
		Short:   "Build the instantiate message binding the endpoint to a gateway contract",
		Example: "xcall-dapp hello-world instantiate wasm14hj2tavq8fpesdwxxcu44rty3hh90vhujrvcmstl4zr3txmfvw9s4hmalr",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}

			if err := validate.CanonicalAddress(cfg.AddressCodec(), args[0]); err != nil {
				return err
			}

			return printMsg(cmd, types.InstantiateMsg{XCallAddress: args[0]})
		},
	}

	return cmd
}

// newSendCallMessageCmd returns the command to build a send_call_message execute message.
func newSendCallMessageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "send-call-message [to] [data]",
		Short:   "Build an execute message forwarding data to a remote network address",
		Example: "xcall-dapp hello-world send-call-message 0x1.icon/cx1234 hello --rollback ExecuteRollback",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to, err := types.ParseNetworkAddress(args[0])
			if err != nil {
				return err
			}

			data, err := payloadFromArg(cmd, args[1])
			if err != nil {
				return err
			}

			var rollback []byte
			if cmd.Flags().Changed(FlagRollback) {
				rollbackArg, _ := cmd.Flags().GetString(FlagRollback)
				if rollback, err = payloadFromArg(cmd, rollbackArg); err != nil {
					return err
				}
			}

			return printMsg(cmd, types.NewSendCallMessage(to, data, rollback))
		},
	}

	cmd.Flags().String(FlagRollback, "", "Rollback payload returned by the gateway if the call fails on the destination")
	cmd.Flags().Bool(FlagHex, false, "Interpret data and rollback as hex encoded bytes")

	return cmd
}

// newHandleCallMessageCmd returns the command to build a handle_call_message execute message,
// as delivered by the gateway.
func newHandleCallMessageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "handle-call-message [from] [data]",
		Short:   "Build the execute message the gateway delivers for an inbound call",
		Example: "xcall-dapp hello-world handle-call-message 0x1.icon/cx1234 ExecuteRollback",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := payloadFromArg(cmd, args[1])
			if err != nil {
				return err
			}

			return printMsg(cmd, types.NewHandleCallMessage(types.NetworkAddress(args[0]), data))
		},
	}

	cmd.Flags().Bool(FlagHex, false, "Interpret data as hex encoded bytes")

	return cmd
}

// newGatewayNetworkAddressQueryCmd returns the command to build the gateway's network address query.
func newGatewayNetworkAddressQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gateway-network-address",
		Short: "Build the smart query returning the gateway's own network address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printMsg(cmd, types.NewGetNetworkAddressQuery())
		},
	}
}

func configFromFlags(cmd *cobra.Command) (types.Config, error) {
	prefix, err := cmd.Flags().GetString(FlagBech32Prefix)
	if err != nil {
		return types.Config{}, err
	}

	cfg := types.Config{Bech32Prefix: prefix}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}

	return cfg, nil
}

func payloadFromArg(cmd *cobra.Command, arg string) ([]byte, error) {
	isHex, _ := cmd.Flags().GetBool(FlagHex)
	if !isHex {
		return []byte(arg), nil
	}

	bz, err := hex.DecodeString(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid hex payload %q: %w", arg, err)
	}

	return bz, nil
}

// printMsg writes msg to the command output in the requested format. YAML output is
// derived from the JSON encoding so both formats carry the same field names.
func printMsg(cmd *cobra.Command, msg any) error {
	bz, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString(FlagOutput)
	switch output {
	case OutputFormatJSON, "":
	case OutputFormatYAML:
		var generic any
		if err := yaml.Unmarshal(bz, &generic); err != nil {
			return err
		}
		if bz, err = yaml.Marshal(generic); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %q", output)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
