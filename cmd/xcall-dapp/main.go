package main

import (
	"os"

	"cosmossdk.io/log"

	"github.com/cosmos/xcall-dapp/cmd/xcall-dapp/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.NewLogger(rootCmd.ErrOrStderr()).Error("failure when running xcall-dapp", "err", err)
		os.Exit(1)
	}
}
