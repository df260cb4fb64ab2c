package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/client/cli"
)

const (
	// EnvPrefix is the prefix of environment variables overriding flags, e.g. XCALL_DAPP_BECH32_PREFIX.
	EnvPrefix = "XCALL_DAPP"

	flagConfig = "config"
)

// NewRootCmd creates the root command of the xcall-dapp message builder. Flag values can
// also be provided by environment variables or a config file read with viper.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:           "xcall-dapp",
		Short:         "Build messages for xcall endpoint contracts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindConfig(cmd, v)
		},
	}

	rootCmd.PersistentFlags().String(flagConfig, "", "Path to a config file (toml, yaml or json)")
	rootCmd.AddCommand(cli.NewTxCmd())

	return rootCmd
}

// bindConfig loads the optional config file and environment into v, then sets every flag
// the user did not pass explicitly from the value found in v.
func bindConfig(cmd *cobra.Command, v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile, _ := cmd.Flags().GetString(flagConfig); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == flagConfig || !v.IsSet(f.Name) {
			return
		}
		value, err := cast.ToStringE(v.Get(f.Name))
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid value for %s: %w", f.Name, err))
			return
		}
		if err := cmd.Flags().Set(f.Name, value); err != nil {
			errs = append(errs, fmt.Errorf("invalid value for %s: %w", f.Name, err))
		}
	})

	return errors.Join(errs...)
}
