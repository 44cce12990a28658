package settings

import (
	"github.com/spf13/cobra"
)

// RegisterFlags adds persistent flags that override settings to the root
// command. Path to config file given by user is stored in cfgFile
func RegisterFlags(cli *cobra.Command, cfgFile *string) {
	flags := cli.PersistentFlags()

	flags.StringVarP(cfgFile, "config-file", "c", "", "config file (default is /etc/chia-rpc/config.yaml or ./config.yaml)")
	flags.String("ssl-path", "", "directory with TLS certificates and keys (default ~/.chia/mainnet/config/ssl)")
	flags.Bool("insecure-skip-verify", false, "do not verify server certificate (development only)")
	flags.String("fullnode-host", "", "full node RPC host")
	flags.Int("fullnode-port", 0, "full node RPC port")
	flags.String("wallet-host", "", "wallet RPC host")
	flags.Int("wallet-port", 0, "wallet RPC port")
	flags.Duration("timeout", 0, "timeout of a single RPC request")
}
