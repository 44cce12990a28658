package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/onederx/chia-rpc/rpc"
	"github.com/onederx/chia-rpc/rpc/fullnode"
	"github.com/onederx/chia-rpc/rpc/wallet"
	"github.com/onederx/chia-rpc/settings"
)

var (
	cfgFile string
	verbose bool

	logLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	logger   = newLogger()
	conf     settings.Settings
)

var cli = &cobra.Command{
	Use:           "chia-rpc",
	Short:         "CLI client for chia full node and wallet RPC services",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logLevel.SetLevel(zap.DebugLevel)
		}
		var err error
		conf, err = settings.NewSettings(cfgFile, cmd.Root())
		if err != nil {
			return err
		}
		if used := conf.ConfigFileUsed(); used != "" {
			logger.Debug("Loaded config file", zap.String("path", used))
		}
		return nil
	},
}

func newLogger() *zap.Logger {
	config := zap.NewDevelopmentConfig()
	config.Level = logLevel
	config.DisableStacktrace = true
	l, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func newRPCClient(service string) (*rpc.Client, error) {
	cfg, err := rpc.ConfigFromSettings(conf, service)
	if err != nil {
		return nil, err
	}
	cfg.Logger = logger.Named(service)
	return rpc.NewClient(cfg)
}

func newFullNodeClient() (*fullnode.Client, error) {
	caller, err := newRPCClient("fullnode")
	if err != nil {
		return nil, err
	}
	return fullnode.NewClient(caller), nil
}

func newWalletClient() (*wallet.Client, error) {
	caller, err := newRPCClient("wallet")
	if err != nil {
		return nil, err
	}
	return wallet.NewClient(caller), nil
}

func init() {
	settings.RegisterFlags(cli, &cfgFile)
	cli.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log RPC requests")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.ExecuteContext(ctx)
	stop()

	if err != nil {
		logger.Error("Command failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
