package main

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/onederx/chia-rpc/chia"
	"github.com/onederx/chia-rpc/rpc/wallet"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Query and operate wallet RPC service",
}

func walletCommand(use, short string, args cobra.PositionalArgs, run func(cmd *cobra.Command, w *wallet.Client, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWalletClient()
			if err != nil {
				return err
			}
			return run(cmd, w, args)
		},
	}
}

func logInCommands() []*cobra.Command {
	logIn := func(skip bool) func(cmd *cobra.Command, w *wallet.Client, args []string) error {
		return func(cmd *cobra.Command, w *wallet.Client, args []string) error {
			fingerprint, err := parseUint32(args[0], "fingerprint")
			if err != nil {
				return err
			}
			if skip {
				return showResponse(cmd)(w.LogInAndSkip(cmd.Context(), fingerprint))
			}
			return showResponse(cmd)(w.LogIn(cmd.Context(), fingerprint))
		}
	}

	return []*cobra.Command{
		walletCommand("log_in FINGERPRINT", "Log in with key of given fingerprint", cobra.ExactArgs(1), logIn(false)),
		walletCommand("log_in_and_skip FINGERPRINT", "Log in skipping import from backup", cobra.ExactArgs(1), logIn(true)),
		walletCommand("get_wallets", "List wallets", cobra.NoArgs,
			func(cmd *cobra.Command, w *wallet.Client, args []string) error {
				return showResponse(cmd)(w.GetWallets(cmd.Context()))
			}),
		walletCommand("get_wallet_balance WALLET_ID", "Get balance of a wallet", cobra.ExactArgs(1),
			func(cmd *cobra.Command, w *wallet.Client, args []string) error {
				walletID, err := parseUint32(args[0], "wallet id")
				if err != nil {
					return err
				}
				return showResponse(cmd)(w.GetWalletBalance(cmd.Context(), walletID))
			}),
		walletCommand("get_sync_status", "Get wallet sync status", cobra.NoArgs,
			func(cmd *cobra.Command, w *wallet.Client, args []string) error {
				return showResponse(cmd)(w.GetSyncStatus(cmd.Context()))
			}),
	}
}

func transactionCommands() []*cobra.Command {
	var (
		inMojo    bool
		coinsJSON string
	)

	sendTransaction := walletCommand("send_transaction WALLET_ID ADDRESS AMOUNT FEE", "Send money to address", cobra.ExactArgs(4),
		func(cmd *cobra.Command, w *wallet.Client, args []string) error {
			walletID, err := parseUint32(args[0], "wallet id")
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[2], inMojo)
			if err != nil {
				return err
			}
			fee, err := parseAmount(args[3], inMojo)
			if err != nil {
				return err
			}
			return showResponse(cmd)(w.SendTransaction(cmd.Context(), walletID, amount, args[1], fee))
		})
	sendTransaction.Example = "send_transaction 1 xch1... 0.5 0.00001"

	sendTransactionMulti := walletCommand("send_transaction_multi WALLET_ID FEE DESTINATION:AMOUNT...", "Send money to several destinations in one transaction", cobra.MinimumNArgs(3),
		func(cmd *cobra.Command, w *wallet.Client, args []string) error {
			walletID, err := parseUint32(args[0], "wallet id")
			if err != nil {
				return err
			}
			fee, err := parseAmount(args[1], inMojo)
			if err != nil {
				return err
			}
			payments, err := parsePayments(args[2:], inMojo)
			if err != nil {
				return err
			}
			return showResponse(cmd)(w.SendTransactionMulti(cmd.Context(), walletID, payments, fee))
		})

	createSignedTransaction := walletCommand("create_signed_transaction WALLET_ID FEE DESTINATION:AMOUNT...", "Create and sign a transaction without sending it", cobra.MinimumNArgs(3),
		func(cmd *cobra.Command, w *wallet.Client, args []string) error {
			walletID, err := parseUint32(args[0], "wallet id")
			if err != nil {
				return err
			}
			fee, err := parseAmount(args[1], inMojo)
			if err != nil {
				return err
			}
			payments, err := parsePayments(args[2:], inMojo)
			if err != nil {
				return err
			}
			var coins []chia.Coin
			if coinsJSON != "" {
				if err := json.Unmarshal([]byte(coinsJSON), &coins); err != nil {
					return errors.Wrap(err, "coins are not a valid JSON list of coins")
				}
			}
			return showResponse(cmd)(w.CreateSignedTransaction(cmd.Context(), walletID, payments, coins, fee))
		})
	createSignedTransaction.Flags().StringVar(&coinsJSON, "coins", "", "JSON list of coins to spend, wallet selects coins if not given")

	for _, cmd := range []*cobra.Command{sendTransaction, sendTransactionMulti, createSignedTransaction} {
		cmd.Flags().BoolVar(&inMojo, "mojo", false, "amounts are given in mojo instead of XCH")
	}

	return []*cobra.Command{
		sendTransaction,
		sendTransactionMulti,
		createSignedTransaction,
		walletCommand("get_transaction WALLET_ID TRANSACTION_ID", "Get transaction record", cobra.ExactArgs(2),
			func(cmd *cobra.Command, w *wallet.Client, args []string) error {
				walletID, err := parseUint32(args[0], "wallet id")
				if err != nil {
					return err
				}
				transactionID, err := chia.Bytes32FromHex(args[1])
				if err != nil {
					return err
				}
				return showResponse(cmd)(w.GetTransaction(cmd.Context(), walletID, transactionID))
			}),
	}
}

func init() {
	walletCmd.AddCommand(logInCommands()...)
	walletCmd.AddCommand(transactionCommands()...)
	cli.AddCommand(walletCmd)
}
