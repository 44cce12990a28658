package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onederx/chia-rpc/chia"
)

// These commands work offline and don't need settings or credentials

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Convert between addresses and puzzle hashes",
}

func init() {
	var prefix string
	var inMojo bool

	encode := &cobra.Command{
		Use:     "encode PUZZLE_HASH",
		Short:   "Encode puzzle hash as a bech32m address",
		Example: "address encode 0x4bf5122f344554c53bde2ebb8cd2b7e3d1600ad631c385a5d7cce23c7785459a --prefix txch",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			puzzleHash, err := chia.Bytes32FromHex(args[0])
			if err != nil {
				return err
			}
			address, err := chia.EncodeAddress(puzzleHash, prefix)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), address)
			return nil
		},
	}
	encode.Flags().StringVarP(&prefix, "prefix", "p", chia.MainnetAddressPrefix, "address prefix of the network")

	decode := &cobra.Command{
		Use:   "decode ADDRESS",
		Short: "Decode address into puzzle hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, puzzleHash, err := chia.DecodeAddress(args[0])
			return showResponse(cmd)(map[string]interface{}{
				"prefix":      prefix,
				"puzzle_hash": puzzleHash,
			}, err)
		},
	}

	coinID := &cobra.Command{
		Use:   "coin_id PARENT_COIN_ID PUZZLE_HASH_OR_ADDRESS AMOUNT",
		Short: "Compute ID of a coin",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent, err := chia.Bytes32FromHex(args[0])
			if err != nil {
				return err
			}
			puzzleHash, err := chia.ParsePuzzleHash(args[1])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[2], inMojo)
			if err != nil {
				return err
			}
			coin := chia.Coin{ParentCoinInfo: parent, PuzzleHash: puzzleHash, Amount: amount}
			fmt.Fprintln(cmd.OutOrStdout(), coin.Name())
			return nil
		},
	}
	coinID.Flags().BoolVar(&inMojo, "mojo", false, "amount is given in mojo instead of XCH")

	addressCmd.AddCommand(encode, decode)
	cli.AddCommand(addressCmd, coinID)
}
