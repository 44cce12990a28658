package main

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/onederx/chia-rpc/chia"
	"github.com/onederx/chia-rpc/rpc/fullnode"
)

var fullNodeCmd = &cobra.Command{
	Use:   "fullnode",
	Short: "Query full node RPC service",
}

func runFullNodeInfoCommand(cmd *cobra.Command, args []string) error {
	node, err := newFullNodeClient()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	switch cmd.Use {
	case "get_blockchain_state":
		return showResponse(cmd)(node.GetBlockchainState(ctx))
	case "get_network_info":
		return showResponse(cmd)(node.GetNetworkInfo(ctx))
	case "get_initial_freeze_period":
		return showResponse(cmd)(node.GetInitialFreezePeriod(ctx))
	case "get_unfinished_block_headers":
		return showResponse(cmd)(node.GetUnfinishedBlockHeaders(ctx))
	case "get_all_mempool_tx_ids":
		return showResponse(cmd)(node.GetAllMempoolTxIDs(ctx))
	case "get_all_mempool_items":
		return showResponse(cmd)(node.GetAllMempoolItems(ctx))
	default:
		panic("Unknown command " + cmd.Use)
	}
}

// fullNodeCommand wraps run with creation of full node client
func fullNodeCommand(use, short string, args cobra.PositionalArgs, run func(cmd *cobra.Command, node *fullnode.Client, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := newFullNodeClient()
			if err != nil {
				return err
			}
			return run(cmd, node, args)
		},
	}
}

func blockCommands() []*cobra.Command {
	var excludeHeaderHash bool

	getBlocks := fullNodeCommand("get_blocks START END", "Get full blocks with heights in [START, END)", cobra.ExactArgs(2),
		func(cmd *cobra.Command, node *fullnode.Client, args []string) error {
			start, err := parseUint32(args[0], "start height")
			if err != nil {
				return err
			}
			end, err := parseUint32(args[1], "end height")
			if err != nil {
				return err
			}
			return showResponse(cmd)(node.GetBlocks(cmd.Context(), start, end, excludeHeaderHash))
		})
	getBlocks.Flags().BoolVar(&excludeHeaderHash, "exclude-header-hash", false, "omit header hashes from blocks")

	return []*cobra.Command{
		fullNodeCommand("get_block HEADER_HASH", "Get full block by header hash", cobra.ExactArgs(1),
			func(cmd *cobra.Command, node *fullnode.Client, args []string) error {
				headerHash, err := chia.Bytes32FromHex(args[0])
				if err != nil {
					return err
				}
				return showResponse(cmd)(node.GetBlock(cmd.Context(), headerHash))
			}),
		getBlocks,
		fullNodeCommand("get_block_record_by_height HEIGHT", "Get block record by height", cobra.ExactArgs(1),
			func(cmd *cobra.Command, node *fullnode.Client, args []string) error {
				height, err := parseUint32(args[0], "height")
				if err != nil {
					return err
				}
				return showResponse(cmd)(node.GetBlockRecordByHeight(cmd.Context(), height))
			}),
		fullNodeCommand("get_block_record HEADER_HASH", "Get block record by header hash", cobra.ExactArgs(1),
			func(cmd *cobra.Command, node *fullnode.Client, args []string) error {
				headerHash, err := chia.Bytes32FromHex(args[0])
				if err != nil {
					return err
				}
				return showResponse(cmd)(node.GetBlockRecord(cmd.Context(), headerHash))
			}),
		fullNodeCommand("get_block_records START END", "Get block records with heights in [START, END)", cobra.ExactArgs(2),
			func(cmd *cobra.Command, node *fullnode.Client, args []string) error {
				start, err := parseUint32(args[0], "start height")
				if err != nil {
					return err
				}
				end, err := parseUint32(args[1], "end height")
				if err != nil {
					return err
				}
				return showResponse(cmd)(node.GetBlockRecords(cmd.Context(), start, end))
			}),
		fullNodeCommand("get_additions_and_removals HEADER_HASH", "Get coins created and spent in a block", cobra.ExactArgs(1),
			func(cmd *cobra.Command, node *fullnode.Client, args []string) error {
				headerHash, err := chia.Bytes32FromHex(args[0])
				if err != nil {
					return err
				}
				additions, removals, err := node.GetAdditionsAndRemovals(cmd.Context(), headerHash)
				return showResponse(cmd)(map[string][]chia.CoinRecord{
					"additions": additions,
					"removals":  removals,
				}, err)
			}),
	}
}

func networkSpaceCommands() []*cobra.Command {
	return []*cobra.Command{
		fullNodeCommand("get_network_space OLDER_HEADER_HASH NEWER_HEADER_HASH", "Estimate network space between two blocks", cobra.ExactArgs(2),
			func(cmd *cobra.Command, node *fullnode.Client, args []string) error {
				hashes, err := parseBytes32List(args)
				if err != nil {
					return err
				}
				return showResponse(cmd)(node.GetNetworkSpace(cmd.Context(), hashes[0], hashes[1]))
			}),
		fullNodeCommand("get_network_space_by_height OLDER_HEIGHT NEWER_HEIGHT", "Estimate network space between two block heights", cobra.ExactArgs(2),
			func(cmd *cobra.Command, node *fullnode.Client, args []string) error {
				older, err := parseUint32(args[0], "older height")
				if err != nil {
					return err
				}
				newer, err := parseUint32(args[1], "newer height")
				if err != nil {
					return err
				}
				return showResponse(cmd)(node.GetNetworkSpaceByHeight(cmd.Context(), older, newer))
			}),
	}
}

func signagePointCommand() *cobra.Command {
	var spHash, challengeHash string

	cmd := fullNodeCommand("get_recent_signage_point_or_eos", "Get recent signage point or end of sub-slot", cobra.NoArgs,
		func(cmd *cobra.Command, node *fullnode.Client, args []string) error {
			var sp, challenge *chia.Bytes32
			if spHash != "" {
				parsed, err := chia.Bytes32FromHex(spHash)
				if err != nil {
					return err
				}
				sp = &parsed
			}
			if challengeHash != "" {
				parsed, err := chia.Bytes32FromHex(challengeHash)
				if err != nil {
					return err
				}
				challenge = &parsed
			}
			return showResponse(cmd)(node.GetRecentSignagePointOrEOS(cmd.Context(), sp, challenge))
		})
	cmd.Flags().StringVar(&spHash, "sp-hash", "", "signage point hash")
	cmd.Flags().StringVar(&challengeHash, "challenge-hash", "", "challenge hash of end of sub-slot")
	return cmd
}

func coinCommands() []*cobra.Command {
	var (
		includeSpent bool
		startHeight  uint32
		endHeight    uint32
	)

	filter := func(cmd *cobra.Command) fullnode.CoinRecordsFilter {
		f := fullnode.CoinRecordsFilter{IncludeSpentCoins: includeSpent}
		if cmd.Flags().Changed("start-height") {
			f.StartHeight = &startHeight
		}
		if cmd.Flags().Changed("end-height") {
			f.EndHeight = &endHeight
		}
		return f
	}

	queries := []*cobra.Command{
		fullNodeCommand("get_coin_records_by_puzzle_hash PUZZLE_HASH_OR_ADDRESS", "Get coin records by puzzle hash", cobra.ExactArgs(1),
			func(cmd *cobra.Command, node *fullnode.Client, args []string) error {
				puzzleHash, err := chia.ParsePuzzleHash(args[0])
				if err != nil {
					return err
				}
				return showResponse(cmd)(node.GetCoinRecordsByPuzzleHash(cmd.Context(), puzzleHash, filter(cmd)))
			}),
		fullNodeCommand("get_coin_records_by_puzzle_hashes PUZZLE_HASH_OR_ADDRESS...", "Get coin records by several puzzle hashes", cobra.MinimumNArgs(1),
			func(cmd *cobra.Command, node *fullnode.Client, args []string) error {
				puzzleHashes, err := parsePuzzleHashes(args)
				if err != nil {
					return err
				}
				return showResponse(cmd)(node.GetCoinRecordsByPuzzleHashes(cmd.Context(), puzzleHashes, filter(cmd)))
			}),
		fullNodeCommand("get_coin_records_by_parent_ids PARENT_ID...", "Get coin records by parent coin IDs", cobra.MinimumNArgs(1),
			func(cmd *cobra.Command, node *fullnode.Client, args []string) error {
				parentIDs, err := parseBytes32List(args)
				if err != nil {
					return err
				}
				return showResponse(cmd)(node.GetCoinRecordsByParentIDs(cmd.Context(), parentIDs, filter(cmd)))
			}),
	}
	for _, cmd := range queries {
		cmd.Flags().BoolVar(&includeSpent, "include-spent", false, "include spent coins")
		cmd.Flags().Uint32Var(&startHeight, "start-height", 0, "lowest confirmation height")
		cmd.Flags().Uint32Var(&endHeight, "end-height", 0, "confirmation height upper bound")
	}

	return append(queries,
		fullNodeCommand("get_coin_record_by_name COIN_ID", "Get coin record by coin ID, null if not found", cobra.ExactArgs(1),
			func(cmd *cobra.Command, node *fullnode.Client, args []string) error {
				name, err := chia.Bytes32FromHex(args[0])
				if err != nil {
					return err
				}
				return showResponse(cmd)(node.GetCoinRecordByName(cmd.Context(), name))
			}),
		fullNodeCommand("get_puzzle_and_solution COIN_ID HEIGHT", "Get puzzle and solution of a coin spent at height", cobra.ExactArgs(2),
			func(cmd *cobra.Command, node *fullnode.Client, args []string) error {
				coinID, err := chia.Bytes32FromHex(args[0])
				if err != nil {
					return err
				}
				height, err := parseUint32(args[1], "height")
				if err != nil {
					return err
				}
				return showResponse(cmd)(node.GetPuzzleAndSolution(cmd.Context(), coinID, height))
			}),
		fullNodeCommand("get_coin_spend COIN_ID", "Look up a spent coin and get its spend", cobra.ExactArgs(1),
			func(cmd *cobra.Command, node *fullnode.Client, args []string) error {
				name, err := chia.Bytes32FromHex(args[0])
				if err != nil {
					return err
				}
				record, err := node.GetCoinRecordByName(cmd.Context(), name)
				if err != nil {
					return err
				}
				if record == nil {
					return errors.Errorf("coin %s not found", name)
				}
				return showResponse(cmd)(node.GetCoinSpend(cmd.Context(), record))
			}),
	)
}

func mempoolCommands() []*cobra.Command {
	return []*cobra.Command{
		fullNodeCommand("push_tx SPEND_BUNDLE_JSON", "Submit spend bundle to mempool", cobra.ExactArgs(1),
			func(cmd *cobra.Command, node *fullnode.Client, args []string) error {
				var bundle chia.SpendBundle
				if err := json.Unmarshal([]byte(args[0]), &bundle); err != nil {
					return errors.Wrap(err, "spend bundle is not valid JSON")
				}
				return showResponse(cmd)(node.PushTx(cmd.Context(), &bundle))
			}),
		fullNodeCommand("get_mempool_item_by_tx_id TX_ID", "Get mempool item by transaction ID", cobra.ExactArgs(1),
			func(cmd *cobra.Command, node *fullnode.Client, args []string) error {
				txID, err := chia.Bytes32FromHex(args[0])
				if err != nil {
					return err
				}
				return showResponse(cmd)(node.GetMempoolItemByTxID(cmd.Context(), txID))
			}),
	}
}

func init() {
	commands := map[string]string{
		"get_blockchain_state":         "Get current state of the chain",
		"get_network_info":             "Get network name and address prefix",
		"get_initial_freeze_period":    "Get end timestamp of initial transaction freeze",
		"get_unfinished_block_headers": "Get headers of blocks not yet infused",
		"get_all_mempool_tx_ids":       "Get IDs of all mempool transactions",
		"get_all_mempool_items":        "Get all mempool items",
	}
	for command, description := range commands {
		fullNodeCmd.AddCommand(&cobra.Command{
			Use:   command,
			Short: description,
			Args:  cobra.NoArgs,
			RunE:  runFullNodeInfoCommand,
		})
	}

	fullNodeCmd.AddCommand(blockCommands()...)
	fullNodeCmd.AddCommand(networkSpaceCommands()...)
	fullNodeCmd.AddCommand(signagePointCommand())
	fullNodeCmd.AddCommand(coinCommands()...)
	fullNodeCmd.AddCommand(mempoolCommands()...)
	cli.AddCommand(fullNodeCmd)
}
