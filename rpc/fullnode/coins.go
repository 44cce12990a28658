package fullnode

import (
	"context"

	"github.com/onederx/chia-rpc/chia"
	"github.com/onederx/chia-rpc/rpc"
)

var (
	getCoinRecordsByPuzzleHashEndpoint   = rpc.Endpoint{Name: "get_coin_records_by_puzzle_hash"}
	getCoinRecordsByPuzzleHashesEndpoint = rpc.Endpoint{Name: "get_coin_records_by_puzzle_hashes"}
	getCoinRecordsByParentIDsEndpoint    = rpc.Endpoint{Name: "get_coin_records_by_parent_ids"}
	getPuzzleAndSolutionEndpoint         = rpc.Endpoint{Name: "get_puzzle_and_solution"}

	// node reports unknown coin as a failure, so failure means "not found" here
	getCoinRecordByNameEndpoint = rpc.Endpoint{Name: "get_coin_record_by_name", AbsentOnFailure: true}
)

// CoinRecordsFilter narrows coin record queries. Nil heights are not sent and
// node defaults apply: whole chain.
type CoinRecordsFilter struct {
	IncludeSpentCoins bool
	StartHeight       *uint32
	EndHeight         *uint32
}

func (f CoinRecordsFilter) apply(params rpc.Params) rpc.Params {
	params["include_spent_coins"] = f.IncludeSpentCoins
	if f.StartHeight != nil {
		params["start_height"] = *f.StartHeight
	}
	if f.EndHeight != nil {
		params["end_height"] = *f.EndHeight
	}
	return params
}

type coinRecordsPayload struct {
	rpc.Envelope
	CoinRecords *[]chia.CoinRecord `json:"coin_records"`
}

type coinRecordPayload struct {
	rpc.Envelope
	CoinRecord *chia.CoinRecord `json:"coin_record"`
}

type coinSpendPayload struct {
	rpc.Envelope
	CoinSolution *chia.CoinSpend `json:"coin_solution"`
}

func extractCoinRecords(p *coinRecordsPayload) ([]chia.CoinRecord, error) {
	return rpc.Field("coin_records", p.CoinRecords)
}

func (cli *Client) GetCoinRecordsByPuzzleHash(ctx context.Context, puzzleHash chia.Bytes32, filter CoinRecordsFilter) ([]chia.CoinRecord, error) {
	params := filter.apply(rpc.Params{"puzzle_hash": puzzleHash})
	return rpc.Call[coinRecordsPayload](ctx, cli.caller, getCoinRecordsByPuzzleHashEndpoint, params, extractCoinRecords)
}

func (cli *Client) GetCoinRecordsByPuzzleHashes(ctx context.Context, puzzleHashes []chia.Bytes32, filter CoinRecordsFilter) ([]chia.CoinRecord, error) {
	if puzzleHashes == nil {
		puzzleHashes = []chia.Bytes32{}
	}
	params := filter.apply(rpc.Params{"puzzle_hashes": puzzleHashes})
	return rpc.Call[coinRecordsPayload](ctx, cli.caller, getCoinRecordsByPuzzleHashesEndpoint, params, extractCoinRecords)
}

func (cli *Client) GetCoinRecordsByParentIDs(ctx context.Context, parentIDs []chia.Bytes32, filter CoinRecordsFilter) ([]chia.CoinRecord, error) {
	if parentIDs == nil {
		parentIDs = []chia.Bytes32{}
	}
	params := filter.apply(rpc.Params{"parent_ids": parentIDs})
	return rpc.Call[coinRecordsPayload](ctx, cli.caller, getCoinRecordsByParentIDsEndpoint, params, extractCoinRecords)
}

// GetCoinRecordByName returns coin record by coin ID. Unknown coin yields
// nil record and nil error.
func (cli *Client) GetCoinRecordByName(ctx context.Context, name chia.Bytes32) (*chia.CoinRecord, error) {
	params := rpc.Params{"name": name}
	return rpc.Call[coinRecordPayload](ctx, cli.caller, getCoinRecordByNameEndpoint, params,
		func(p *coinRecordPayload) (*chia.CoinRecord, error) {
			return p.CoinRecord, nil
		})
}

// GetPuzzleAndSolution returns puzzle reveal and solution of coin spent at
// given height
func (cli *Client) GetPuzzleAndSolution(ctx context.Context, coinID chia.Bytes32, height uint32) (*chia.CoinSpend, error) {
	params := rpc.Params{"coin_id": coinID, "height": height}
	return rpc.Call[coinSpendPayload](ctx, cli.caller, getPuzzleAndSolutionEndpoint, params,
		func(p *coinSpendPayload) (*chia.CoinSpend, error) {
			if p.CoinSolution == nil {
				return nil, &rpc.MissingFieldError{Field: "coin_solution"}
			}
			return p.CoinSolution, nil
		})
}

// GetCoinSpend returns spend of a coin described by a spent coin record
func (cli *Client) GetCoinSpend(ctx context.Context, record *chia.CoinRecord) (*chia.CoinSpend, error) {
	if record == nil {
		return nil, &rpc.InvalidArgumentError{
			Endpoint: getPuzzleAndSolutionEndpoint.Name,
			Reason:   "no coin record given",
		}
	}
	coinID := record.Coin.Name()
	if record.SpentBlockIndex == 0 {
		return nil, &rpc.InvalidArgumentError{
			Endpoint: getPuzzleAndSolutionEndpoint.Name,
			Reason:   "coin " + coinID.String() + " is not spent",
		}
	}
	return cli.GetPuzzleAndSolution(ctx, coinID, record.SpentBlockIndex)
}
