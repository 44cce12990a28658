package fullnode

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/onederx/chia-rpc/chia"
	"github.com/onederx/chia-rpc/rpc"
)

var (
	getBlockEndpoint                   = rpc.Endpoint{Name: "get_block"}
	getBlocksEndpoint                  = rpc.Endpoint{Name: "get_blocks"}
	getBlockRecordByHeightEndpoint     = rpc.Endpoint{Name: "get_block_record_by_height"}
	getBlockRecordEndpoint             = rpc.Endpoint{Name: "get_block_record"}
	getBlockRecordsEndpoint            = rpc.Endpoint{Name: "get_block_records"}
	getUnfinishedBlockHeadersEndpoint  = rpc.Endpoint{Name: "get_unfinished_block_headers"}
	getRecentSignagePointOrEOSEndpoint = rpc.Endpoint{Name: "get_recent_signage_point_or_eos"}
	getAdditionsAndRemovalsEndpoint    = rpc.Endpoint{Name: "get_additions_and_removals"}
)

type blockPayload struct {
	rpc.Envelope
	Block *chia.FullBlock `json:"block"`
}

type blocksPayload struct {
	rpc.Envelope
	Blocks *[]chia.FullBlock `json:"blocks"`
}

type blockRecordPayload struct {
	rpc.Envelope
	BlockRecord *chia.BlockRecord `json:"block_record"`
}

type blockRecordsPayload struct {
	rpc.Envelope
	BlockRecords *[]chia.BlockRecord `json:"block_records"`
}

type unfinishedBlockHeadersPayload struct {
	rpc.Envelope
	Headers *[]chia.UnfinishedBlock `json:"headers"`
}

type signagePointOrEOSPayload struct {
	rpc.Envelope
	SignagePoint json.RawMessage `json:"signage_point"`
	EOS          json.RawMessage `json:"eos"`
	TimeReceived *float64        `json:"time_received"`
	Reverted     *bool           `json:"reverted"`
}

type additionsAndRemovalsPayload struct {
	rpc.Envelope
	Additions *[]chia.CoinRecord `json:"additions"`
	Removals  *[]chia.CoinRecord `json:"removals"`
}

func extractBlockRecord(p *blockRecordPayload) (*chia.BlockRecord, error) {
	if p.BlockRecord == nil {
		return nil, &rpc.MissingFieldError{Field: "block_record"}
	}
	return p.BlockRecord, nil
}

// GetBlock returns full block by its header hash
func (cli *Client) GetBlock(ctx context.Context, headerHash chia.Bytes32) (*chia.FullBlock, error) {
	params := rpc.Params{"header_hash": headerHash}
	return rpc.Call[blockPayload](ctx, cli.caller, getBlockEndpoint, params,
		func(p *blockPayload) (*chia.FullBlock, error) {
			if p.Block == nil {
				return nil, &rpc.MissingFieldError{Field: "block"}
			}
			return p.Block, nil
		})
}

// GetBlocks returns full blocks with heights in [start, end). With
// excludeHeaderHash node omits header_hash from returned blocks.
func (cli *Client) GetBlocks(ctx context.Context, start, end uint32, excludeHeaderHash bool) ([]chia.FullBlock, error) {
	params := rpc.Params{
		"start":               start,
		"end":                 end,
		"exclude_header_hash": excludeHeaderHash,
	}
	return rpc.Call[blocksPayload](ctx, cli.caller, getBlocksEndpoint, params,
		func(p *blocksPayload) ([]chia.FullBlock, error) {
			return rpc.Field("blocks", p.Blocks)
		})
}

// GetAllBlocks is GetBlocks with header hashes excluded
func (cli *Client) GetAllBlocks(ctx context.Context, start, end uint32) ([]chia.FullBlock, error) {
	return cli.GetBlocks(ctx, start, end, true)
}

func (cli *Client) GetBlockRecordByHeight(ctx context.Context, height uint32) (*chia.BlockRecord, error) {
	params := rpc.Params{"height": height}
	return rpc.Call[blockRecordPayload](ctx, cli.caller, getBlockRecordByHeightEndpoint, params, extractBlockRecord)
}

func (cli *Client) GetBlockRecord(ctx context.Context, headerHash chia.Bytes32) (*chia.BlockRecord, error) {
	params := rpc.Params{"header_hash": headerHash}
	return rpc.Call[blockRecordPayload](ctx, cli.caller, getBlockRecordEndpoint, params, extractBlockRecord)
}

// GetBlockRecords returns block records with heights in [start, end)
func (cli *Client) GetBlockRecords(ctx context.Context, start, end uint32) ([]chia.BlockRecord, error) {
	params := rpc.Params{"start": start, "end": end}
	return rpc.Call[blockRecordsPayload](ctx, cli.caller, getBlockRecordsEndpoint, params,
		func(p *blockRecordsPayload) ([]chia.BlockRecord, error) {
			return rpc.Field("block_records", p.BlockRecords)
		})
}

func (cli *Client) GetUnfinishedBlockHeaders(ctx context.Context) ([]chia.UnfinishedBlock, error) {
	return rpc.Call[unfinishedBlockHeadersPayload](ctx, cli.caller, getUnfinishedBlockHeadersEndpoint, nil,
		func(p *unfinishedBlockHeadersPayload) ([]chia.UnfinishedBlock, error) {
			return rpc.Field("headers", p.Headers)
		})
}

// GetRecentSignagePointOrEOS looks up a recent signage point by its hash or an
// end of sub-slot bundle by its challenge hash. Exactly one of spHash and
// challengeHash must be given, otherwise InvalidArgumentError is returned
// without contacting the node.
func (cli *Client) GetRecentSignagePointOrEOS(ctx context.Context, spHash, challengeHash *chia.Bytes32) (*chia.SignagePointOrEOS, error) {
	ep := getRecentSignagePointOrEOSEndpoint
	params := rpc.Params{}

	switch {
	case spHash != nil && challengeHash != nil:
		return nil, &rpc.InvalidArgumentError{
			Endpoint: ep.Name,
			Reason:   "only one of sp_hash and challenge_hash may be set",
		}
	case spHash != nil:
		params["sp_hash"] = *spHash
	case challengeHash != nil:
		params["challenge_hash"] = *challengeHash
	default:
		return nil, &rpc.InvalidArgumentError{
			Endpoint: ep.Name,
			Reason:   "one of sp_hash and challenge_hash must be set",
		}
	}

	return rpc.Call[signagePointOrEOSPayload](ctx, cli.caller, ep, params,
		func(p *signagePointOrEOSPayload) (*chia.SignagePointOrEOS, error) {
			timeReceived, err := rpc.Field("time_received", p.TimeReceived)
			if err != nil {
				return nil, err
			}
			reverted, err := rpc.Field("reverted", p.Reverted)
			if err != nil {
				return nil, err
			}
			return &chia.SignagePointOrEOS{
				SignagePoint: nonNull(p.SignagePoint),
				EOS:          nonNull(p.EOS),
				TimeReceived: timeReceived,
				Reverted:     reverted,
			}, nil
		})
}

// GetAdditionsAndRemovals returns coins created and spent in a block
func (cli *Client) GetAdditionsAndRemovals(ctx context.Context, headerHash chia.Bytes32) (additions, removals []chia.CoinRecord, err error) {
	type result struct {
		additions, removals []chia.CoinRecord
	}

	params := rpc.Params{"header_hash": headerHash}
	r, err := rpc.Call[additionsAndRemovalsPayload](ctx, cli.caller, getAdditionsAndRemovalsEndpoint, params,
		func(p *additionsAndRemovalsPayload) (result, error) {
			additions, err := rpc.Field("additions", p.Additions)
			if err != nil {
				return result{}, err
			}
			removals, err := rpc.Field("removals", p.Removals)
			if err != nil {
				return result{}, err
			}
			return result{additions, removals}, nil
		})
	return r.additions, r.removals, err
}

var jsonNull = []byte("null")

func nonNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		return nil
	}
	return raw
}
