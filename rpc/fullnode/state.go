package fullnode

import (
	"context"
	"math/big"

	"github.com/onederx/chia-rpc/chia"
	"github.com/onederx/chia-rpc/rpc"
)

var (
	getBlockchainStateEndpoint     = rpc.Endpoint{Name: "get_blockchain_state"}
	getNetworkInfoEndpoint         = rpc.Endpoint{Name: "get_network_info"}
	getInitialFreezePeriodEndpoint = rpc.Endpoint{Name: "get_initial_freeze_period"}
	getNetworkSpaceEndpoint        = rpc.Endpoint{Name: "get_network_space"}
)

type blockchainStatePayload struct {
	rpc.Envelope
	BlockchainState *chia.BlockchainState `json:"blockchain_state"`
}

type networkInfoPayload struct {
	rpc.Envelope
	NetworkName   *string `json:"network_name"`
	NetworkPrefix *string `json:"network_prefix"`
}

type initialFreezePeriodPayload struct {
	rpc.Envelope
	InitialFreezeEndTimestamp *uint64 `json:"initial_freeze_end_timestamp"`
}

type networkSpacePayload struct {
	rpc.Envelope
	Space *big.Int `json:"space"`
}

// GetBlockchainState returns current state of the chain as seen by node:
// peak, sync status, difficulty and estimated network space
func (cli *Client) GetBlockchainState(ctx context.Context) (*chia.BlockchainState, error) {
	return rpc.Call[blockchainStatePayload](ctx, cli.caller, getBlockchainStateEndpoint, nil,
		func(p *blockchainStatePayload) (*chia.BlockchainState, error) {
			if p.BlockchainState == nil {
				return nil, &rpc.MissingFieldError{Field: "blockchain_state"}
			}
			return p.BlockchainState, nil
		})
}

func (cli *Client) GetNetworkInfo(ctx context.Context) (*chia.NetworkInfo, error) {
	return rpc.Call[networkInfoPayload](ctx, cli.caller, getNetworkInfoEndpoint, nil,
		func(p *networkInfoPayload) (*chia.NetworkInfo, error) {
			name, err := rpc.Field("network_name", p.NetworkName)
			if err != nil {
				return nil, err
			}
			prefix, err := rpc.Field("network_prefix", p.NetworkPrefix)
			if err != nil {
				return nil, err
			}
			return &chia.NetworkInfo{NetworkName: name, NetworkPrefix: prefix}, nil
		})
}

// GetInitialFreezePeriod returns unix timestamp of the end of initial
// transaction freeze period
func (cli *Client) GetInitialFreezePeriod(ctx context.Context) (uint64, error) {
	return rpc.Call[initialFreezePeriodPayload](ctx, cli.caller, getInitialFreezePeriodEndpoint, nil,
		func(p *initialFreezePeriodPayload) (uint64, error) {
			return rpc.Field("initial_freeze_end_timestamp", p.InitialFreezeEndTimestamp)
		})
}

// GetNetworkSpace returns estimated network space in bytes between two
// blocks identified by header hashes
func (cli *Client) GetNetworkSpace(ctx context.Context, olderBlockHeaderHash, newerBlockHeaderHash chia.Bytes32) (*big.Int, error) {
	params := rpc.Params{
		"older_block_header_hash": olderBlockHeaderHash,
		"newer_block_header_hash": newerBlockHeaderHash,
	}
	return rpc.Call[networkSpacePayload](ctx, cli.caller, getNetworkSpaceEndpoint, params,
		func(p *networkSpacePayload) (*big.Int, error) {
			if p.Space == nil {
				return nil, &rpc.MissingFieldError{Field: "space"}
			}
			return p.Space, nil
		})
}

// GetNetworkSpaceByHeight resolves both heights to block records and returns
// network space between them. Calls are made one after another, first failure
// fails the whole operation.
func (cli *Client) GetNetworkSpaceByHeight(ctx context.Context, olderBlockHeight, newerBlockHeight uint32) (*big.Int, error) {
	olderBlock, err := cli.GetBlockRecordByHeight(ctx, olderBlockHeight)
	if err != nil {
		return nil, err
	}
	newerBlock, err := cli.GetBlockRecordByHeight(ctx, newerBlockHeight)
	if err != nil {
		return nil, err
	}
	return cli.GetNetworkSpace(ctx, olderBlock.HeaderHash, newerBlock.HeaderHash)
}
