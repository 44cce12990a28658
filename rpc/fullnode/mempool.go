package fullnode

import (
	"context"

	"github.com/onederx/chia-rpc/chia"
	"github.com/onederx/chia-rpc/rpc"
)

var (
	pushTxEndpoint               = rpc.Endpoint{Name: "push_tx"}
	getAllMempoolTxIDsEndpoint   = rpc.Endpoint{Name: "get_all_mempool_tx_ids"}
	getAllMempoolItemsEndpoint   = rpc.Endpoint{Name: "get_all_mempool_items"}
	getMempoolItemByTxIDEndpoint = rpc.Endpoint{Name: "get_mempool_item_by_tx_id"}
)

type pushTxPayload struct {
	rpc.Envelope
	Status *chia.TXStatus `json:"status"`
}

type mempoolTxIDsPayload struct {
	rpc.Envelope
	TxIDs *[]chia.Bytes32 `json:"tx_ids"`
}

type mempoolItemsPayload struct {
	rpc.Envelope
	MempoolItems *map[string]chia.MempoolItem `json:"mempool_items"`
}

type mempoolItemPayload struct {
	rpc.Envelope
	MempoolItem *chia.MempoolItem `json:"mempool_item"`
}

// PushTx submits spend bundle to node mempool. Submitting the same bundle
// twice is not detected here.
func (cli *Client) PushTx(ctx context.Context, spendBundle *chia.SpendBundle) (chia.TXStatus, error) {
	params := rpc.Params{"spend_bundle": spendBundle}
	return rpc.Call[pushTxPayload](ctx, cli.caller, pushTxEndpoint, params,
		func(p *pushTxPayload) (chia.TXStatus, error) {
			return rpc.Field("status", p.Status)
		})
}

// GetAllMempoolTxIDs returns spend bundle names of all mempool items
func (cli *Client) GetAllMempoolTxIDs(ctx context.Context) ([]chia.Bytes32, error) {
	return rpc.Call[mempoolTxIDsPayload](ctx, cli.caller, getAllMempoolTxIDsEndpoint, nil,
		func(p *mempoolTxIDsPayload) ([]chia.Bytes32, error) {
			return rpc.Field("tx_ids", p.TxIDs)
		})
}

// GetAllMempoolItems returns mempool items keyed by transaction ID as sent by
// node (0x-prefixed hex)
func (cli *Client) GetAllMempoolItems(ctx context.Context) (map[string]chia.MempoolItem, error) {
	return rpc.Call[mempoolItemsPayload](ctx, cli.caller, getAllMempoolItemsEndpoint, nil,
		func(p *mempoolItemsPayload) (map[string]chia.MempoolItem, error) {
			return rpc.Field("mempool_items", p.MempoolItems)
		})
}

func (cli *Client) GetMempoolItemByTxID(ctx context.Context, txID chia.Bytes32) (*chia.MempoolItem, error) {
	params := rpc.Params{"tx_id": txID}
	return rpc.Call[mempoolItemPayload](ctx, cli.caller, getMempoolItemByTxIDEndpoint, params,
		func(p *mempoolItemPayload) (*chia.MempoolItem, error) {
			if p.MempoolItem == nil {
				return nil, &rpc.MissingFieldError{Field: "mempool_item"}
			}
			return p.MempoolItem, nil
		})
}
