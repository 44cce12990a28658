package wallet

import (
	"context"

	"github.com/onederx/chia-rpc/chia"
	"github.com/onederx/chia-rpc/rpc"
)

var (
	sendTransactionEndpoint         = rpc.Endpoint{Name: "send_transaction"}
	sendTransactionMultiEndpoint    = rpc.Endpoint{Name: "send_transaction_multi"}
	getTransactionEndpoint          = rpc.Endpoint{Name: "get_transaction"}
	createSignedTransactionEndpoint = rpc.Endpoint{Name: "create_signed_transaction"}
)

type transactionPayload struct {
	rpc.Envelope
	Transaction *chia.TransactionRecord `json:"transaction"`
}

type signedTransactionPayload struct {
	rpc.Envelope
	SignedTx *chia.TransactionRecord `json:"signed_tx"`
}

func extractTransaction(p *transactionPayload) (*chia.TransactionRecord, error) {
	if p.Transaction == nil {
		return nil, &rpc.MissingFieldError{Field: "transaction"}
	}
	return p.Transaction, nil
}

// SendTransaction sends amount from wallet to address. Address must be a
// valid bech32m address, it is checked before contacting the wallet.
func (cli *Client) SendTransaction(ctx context.Context, walletID uint32, amount chia.Mojo, address string, fee chia.Mojo) (*chia.TransactionRecord, error) {
	if _, _, err := chia.DecodeAddress(address); err != nil {
		return nil, &rpc.InvalidArgumentError{
			Endpoint: sendTransactionEndpoint.Name,
			Reason:   err.Error(),
		}
	}
	params := rpc.Params{
		"wallet_id": walletID,
		"amount":    amount,
		"address":   address,
		"fee":       fee,
	}
	return rpc.Call[transactionPayload](ctx, cli.caller, sendTransactionEndpoint, params, extractTransaction)
}

// SendTransactionMulti sends a single transaction paying to several puzzle
// hashes
func (cli *Client) SendTransactionMulti(ctx context.Context, walletID uint32, additions []chia.PendingPayment, fee chia.Mojo) (*chia.TransactionRecord, error) {
	if len(additions) == 0 {
		return nil, &rpc.InvalidArgumentError{
			Endpoint: sendTransactionMultiEndpoint.Name,
			Reason:   "no payments given",
		}
	}
	params := rpc.Params{
		"wallet_id": walletID,
		"additions": additions,
		"fee":       fee,
	}
	return rpc.Call[transactionPayload](ctx, cli.caller, sendTransactionMultiEndpoint, params, extractTransaction)
}

func (cli *Client) GetTransaction(ctx context.Context, walletID uint32, transactionID chia.Bytes32) (*chia.TransactionRecord, error) {
	params := rpc.Params{
		"wallet_id":      walletID,
		"transaction_id": transactionID,
	}
	return rpc.Call[transactionPayload](ctx, cli.caller, getTransactionEndpoint, params, extractTransaction)
}

// CreateSignedTransaction builds and signs a transaction paying additions
// without submitting it. When coins is empty wallet selects coins itself.
func (cli *Client) CreateSignedTransaction(ctx context.Context, walletID uint32, additions []chia.PendingPayment, coins []chia.Coin, fee chia.Mojo) (*chia.TransactionRecord, error) {
	if len(additions) == 0 {
		return nil, &rpc.InvalidArgumentError{
			Endpoint: createSignedTransactionEndpoint.Name,
			Reason:   "no payments given",
		}
	}
	params := rpc.Params{
		"wallet_id": walletID,
		"additions": additions,
		"fee":       fee,
	}
	if len(coins) > 0 {
		params["coins"] = coins
	}
	return rpc.Call[signedTransactionPayload](ctx, cli.caller, createSignedTransactionEndpoint, params,
		func(p *signedTransactionPayload) (*chia.TransactionRecord, error) {
			if p.SignedTx == nil {
				return nil, &rpc.MissingFieldError{Field: "signed_tx"}
			}
			return p.SignedTx, nil
		})
}
