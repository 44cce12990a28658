package wallet

import (
	"context"

	"github.com/onederx/chia-rpc/chia"
	"github.com/onederx/chia-rpc/rpc"
)

var (
	logInEndpoint            = rpc.Endpoint{Name: "log_in"}
	logInAndSkipEndpoint     = rpc.Endpoint{Name: "log_in_and_skip"}
	getWalletsEndpoint       = rpc.Endpoint{Name: "get_wallets"}
	getWalletBalanceEndpoint = rpc.Endpoint{Name: "get_wallet_balance"}
	getSyncStatusEndpoint    = rpc.Endpoint{Name: "get_sync_status"}
)

type logInPayload struct {
	rpc.Envelope
	Fingerprint *uint32 `json:"fingerprint"`
}

type walletsPayload struct {
	rpc.Envelope
	Wallets *[]chia.WalletInfo `json:"wallets"`
}

// wallet service sends a single "wallet_balance" object, older versions sent
// a "wallets" list
type walletBalancePayload struct {
	rpc.Envelope
	WalletBalance *chia.WalletBalance   `json:"wallet_balance"`
	Wallets       *[]chia.WalletBalance `json:"wallets"`
}

type syncStatusPayload struct {
	rpc.Envelope
	GenesisInitialized *bool `json:"genesis_initialized"`
	Synced             *bool `json:"synced"`
	Syncing            *bool `json:"syncing"`
}

func extractFingerprint(p *logInPayload) (uint32, error) {
	return rpc.Field("fingerprint", p.Fingerprint)
}

// LogIn selects key with given fingerprint in wallet service and returns
// fingerprint of the key logged in with
func (cli *Client) LogIn(ctx context.Context, fingerprint uint32) (uint32, error) {
	params := rpc.Params{"wallet_fingerprint": fingerprint}
	return rpc.Call[logInPayload](ctx, cli.caller, logInEndpoint, params, extractFingerprint)
}

// LogInAndSkip is LogIn that skips importing wallet from backup
func (cli *Client) LogInAndSkip(ctx context.Context, fingerprint uint32) (uint32, error) {
	params := rpc.Params{"wallet_fingerprint": fingerprint}
	return rpc.Call[logInPayload](ctx, cli.caller, logInAndSkipEndpoint, params, extractFingerprint)
}

func (cli *Client) GetWallets(ctx context.Context) ([]chia.WalletInfo, error) {
	return rpc.Call[walletsPayload](ctx, cli.caller, getWalletsEndpoint, nil,
		func(p *walletsPayload) ([]chia.WalletInfo, error) {
			return rpc.Field("wallets", p.Wallets)
		})
}

func (cli *Client) GetWalletBalance(ctx context.Context, walletID uint32) ([]chia.WalletBalance, error) {
	params := rpc.Params{"wallet_id": walletID}
	return rpc.Call[walletBalancePayload](ctx, cli.caller, getWalletBalanceEndpoint, params,
		func(p *walletBalancePayload) ([]chia.WalletBalance, error) {
			if p.WalletBalance != nil {
				return []chia.WalletBalance{*p.WalletBalance}, nil
			}
			return rpc.Field("wallet_balance", p.Wallets)
		})
}

func (cli *Client) GetSyncStatus(ctx context.Context) (*chia.WalletSync, error) {
	return rpc.Call[syncStatusPayload](ctx, cli.caller, getSyncStatusEndpoint, nil,
		func(p *syncStatusPayload) (*chia.WalletSync, error) {
			var (
				status chia.WalletSync
				err    error
			)
			if status.GenesisInitialized, err = rpc.Field("genesis_initialized", p.GenesisInitialized); err != nil {
				return nil, err
			}
			if status.Synced, err = rpc.Field("synced", p.Synced); err != nil {
				return nil, err
			}
			if status.Syncing, err = rpc.Field("syncing", p.Syncing); err != nil {
				return nil, err
			}
			return &status, nil
		})
}
