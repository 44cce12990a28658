package chia

import "encoding/json"

// WalletInfo describes one of wallets managed by wallet service
type WalletInfo struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
	Type int    `json:"type"`
	Data string `json:"data"`
}

// WalletBalance is a balance summary of a single wallet
type WalletBalance struct {
	WalletID                 uint32 `json:"wallet_id"`
	ConfirmedWalletBalance   Mojo   `json:"confirmed_wallet_balance"`
	UnconfirmedWalletBalance Mojo   `json:"unconfirmed_wallet_balance"`
	SpendableBalance         Mojo   `json:"spendable_balance"`
	PendingChange            Mojo   `json:"pending_change"`
	MaxSendAmount            Mojo   `json:"max_send_amount"`
	UnspentCoinCount         uint32 `json:"unspent_coin_count"`
	PendingCoinRemovalCount  uint32 `json:"pending_coin_removal_count"`
}

// WalletSync is sync status of wallet service
type WalletSync struct {
	GenesisInitialized bool `json:"genesis_initialized"`
	Synced             bool `json:"synced"`
	Syncing            bool `json:"syncing"`
}

// PendingPayment is one output of a multi-output payment
type PendingPayment struct {
	PuzzleHash Bytes32 `json:"puzzle_hash"`
	Amount     Mojo    `json:"amount"`
}

// TransactionRecord is wallet view of an incoming or outgoing transaction
type TransactionRecord struct {
	ConfirmedAtHeight uint32          `json:"confirmed_at_height"`
	CreatedAtTime     uint64          `json:"created_at_time"`
	ToPuzzleHash      Bytes32         `json:"to_puzzle_hash"`
	ToAddress         string          `json:"to_address,omitempty"`
	Amount            Mojo            `json:"amount"`
	FeeAmount         Mojo            `json:"fee_amount"`
	Confirmed         bool            `json:"confirmed"`
	Sent              uint32          `json:"sent"`
	SpendBundle       *SpendBundle    `json:"spend_bundle,omitempty"`
	Additions         []Coin          `json:"additions"`
	Removals          []Coin          `json:"removals"`
	WalletID          uint32          `json:"wallet_id"`
	SentTo            json.RawMessage `json:"sent_to,omitempty"`
	TradeID           *Bytes32        `json:"trade_id,omitempty"`
	Type              uint32          `json:"type"`
	Name              Bytes32         `json:"name"`
}
