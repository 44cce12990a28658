package chia

import "encoding/json"

// MempoolItem is a pending transaction tracked by full node
type MempoolItem struct {
	SpendBundle     SpendBundle     `json:"spend_bundle"`
	Fee             Mojo            `json:"fee"`
	NPCResult       json.RawMessage `json:"npc_result,omitempty"`
	Cost            uint64          `json:"cost"`
	SpendBundleName Bytes32         `json:"spend_bundle_name"`
	Additions       []Coin          `json:"additions"`
	Removals        []Coin          `json:"removals"`
}
