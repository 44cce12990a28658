package chia

import (
	"encoding/json"
	"math/big"
)

// BlockRecord is a compact summary of a block kept by full node for every
// block in the chain
type BlockRecord struct {
	HeaderHash                 Bytes32  `json:"header_hash"`
	PrevHash                   Bytes32  `json:"prev_hash"`
	Height                     uint32   `json:"height"`
	Weight                     *big.Int `json:"weight"`
	TotalIters                 *big.Int `json:"total_iters"`
	SignagePointIndex          uint8    `json:"signage_point_index"`
	FarmerPuzzleHash           Bytes32  `json:"farmer_puzzle_hash"`
	PoolPuzzleHash             Bytes32  `json:"pool_puzzle_hash"`
	Deficit                    uint8    `json:"deficit"`
	Overflow                   bool     `json:"overflow"`
	PrevTransactionBlockHeight uint32   `json:"prev_transaction_block_height"`
	PrevTransactionBlockHash   *Bytes32 `json:"prev_transaction_block_hash,omitempty"`
	Timestamp                  *uint64  `json:"timestamp,omitempty"`
	Fees                       *Mojo    `json:"fees,omitempty"`
}

// IsTransactionBlock reports whether block carries transactions. Only
// transaction blocks have a timestamp
func (r *BlockRecord) IsTransactionBlock() bool {
	return r.Timestamp != nil
}

// SyncState is sync part of blockchain state
type SyncState struct {
	SyncMode           bool   `json:"sync_mode"`
	Synced             bool   `json:"synced"`
	SyncTipHeight      uint32 `json:"sync_tip_height"`
	SyncProgressHeight uint32 `json:"sync_progress_height"`
}

// BlockchainState is a snapshot of node view of the chain
type BlockchainState struct {
	Peak                        *BlockRecord `json:"peak"`
	GenesisChallengeInitialized bool         `json:"genesis_challenge_initialized"`
	Sync                        SyncState    `json:"sync"`
	Difficulty                  uint64       `json:"difficulty"`
	SubSlotIters                uint64       `json:"sub_slot_iters"`
	Space                       *big.Int     `json:"space"`
	MempoolSize                 int          `json:"mempool_size"`
}

// RewardChainBlock is the part of full block used to locate it in the chain.
// Proofs and VDF outputs are kept opaque
type RewardChainBlock struct {
	Weight             *big.Int `json:"weight"`
	Height             uint32   `json:"height"`
	TotalIters         *big.Int `json:"total_iters"`
	SignagePointIndex  uint8    `json:"signage_point_index"`
	IsTransactionBlock bool     `json:"is_transaction_block"`
}

// FullBlock is a complete block. Only fields used for navigation are decoded,
// the rest is preserved as raw JSON so blocks can be re-encoded unchanged.
type FullBlock struct {
	HeaderHash                   *Bytes32         `json:"header_hash,omitempty"`
	RewardChainBlock             RewardChainBlock `json:"reward_chain_block"`
	FinishedSubSlots             json.RawMessage  `json:"finished_sub_slots,omitempty"`
	ChallengeChainSPProof        json.RawMessage  `json:"challenge_chain_sp_proof,omitempty"`
	ChallengeChainIPProof        json.RawMessage  `json:"challenge_chain_ip_proof,omitempty"`
	RewardChainSPProof           json.RawMessage  `json:"reward_chain_sp_proof,omitempty"`
	RewardChainIPProof           json.RawMessage  `json:"reward_chain_ip_proof,omitempty"`
	InfusedChallengeChainIPProof json.RawMessage  `json:"infused_challenge_chain_ip_proof,omitempty"`
	Foliage                      json.RawMessage  `json:"foliage,omitempty"`
	FoliageTransactionBlock      json.RawMessage  `json:"foliage_transaction_block,omitempty"`
	TransactionsInfo             json.RawMessage  `json:"transactions_info,omitempty"`
	TransactionsGenerator        *HexBytes        `json:"transactions_generator,omitempty"`
	TransactionsGeneratorRefList []uint32         `json:"transactions_generator_ref_list,omitempty"`
}

// UnfinishedBlock is a header of a block that is not yet infused into the
// chain. Contents are kept opaque
type UnfinishedBlock struct {
	FinishedSubSlots        json.RawMessage `json:"finished_sub_slots,omitempty"`
	RewardChainBlock        json.RawMessage `json:"reward_chain_block,omitempty"`
	ChallengeChainSPProof   json.RawMessage `json:"challenge_chain_sp_proof,omitempty"`
	RewardChainSPProof      json.RawMessage `json:"reward_chain_sp_proof,omitempty"`
	Foliage                 json.RawMessage `json:"foliage,omitempty"`
	FoliageTransactionBlock json.RawMessage `json:"foliage_transaction_block,omitempty"`
	TransactionsFilter      *HexBytes       `json:"transactions_filter,omitempty"`
}

// SignagePointOrEOS is a recent signage point or end of sub-slot bundle as
// seen by full node. Exactly one of SignagePoint and EOS is set, the other
// is nil
type SignagePointOrEOS struct {
	SignagePoint json.RawMessage `json:"signage_point,omitempty"`
	EOS          json.RawMessage `json:"eos,omitempty"`
	TimeReceived float64         `json:"time_received"`
	Reverted     bool            `json:"reverted"`
}

// NetworkInfo identifies the network node is running on
type NetworkInfo struct {
	NetworkName   string `json:"network_name"`
	NetworkPrefix string `json:"network_prefix"`
}
