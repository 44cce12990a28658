package chia

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Coin is an unspent or spent output: amount locked by a puzzle, created by
// spending a parent coin
type Coin struct {
	ParentCoinInfo Bytes32 `json:"parent_coin_info"`
	PuzzleHash     Bytes32 `json:"puzzle_hash"`
	Amount         Mojo    `json:"amount"`
}

// Name computes coin id: sha256 of parent coin id, puzzle hash and amount
// serialized as a minimal big-endian signed integer. This is the value
// expected by endpoints taking coin_id / name arguments.
func (c *Coin) Name() Bytes32 {
	buf := make([]byte, 0, 2*len(Bytes32{})+9)
	buf = append(buf, c.ParentCoinInfo[:]...)
	buf = append(buf, c.PuzzleHash[:]...)
	buf = append(buf, intToBytes(uint64(c.Amount))...)

	var name Bytes32
	copy(name[:], chainhash.HashB(buf))
	return name
}

// intToBytes serializes unsigned value as the shortest big-endian two's
// complement byte string. Zero is an empty string, values with the high bit
// set get a leading zero byte so they stay positive.
func intToBytes(v uint64) []byte {
	if v == 0 {
		return []byte{}
	}
	var raw [9]byte
	i := len(raw)
	for v > 0 {
		i--
		raw[i] = byte(v)
		v >>= 8
	}
	if raw[i]&0x80 != 0 {
		i--
		raw[i] = 0
	}
	return append([]byte{}, raw[i:]...)
}

// CoinRecord is a coin together with its confirmation and spend state as
// tracked by full node
type CoinRecord struct {
	Coin                Coin   `json:"coin"`
	ConfirmedBlockIndex uint32 `json:"confirmed_block_index"`
	SpentBlockIndex     uint32 `json:"spent_block_index"`
	Spent               bool   `json:"spent"`
	Coinbase            bool   `json:"coinbase"`
	Timestamp           uint64 `json:"timestamp"`
}

// CoinSpend is a coin with the puzzle that locks it and the solution used to
// spend it. Programs are opaque serialized CLVM
type CoinSpend struct {
	Coin         Coin     `json:"coin"`
	PuzzleReveal HexBytes `json:"puzzle_reveal"`
	Solution     HexBytes `json:"solution"`
}

// SpendBundle is a signed set of coin spends submitted to the mempool
type SpendBundle struct {
	CoinSpends          []CoinSpend `json:"coin_spends"`
	AggregatedSignature HexBytes    `json:"aggregated_signature"`
}

// TXStatus is the mempool inclusion status returned on transaction push
type TXStatus string

// Possible values of TXStatus
const (
	TXStatusSuccess TXStatus = "SUCCESS"
	TXStatusPending TXStatus = "PENDING"
	TXStatusFailed  TXStatus = "FAILED"
)
