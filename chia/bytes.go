package chia

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Bytes32 is a 32 byte identifier: header hash, puzzle hash, coin id etc.
// RPC services encode it as a "0x"-prefixed hex string, prefix is optional
// when parsing.
type Bytes32 [32]byte

// Bytes32FromHex parses a hex string with or without "0x" prefix
func Bytes32FromHex(s string) (Bytes32, error) {
	var result Bytes32

	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"))
	if err != nil {
		return result, fmt.Errorf("failed to decode %q as hex: %s", s, err)
	}
	if len(raw) != len(result) {
		return result, fmt.Errorf(
			"expected %d bytes in %q, got %d", len(result), s, len(raw),
		)
	}
	copy(result[:], raw)
	return result, nil
}

// MustBytes32FromHex is a version of Bytes32FromHex that panics in case of
// error. Intended for constants and tests
func MustBytes32FromHex(s string) Bytes32 {
	result, err := Bytes32FromHex(s)
	if err != nil {
		panic(err)
	}
	return result
}

func (b Bytes32) String() string {
	return "0x" + hex.EncodeToString(b[:])
}

// IsZero reports whether all bytes are zero
func (b Bytes32) IsZero() bool {
	return b == Bytes32{}
}

func (b Bytes32) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *Bytes32) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Bytes32FromHex(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// HexBytes is a variable length byte string transferred as "0x"-prefixed hex:
// serialized programs, signatures, public keys
type HexBytes []byte

func (b HexBytes) String() string {
	return "0x" + hex.EncodeToString(b)
}

func (b HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return fmt.Errorf("failed to decode %q as hex: %s", s, err)
	}
	*b = raw
	return nil
}
