package chia

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Address prefixes of known networks
const (
	MainnetAddressPrefix = "xch"
	TestnetAddressPrefix = "txch"
)

// EncodeAddress encodes puzzle hash as a bech32m address with given prefix
// (human readable part), e.g. "xch1..."
func EncodeAddress(puzzleHash Bytes32, prefix string) (string, error) {
	converted, err := bech32.ConvertBits(puzzleHash[:], 8, 5, true)
	if err != nil {
		return "", err
	}
	return bech32.EncodeM(prefix, converted)
}

// DecodeAddress decodes bech32m address into its prefix and puzzle hash.
// Addresses encoded with original bech32 checksum are rejected.
func DecodeAddress(address string) (prefix string, puzzleHash Bytes32, err error) {
	hrp, data, version, err := bech32.DecodeGeneric(address)
	if err != nil {
		return "", puzzleHash, fmt.Errorf("failed to decode address %q: %s", address, err)
	}
	if version != bech32.VersionM {
		return "", puzzleHash, fmt.Errorf("address %q is not bech32m encoded", address)
	}
	converted, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", puzzleHash, fmt.Errorf("failed to decode address %q: %s", address, err)
	}
	if len(converted) != len(puzzleHash) {
		return "", puzzleHash, fmt.Errorf(
			"address %q holds %d bytes, expected %d",
			address, len(converted), len(puzzleHash),
		)
	}
	copy(puzzleHash[:], converted)
	return hrp, puzzleHash, nil
}

// ParsePuzzleHash accepts either a hex puzzle hash or an address
func ParsePuzzleHash(s string) (Bytes32, error) {
	if ph, err := Bytes32FromHex(s); err == nil {
		return ph, nil
	}
	_, ph, err := DecodeAddress(s)
	return ph, err
}
