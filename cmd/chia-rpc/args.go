package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/onederx/chia-rpc/chia"
)

func parseUint32(value, name string) (uint32, error) {
	parsed, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s %q", name, value)
	}
	return uint32(parsed), nil
}

func parseBytes32List(values []string) ([]chia.Bytes32, error) {
	result := make([]chia.Bytes32, 0, len(values))
	for _, value := range values {
		parsed, err := chia.Bytes32FromHex(value)
		if err != nil {
			return nil, err
		}
		result = append(result, parsed)
	}
	return result, nil
}

func parsePuzzleHashes(values []string) ([]chia.Bytes32, error) {
	result := make([]chia.Bytes32, 0, len(values))
	for _, value := range values {
		parsed, err := chia.ParsePuzzleHash(value)
		if err != nil {
			return nil, err
		}
		result = append(result, parsed)
	}
	return result, nil
}

// parseAmount reads amount in XCH, or in mojo when inMojo is set
func parseAmount(value string, inMojo bool) (chia.Mojo, error) {
	var (
		amount chia.Mojo
		err    error
	)
	if inMojo {
		amount, err = chia.MojoFromString(value)
	} else {
		amount, err = chia.MojoFromXCH(value)
	}
	if err != nil {
		return 0, errors.Wrapf(err, "failed to convert given amount value %q", value)
	}
	return amount, nil
}

// parsePayments reads payments given as DESTINATION:AMOUNT where destination
// is an address or a hex puzzle hash
func parsePayments(values []string, inMojo bool) ([]chia.PendingPayment, error) {
	payments := make([]chia.PendingPayment, 0, len(values))
	for _, value := range values {
		sep := strings.LastIndex(value, ":")
		if sep < 0 {
			return nil, errors.Errorf("payment %q is not in DESTINATION:AMOUNT form", value)
		}
		puzzleHash, err := chia.ParsePuzzleHash(value[:sep])
		if err != nil {
			return nil, err
		}
		amount, err := parseAmount(value[sep+1:], inMojo)
		if err != nil {
			return nil, err
		}
		payments = append(payments, chia.PendingPayment{PuzzleHash: puzzleHash, Amount: amount})
	}
	return payments, nil
}
