package chia

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Mojo is the smallest unit of chia currency. Amounts are kept as integer
// number of mojo so that precision is not lost, 1 XCH is 10^12 mojo.
// In JSON it is a plain number, which is what node and wallet RPC services
// send and expect.
type Mojo uint64

const mojoExponent = -12

var mojoInXCHDecimal = decimal.New(1, -mojoExponent)

func (amount Mojo) decimal() decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(amount)), mojoExponent)
}

// ToXCH converts amount to a string with decimal amount of XCH, for example
// 1500000000000 mojo is "1.5".
// Library "github.com/shopspring/decimal" is used for conversion
func (amount Mojo) ToXCH() string {
	return amount.decimal().String()
}

func (amount Mojo) String() string {
	return amount.ToXCH() + " XCH"
}

// MojoFromXCH creates Mojo from a stringed decimal amount of XCH and is used
// to read amounts given by users. Fractions of mojo are rejected
func MojoFromXCH(amountXCH string) (Mojo, error) {
	amountDecimal, err := decimal.NewFromString(amountXCH)
	if err != nil {
		return 0, err
	}
	return mojoFromDecimal(amountDecimal.Mul(mojoInXCHDecimal), amountXCH)
}

// MojoFromString parses integer amount of mojo
func MojoFromString(amountMojo string) (Mojo, error) {
	amountDecimal, err := decimal.NewFromString(amountMojo)
	if err != nil {
		return 0, err
	}
	return mojoFromDecimal(amountDecimal, amountMojo)
}

func mojoFromDecimal(d decimal.Decimal, original string) (Mojo, error) {
	if d.IsNegative() {
		return 0, &AmountError{Amount: original, Reason: "amount is negative"}
	}
	if !d.Equal(d.Truncate(0)) {
		return 0, &AmountError{Amount: original, Reason: "amount has fractions of mojo"}
	}
	i := d.BigInt()
	if !i.IsUint64() {
		return 0, &AmountError{Amount: original, Reason: "amount overflows 64 bits"}
	}
	return Mojo(i.Uint64()), nil
}

// AmountError is returned when a user-supplied amount can't be represented as
// Mojo
type AmountError struct {
	Amount string
	Reason string
}

func (err *AmountError) Error() string {
	return "invalid amount " + err.Amount + ": " + err.Reason
}
