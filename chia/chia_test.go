package chia

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const testHash = "0x4bf5122f344554c53bde2ebb8cd2b7e3d1600ad631c385a5d7cce23c7785459a"

func TestBytes32JSON(t *testing.T) {
	var parsed struct {
		Hash Bytes32 `json:"hash"`
	}

	err := json.Unmarshal([]byte(`{"hash": "`+testHash+`"}`), &parsed)
	if err != nil {
		t.Fatal(err)
	}
	if got := parsed.Hash.String(); got != testHash {
		t.Fatalf("Expected %s, got %s", testHash, got)
	}

	encoded, err := json.Marshal(parsed)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"hash":"` + testHash + `"}`; string(encoded) != want {
		t.Fatalf("Expected %s, got %s", want, encoded)
	}

	withoutPrefix, err := Bytes32FromHex(strings.TrimPrefix(testHash, "0x"))
	if err != nil {
		t.Fatal(err)
	}
	if withoutPrefix != parsed.Hash {
		t.Fatal("Parsing hex without 0x prefix gave different result")
	}
}

func TestBytes32Invalid(t *testing.T) {
	for _, input := range []string{"", "0x", "0x1234", testHash + "00", "0xzz" + testHash[4:]} {
		if _, err := Bytes32FromHex(input); err == nil {
			t.Errorf("Expected error parsing %q", input)
		}
	}

	var b Bytes32
	if err := json.Unmarshal([]byte(`123`), &b); err == nil {
		t.Error("Expected error unmarshaling a number into Bytes32")
	}
}

func TestHexBytesJSON(t *testing.T) {
	var b HexBytes
	if err := json.Unmarshal([]byte(`"0xff0080"`), &b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, []byte{0xff, 0x00, 0x80}) {
		t.Fatalf("Unexpected bytes %v", []byte(b))
	}
	encoded, _ := json.Marshal(b)
	if string(encoded) != `"0xff0080"` {
		t.Fatalf("Unexpected encoding %s", encoded)
	}
}

func TestIntToBytes(t *testing.T) {
	tests := []struct {
		value uint64
		want  []byte
	}{
		{0, []byte{}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x00, 0x80}},
		{255, []byte{0x00, 0xff}},
		{256, []byte{0x01, 0x00}},
		{0x7fff, []byte{0x7f, 0xff}},
		{0x8000, []byte{0x00, 0x80, 0x00}},
		{1750000000000, []byte{0x01, 0x97, 0x74, 0x20, 0xdc, 0x00}},
		{^uint64(0), []byte{0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}

	for _, test := range tests {
		if got := intToBytes(test.value); !bytes.Equal(got, test.want) {
			t.Errorf("intToBytes(%d) = %x, expected %x", test.value, got, test.want)
		}
	}
}

func TestCoinName(t *testing.T) {
	coin := Coin{
		ParentCoinInfo: MustBytes32FromHex(testHash),
		PuzzleHash:     MustBytes32FromHex("0x0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20"),
		Amount:         1750000000000,
	}

	var preimage []byte
	preimage = append(preimage, coin.ParentCoinInfo[:]...)
	preimage = append(preimage, coin.PuzzleHash[:]...)
	preimage = append(preimage, 0x01, 0x97, 0x74, 0x20, 0xdc, 0x00)
	want := Bytes32(sha256.Sum256(preimage))

	if got := coin.Name(); got != want {
		t.Fatalf("Expected coin name %s, got %s", want, got)
	}

	coin.Amount = 0
	want = Bytes32(sha256.Sum256(preimage[:64]))
	if got := coin.Name(); got != want {
		t.Fatalf("Expected name of zero amount coin %s, got %s", want, got)
	}
}

func TestAddressRoundTrip(t *testing.T) {
	puzzleHash := MustBytes32FromHex(testHash)

	for _, prefix := range []string{MainnetAddressPrefix, TestnetAddressPrefix} {
		address, err := EncodeAddress(puzzleHash, prefix)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(address, prefix+"1") {
			t.Fatalf("Address %s does not start with %s1", address, prefix)
		}

		decodedPrefix, decoded, err := DecodeAddress(address)
		if err != nil {
			t.Fatal(err)
		}
		if decodedPrefix != prefix || decoded != puzzleHash {
			t.Fatalf("Decoding %s gave %s %s", address, decodedPrefix, decoded)
		}

		parsed, err := ParsePuzzleHash(address)
		if err != nil || parsed != puzzleHash {
			t.Fatalf("ParsePuzzleHash(%s) = %s, %v", address, parsed, err)
		}
	}

	parsed, err := ParsePuzzleHash(testHash)
	if err != nil || parsed != puzzleHash {
		t.Fatalf("ParsePuzzleHash(%s) = %s, %v", testHash, parsed, err)
	}
}

func TestDecodeAddressRejectsBech32(t *testing.T) {
	puzzleHash := MustBytes32FromHex(testHash)
	converted, err := bech32.ConvertBits(puzzleHash[:], 8, 5, true)
	if err != nil {
		t.Fatal(err)
	}
	address, err := bech32.Encode(MainnetAddressPrefix, converted)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := DecodeAddress(address); err == nil {
		t.Fatalf("Expected bech32 (not bech32m) address %s to be rejected", address)
	}
}

func TestDecodeAddressRejectsShortPayload(t *testing.T) {
	converted, err := bech32.ConvertBits([]byte{1, 2, 3, 4}, 8, 5, true)
	if err != nil {
		t.Fatal(err)
	}
	address, err := bech32.EncodeM(MainnetAddressPrefix, converted)
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := DecodeAddress(address); err == nil {
		t.Fatalf("Expected address %s with 4 byte payload to be rejected", address)
	}
}

func TestMojoConversions(t *testing.T) {
	tests := []struct {
		xch  string
		mojo Mojo
	}{
		{"0", 0},
		{"1", 1000000000000},
		{"1.5", 1500000000000},
		{"0.000000000001", 1},
		{"18446744.073709551615", Mojo(^uint64(0))},
	}

	for _, test := range tests {
		got, err := MojoFromXCH(test.xch)
		if err != nil {
			t.Fatalf("MojoFromXCH(%s) failed: %v", test.xch, err)
		}
		if got != test.mojo {
			t.Errorf("MojoFromXCH(%s) = %d, expected %d", test.xch, uint64(got), uint64(test.mojo))
		}
		if back := test.mojo.ToXCH(); back != test.xch {
			t.Errorf("Mojo(%d).ToXCH() = %s, expected %s", uint64(test.mojo), back, test.xch)
		}
	}

	if s := Mojo(2500000000000).String(); s != "2.5 XCH" {
		t.Errorf("Unexpected string %q", s)
	}
}

func TestMojoInvalidAmounts(t *testing.T) {
	for _, xch := range []string{"-1", "0.0000000000001", "18446744.073709551616", "abc"} {
		if _, err := MojoFromXCH(xch); err == nil {
			t.Errorf("Expected error for amount %s XCH", xch)
		}
	}

	if amount, err := MojoFromString("42"); err != nil || amount != 42 {
		t.Errorf("MojoFromString(42) = %d, %v", uint64(amount), err)
	}
	if _, err := MojoFromString("4.2"); err == nil {
		t.Error("Expected error for fractional mojo amount")
	}
}
