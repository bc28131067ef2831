package base58

import (
	"bytes"
	"errors"
	"testing"

	"github.com/qtumproject/qtum-bip38/bip38errors"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0x00, 0x00, 0x01},
		{0xde, 0xad, 0xbe, 0xef},
		bytes.Repeat([]byte{0xff}, 40),
	}
	for _, b := range cases {
		enc := Encode(b)
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(%q) returned error: %v", enc, err)
		}
		if !bytes.Equal(dec, b) {
			t.Errorf("round trip mismatch: got %x, want %x", dec, b)
		}
	}
}

func TestDecodeInvalidCharacter(t *testing.T) {
	_, err := Decode("not0valid")
	if !errors.Is(err, bip38errors.InvalidCharacter) {
		t.Fatalf("expected InvalidCharacter, got %v", err)
	}
}

func TestCheckEncodeDecodeRoundTrip(t *testing.T) {
	payload := []byte{0x80, 0x01, 0x02, 0x03, 0x04}
	enc := CheckEncode(payload)
	dec, err := CheckDecode(enc)
	if err != nil {
		t.Fatalf("CheckDecode returned error: %v", err)
	}
	if !bytes.Equal(dec, payload) {
		t.Errorf("got %x, want %x", dec, payload)
	}
}

func TestCheckDecodeBadChecksum(t *testing.T) {
	payload := []byte{0x80, 0x01, 0x02, 0x03, 0x04}
	enc := CheckEncode(payload)

	// Flip the final character to corrupt the checksum while staying
	// inside the base58 alphabet.
	corrupted := []byte(enc)
	if corrupted[len(corrupted)-1] == '1' {
		corrupted[len(corrupted)-1] = '2'
	} else {
		corrupted[len(corrupted)-1] = '1'
	}

	_, err := CheckDecode(string(corrupted))
	if !errors.Is(err, bip38errors.InvalidChecksum) {
		t.Fatalf("expected InvalidChecksum, got %v", err)
	}
}

func TestCheckDecodeTooShort(t *testing.T) {
	_, err := CheckDecode(Encode([]byte{0x01, 0x02}))
	if !errors.Is(err, bip38errors.InvalidLength) {
		t.Fatalf("expected InvalidLength, got %v", err)
	}
}
