package qtumhash

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func TestDoubleSHA256MatchesManualDoubleHash(t *testing.T) {
	data := []byte("qtum")
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])

	got := DoubleSHA256(data)
	if hex.EncodeToString(got) != hex.EncodeToString(second[:]) {
		t.Fatalf("DoubleSHA256 = %x, want %x", got, second)
	}
}

func TestChecksumIsFirstFourBytes(t *testing.T) {
	data := []byte("hello world")
	full := DoubleSHA256(data)
	cksum := Checksum(data)
	if hex.EncodeToString(cksum) != hex.EncodeToString(full[:4]) {
		t.Fatalf("checksum %x does not match first 4 bytes of %x", cksum, full)
	}
}

func TestHash160Length(t *testing.T) {
	h := Hash160([]byte{0x02, 0x03, 0x04})
	if len(h) != 20 {
		t.Fatalf("expected 20-byte HASH160, got %d bytes", len(h))
	}
}

func TestKeccak256Length(t *testing.T) {
	h := Keccak256([]byte("qtum"))
	if len(h) != 32 {
		t.Fatalf("expected 32-byte digest, got %d bytes", len(h))
	}
}

func TestScryptDeterministic(t *testing.T) {
	a, err := ScryptLight([]byte("pass"), []byte("salt1234"), 64)
	if err != nil {
		t.Fatalf("ScryptLight: %v", err)
	}
	b, err := ScryptLight([]byte("pass"), []byte("salt1234"), 64)
	if err != nil {
		t.Fatalf("ScryptLight: %v", err)
	}
	if hex.EncodeToString(a) != hex.EncodeToString(b) {
		t.Fatalf("ScryptLight not deterministic for identical inputs")
	}
	if len(a) != 64 {
		t.Fatalf("expected 64-byte output, got %d", len(a))
	}
}

func TestScryptStrongDiffersFromLight(t *testing.T) {
	strong, err := ScryptStrong([]byte("pass"), []byte("salt1234"), 64)
	if err != nil {
		t.Fatalf("ScryptStrong: %v", err)
	}
	light, err := ScryptLight([]byte("pass"), []byte("salt1234"), 64)
	if err != nil {
		t.Fatalf("ScryptLight: %v", err)
	}
	if hex.EncodeToString(strong) == hex.EncodeToString(light) {
		t.Fatalf("strong and light scrypt parameter sets produced identical output")
	}
}

func TestNormalizePassphraseNFC(t *testing.T) {
	// "é" as e + combining acute accent (NFD) should normalise to the
	// same bytes as the precomposed form (NFC).
	decomposed := "é"
	precomposed := "é"
	if hex.EncodeToString(NormalizePassphrase(decomposed)) != hex.EncodeToString(NormalizePassphrase(precomposed)) {
		t.Fatalf("NFC normalisation did not unify decomposed and precomposed forms")
	}
}

func TestXORPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on mismatched XOR operand lengths")
		}
	}()
	XOR([]byte{1, 2}, []byte{1, 2, 3})
}
