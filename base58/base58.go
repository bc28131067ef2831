// Package base58 implements Base58 and Base58Check encoding as used by
// Bitcoin-family wallets (https://en.bitcoin.it/wiki/Base58Check_encoding).
//
// Adapted from the teacher's big.Int-based encoder/decoder, extended with
// Base58Check (checksum) support and the distinct error kinds spec'd for
// this library instead of the teacher's bare fmt.Errorf.
package base58

import (
	"crypto/sha256"
	"math/big"

	"github.com/qtumproject/qtum-bip38/bip38errors"
)

const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const checksumLength = 4

var (
	bigRadix = big.NewInt(58)
	bigZero  = big.NewInt(0)
)

// Encode encodes a byte slice into a base58 string. Leading zero bytes in
// b become leading '1' characters in the result, matching Bitcoin's
// convention.
func Encode(b []byte) string {
	x := new(big.Int).SetBytes(b)

	answer := make([]byte, 0, len(b)*138/100+1)
	mod := new(big.Int)
	for x.Cmp(bigZero) > 0 {
		x.DivMod(x, bigRadix, mod)
		answer = append(answer, alphabet[mod.Int64()])
	}

	for _, c := range b {
		if c != 0 {
			break
		}
		answer = append(answer, alphabet[0])
	}

	reverse(answer)
	return string(answer)
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Decode reverses Encode. It returns InvalidCharacter if s contains a byte
// outside the base58 alphabet.
func Decode(s string) ([]byte, error) {
	answer := big.NewInt(0)
	scratch := new(big.Int)
	for i := 0; i < len(s); i++ {
		idx := indexOf(s[i])
		if idx < 0 {
			return nil, bip38errors.New(bip38errors.InvalidCharacter,
				"invalid base58 character encountered")
		}
		scratch.SetInt64(int64(idx))
		answer.Mul(answer, bigRadix)
		answer.Add(answer, scratch)
	}

	decoded := answer.Bytes()

	numZeros := 0
	for i := 0; i < len(s) && s[i] == alphabet[0]; i++ {
		numZeros++
	}

	result := make([]byte, numZeros+len(decoded))
	copy(result[numZeros:], decoded)
	return result, nil
}

func indexOf(c byte) int {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == c {
			return i
		}
	}
	return -1
}

func checksum(payload []byte) [checksumLength]byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	var out [checksumLength]byte
	copy(out[:], second[:checksumLength])
	return out
}

// CheckEncode appends a 4-byte double-SHA-256 checksum to payload and
// base58-encodes the result.
func CheckEncode(payload []byte) string {
	cksum := checksum(payload)
	full := make([]byte, 0, len(payload)+checksumLength)
	full = append(full, payload...)
	full = append(full, cksum[:]...)
	return Encode(full)
}

// CheckDecode reverses CheckEncode, validating the trailing checksum. It
// returns InvalidLength if the decoded bytes are fewer than five (the
// checksum plus at least one payload byte), and InvalidChecksum if the
// trailing bytes don't match.
func CheckDecode(s string) ([]byte, error) {
	raw, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(raw) < checksumLength+1 {
		return nil, bip38errors.New(bip38errors.InvalidLength,
			"base58check string missing checksum")
	}

	payload := raw[:len(raw)-checksumLength]
	want := raw[len(raw)-checksumLength:]
	got := checksum(payload)
	for i := 0; i < checksumLength; i++ {
		if got[i] != want[i] {
			return nil, bip38errors.New(bip38errors.InvalidChecksum,
				"base58check checksum mismatch")
		}
	}
	return payload, nil
}
