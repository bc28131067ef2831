package bip38

import (
	"encoding/hex"

	"github.com/qtumproject/qtum-bip38/bip38errors"
	"github.com/qtumproject/qtum-bip38/chaincfg"
	"github.com/qtumproject/qtum-bip38/eckey"
	"github.com/qtumproject/qtum-bip38/wif"
)

// WIFType selects whether PrivateKeyToWIF produces a compressed or
// uncompressed WIF string (spec §6.1).
type WIFType string

const (
	WIFUncompressed WIFType = "wif"
	WIFCompressed   WIFType = "wif-compressed"
)

// PrivateKeyToWIF encodes a 32-byte private key (as 64 hex characters)
// into a WIF string for the given network and compression choice.
func PrivateKeyToWIF(privateKeyHex string, wifType WIFType, network Network) (string, error) {
	priv, err := decodeHex32(privateKeyHex)
	if err != nil {
		return "", err
	}

	params, err := network.params()
	if err != nil {
		return "", err
	}

	switch wifType {
	case WIFUncompressed:
		return wif.Encode(priv, false, params)
	case WIFCompressed:
		return wif.Encode(priv, true, params)
	default:
		return "", bip38errors.New(bip38errors.UnsupportedFlag,
			"wif type must be \"wif\" or \"wif-compressed\"")
	}
}

// WIFToPrivateKey decodes a WIF string, auto-detecting its network from
// the version byte, and returns the private key hex and compression flag.
func WIFToPrivateKey(wifStr string) (privateKeyHex string, compressed bool, err error) {
	priv, compressed, _, err := wif.Decode(wifStr)
	if err != nil {
		return "", false, err
	}
	return hex.EncodeToString(priv), compressed, nil
}

func decodeHex32(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, bip38errors.New(bip38errors.InvalidLength, "private key is not valid hex")
	}
	if len(b) != wif.PrivateKeyLen {
		return nil, bip38errors.New(bip38errors.InvalidLength, "private key must be 32 bytes")
	}
	return b, nil
}

// publicKeyAndAddress derives the public key point and Qtum address for a
// private key under the requested compression.
func publicKeyAndAddress(priv []byte, compressed bool, params chaincfg.Params) (*eckey.PublicKey, string, error) {
	pub, err := eckey.ScalarBaseMult(priv)
	if err != nil {
		return nil, "", err
	}
	address := wif.Address(pub, compressed, params)
	return pub, address, nil
}

// validateScalarRange is the facade-local alias for eckey.ValidateScalar,
// used after every private-key reconstruction (spec §4.5 step, §4.6.4
// step 6) to reject a recovered scalar of zero or >= the curve order
// before it's ever serialised.
func validateScalarRange(priv []byte) error {
	return eckey.ValidateScalar(priv)
}

// pubKeyBytes returns a public key's compressed or uncompressed
// serialisation, matching the WIF/address compression choice.
func pubKeyBytes(pub *eckey.PublicKey, compressed bool) []byte {
	if compressed {
		return eckey.SerializeCompressed(pub)
	}
	return eckey.SerializeUncompressed(pub)
}
