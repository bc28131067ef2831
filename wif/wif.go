// Package wif implements the address & WIF layer spec'd in spec §4.4:
// Qtum P2PKH address derivation and Wallet Import Format encode/decode.
//
// Grounded on the teacher's elliptic/pubkey.go (ToAddress,
// ToAddressCompressed, b58checkdecode) and elliptic/privkey.go (ToWIF,
// ToWIFCompressed, LoadWIF), generalised from the teacher's single
// hardcoded mainnet WIF_VERSION to the chaincfg.Params registry, and from
// teacher's manual base58CheckEncode/b58checkdecode to the base58 package.
package wif

import (
	"github.com/qtumproject/qtum-bip38/base58"
	"github.com/qtumproject/qtum-bip38/bip38errors"
	"github.com/qtumproject/qtum-bip38/chaincfg"
	"github.com/qtumproject/qtum-bip38/eckey"
	"github.com/qtumproject/qtum-bip38/qtumhash"
)

const compressedFlag = 0x01

// PrivateKeyLen is the fixed length of an unwrapped secp256k1 private key.
const PrivateKeyLen = 32

// Address derives the Qtum P2PKH Base58Check address string for a public
// key, using its compressed or uncompressed serialisation as requested
// (spec §4.4).
func Address(pub *eckey.PublicKey, compressed bool, params chaincfg.Params) string {
	var pubBytes []byte
	if compressed {
		pubBytes = eckey.SerializeCompressed(pub)
	} else {
		pubBytes = eckey.SerializeUncompressed(pub)
	}

	payload := append([]byte{params.PubKeyHashAddrID}, qtumhash.Hash160(pubBytes)...)
	return base58.CheckEncode(payload)
}

// AddressHash returns the first four bytes of the double-SHA-256 of the
// address string's ASCII bytes: the addresshash embedded in every BIP38
// payload and used as its integrity check.
func AddressHash(address string) []byte {
	return qtumhash.Checksum([]byte(address))
}

// Encode Base58Check-encodes a raw 32-byte private key as a WIF string,
// optionally appending the compression flag byte.
func Encode(priv []byte, compressed bool, params chaincfg.Params) (string, error) {
	if len(priv) != PrivateKeyLen {
		return "", bip38errors.New(bip38errors.InvalidLength,
			"private key must be 32 bytes")
	}

	payload := make([]byte, 0, 1+PrivateKeyLen+1)
	payload = append(payload, params.PrivateKeyID)
	payload = append(payload, priv...)
	if compressed {
		payload = append(payload, compressedFlag)
	}
	return base58.CheckEncode(payload), nil
}

// Decode reverses Encode, auto-detecting the network from the version
// byte against every network registered in chaincfg. It returns
// NetworkMismatch if no registered network claims the version byte, and
// InvalidLength if the inner payload is neither 32 nor 33 bytes.
func Decode(wif string) (priv []byte, compressed bool, params chaincfg.Params, err error) {
	raw, err := base58.CheckDecode(wif)
	if err != nil {
		return nil, false, chaincfg.Params{}, err
	}
	if len(raw) < 2 {
		return nil, false, chaincfg.Params{}, bip38errors.New(bip38errors.InvalidLength,
			"WIF payload too short")
	}

	version := raw[0]
	body := raw[1:]

	params, ok := matchVersion(version)
	if !ok {
		return nil, false, chaincfg.Params{}, bip38errors.New(bip38errors.NetworkMismatch,
			"WIF version byte does not belong to any registered network")
	}

	switch len(body) {
	case PrivateKeyLen:
		return body, false, params, nil
	case PrivateKeyLen + 1:
		if body[PrivateKeyLen] != compressedFlag {
			return nil, false, chaincfg.Params{}, bip38errors.New(bip38errors.InvalidLength,
				"unexpected WIF compression suffix byte")
		}
		return body[:PrivateKeyLen], true, params, nil
	default:
		return nil, false, chaincfg.Params{}, bip38errors.New(bip38errors.InvalidLength,
			"WIF private key body must be 32 or 33 bytes")
	}
}

func matchVersion(version byte) (chaincfg.Params, bool) {
	for _, p := range chaincfg.All() {
		if p.PrivateKeyID == version {
			return p, true
		}
	}
	return chaincfg.Params{}, false
}
