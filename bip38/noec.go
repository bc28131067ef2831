package bip38

import (
	"encoding/hex"

	"github.com/qtumproject/qtum-bip38/base58"
	"github.com/qtumproject/qtum-bip38/bip38errors"
	"github.com/qtumproject/qtum-bip38/qtumhash"
	"github.com/qtumproject/qtum-bip38/wif"
)

// DecryptResult is the detailed return shape of DecryptDetail per
// spec §6.1, §9 ("Dual return types" — kept monomorphic here by splitting
// Decrypt/DecryptDetail into two operations instead of returning
// interface{}).
type DecryptResult struct {
	WIF           string
	PrivateKeyHex string
	WIFType       WIFType
	PublicKeyHex  string
	Compressed    bool
	Seed          []byte // nil for no-EC results
	Address       string
	Lot           *int // nil unless the EC payload embedded lot/sequence
	Sequence      *int
}

// Encrypt implements the no-EC-multiply codec (spec §4.5): wraps an
// existing WIF's private key under a scrypt-derived, passphrase-bound
// key and returns the resulting 58-character encrypted WIF.
//
// Deterministic in (wif, passphrase, network): the salt is the address
// hash, not random input, satisfying the round-trip/determinism
// properties in spec §8.
func Encrypt(wifStr, passphrase string, network Network) (string, error) {
	logger.Trace("bip38.Encrypt: network=%v", network)

	priv, compressed, wifParams, err := wif.Decode(wifStr)
	if err != nil {
		return "", err
	}
	params, err := network.params()
	if err != nil {
		return "", err
	}
	if wifParams.PrivateKeyID != params.PrivateKeyID {
		return "", bip38errors.New(bip38errors.NetworkMismatch,
			"WIF version byte does not belong to the requested network")
	}

	_, address, err := publicKeyAndAddress(priv, compressed, params)
	if err != nil {
		return "", err
	}
	addressHash := wif.AddressHash(address)

	derived, err := qtumhash.ScryptStrong(qtumhash.NormalizePassphrase(passphrase), addressHash, 64)
	if err != nil {
		return "", err
	}
	derivedHalf1, derivedHalf2 := derived[:32], derived[32:64]

	encHalf1 := aesECBEncrypt(derivedHalf2, qtumhash.XOR(priv[0:16], derivedHalf1[0:16]))
	encHalf2 := aesECBEncrypt(derivedHalf2, qtumhash.XOR(priv[16:32], derivedHalf1[16:32]))

	flag := noECFlagBase
	if compressed {
		flag |= noECFlagCompressed
	}

	payload := make([]byte, 0, noECPayloadLen)
	payload = append(payload, noECPrefixByte1, noECPrefixByte2, flag)
	payload = append(payload, addressHash...)
	payload = append(payload, encHalf1...)
	payload = append(payload, encHalf2...)

	return base58.CheckEncode(payload), nil
}

// Decrypt implements the brief (WIF-only) return of decryption, dispatching
// between the no-EC-multiply and EC-multiply codecs by the encrypted WIF's
// payload prefix (spec §3, §4.5, §4.6.4, §6.1).
func Decrypt(encryptedWIF, passphrase string, network Network) (string, error) {
	result, err := decrypt(encryptedWIF, passphrase, network)
	if err != nil {
		return "", err
	}
	return result.WIF, nil
}

// DecryptDetail is the detailed-record counterpart of Decrypt (spec §9
// "Detail flag").
func DecryptDetail(encryptedWIF, passphrase string, network Network) (DecryptResult, error) {
	return decrypt(encryptedWIF, passphrase, network)
}

func decrypt(encryptedWIF, passphrase string, network Network) (DecryptResult, error) {
	raw, err := base58.CheckDecode(encryptedWIF)
	if err != nil {
		return DecryptResult{}, err
	}
	if len(raw) < 2 {
		return DecryptResult{}, bip38errors.New(bip38errors.InvalidLength,
			"encrypted WIF has unexpected length")
	}

	switch {
	case raw[0] == noECPrefixByte1 && raw[1] == noECPrefixByte2:
		return decryptNoEC(encryptedWIF, passphrase, network)
	case raw[0] == ecPrefixByte1 && raw[1] == ecPrefixByte2:
		return decryptEC(encryptedWIF, passphrase, network)
	default:
		return DecryptResult{}, bip38errors.New(bip38errors.UnexpectedPrefix,
			"not a recognised encrypted WIF")
	}
}

func decryptNoEC(encryptedWIF, passphrase string, network Network) (DecryptResult, error) {
	logger.Trace("bip38.Decrypt: network=%v", network)

	raw, err := base58.CheckDecode(encryptedWIF)
	if err != nil {
		return DecryptResult{}, err
	}
	if len(raw) != noECPayloadLen {
		return DecryptResult{}, bip38errors.New(bip38errors.InvalidLength,
			"encrypted WIF has unexpected length")
	}
	if raw[0] != noECPrefixByte1 || raw[1] != noECPrefixByte2 {
		return DecryptResult{}, bip38errors.New(bip38errors.UnexpectedPrefix,
			"not a no-EC-multiply encrypted WIF")
	}

	flag := raw[2]
	if flag != noECFlagBase && flag != noECFlagBase|noECFlagCompressed {
		return DecryptResult{}, bip38errors.New(bip38errors.UnsupportedFlag,
			"no-EC-multiply flag byte must be 0xc0 or 0xe0")
	}
	addressHash := raw[3:7]
	encHalf1 := raw[7:23]
	encHalf2 := raw[23:39]

	compressed := flag&noECFlagCompressed != 0

	params, err := network.params()
	if err != nil {
		return DecryptResult{}, err
	}

	derived, err := qtumhash.ScryptStrong(qtumhash.NormalizePassphrase(passphrase), addressHash, 64)
	if err != nil {
		return DecryptResult{}, err
	}
	derivedHalf1, derivedHalf2 := derived[:32], derived[32:64]

	decHalf1 := aesECBDecrypt(derivedHalf2, encHalf1)
	decHalf2 := aesECBDecrypt(derivedHalf2, encHalf2)

	priv := make([]byte, 32)
	copy(priv[0:16], qtumhash.XOR(decHalf1, derivedHalf1[0:16]))
	copy(priv[16:32], qtumhash.XOR(decHalf2, derivedHalf1[16:32]))

	if err := validateScalarRange(priv); err != nil {
		return DecryptResult{}, err
	}

	pub, address, err := publicKeyAndAddress(priv, compressed, params)
	if err != nil {
		return DecryptResult{}, err
	}
	if !bytesEqual(wif.AddressHash(address), addressHash) {
		return DecryptResult{}, bip38errors.New(bip38errors.BadPassphrase,
			"recomputed address hash does not match payload")
	}

	wifType := WIFUncompressed
	if compressed {
		wifType = WIFCompressed
	}
	wifStr, err := wif.Encode(priv, compressed, params)
	if err != nil {
		return DecryptResult{}, err
	}

	pubBytes := pubKeyBytes(pub, compressed)
	return DecryptResult{
		WIF:           wifStr,
		PrivateKeyHex: hex.EncodeToString(priv),
		WIFType:       wifType,
		PublicKeyHex:  hex.EncodeToString(pubBytes),
		Compressed:    compressed,
		Seed:          nil,
		Address:       address,
		Lot:           nil,
		Sequence:      nil,
	}, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
