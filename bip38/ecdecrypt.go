package bip38

import (
	"encoding/hex"

	"github.com/qtumproject/qtum-bip38/base58"
	"github.com/qtumproject/qtum-bip38/bip38errors"
	"github.com/qtumproject/qtum-bip38/eckey"
	"github.com/qtumproject/qtum-bip38/qtumhash"
	"github.com/qtumproject/qtum-bip38/wif"
)

// decryptEC implements spec §4.6.4: recovers the seed-derived private
// key from an EC-multiply encrypted WIF, given the original passphrase.
// The private key never exists until this function reconstructs it —
// passfactor (from the passphrase) and factorb (from the seed) are
// multiplied together modulo the curve order, mirroring how
// CreateNewEncryptedWIF scalar-multiplied the passpoint by factorb to
// get the same key from the other direction.
func decryptEC(encryptedWIF, passphrase string, network Network) (DecryptResult, error) {
	logger.Trace("bip38.Decrypt (EC-multiply): network=%v", network)

	params, err := network.params()
	if err != nil {
		return DecryptResult{}, err
	}

	raw, err := base58.CheckDecode(encryptedWIF)
	if err != nil {
		return DecryptResult{}, err
	}
	if len(raw) != ecPayloadLen {
		return DecryptResult{}, bip38errors.New(bip38errors.InvalidLength,
			"encrypted WIF has unexpected length")
	}
	if raw[0] != ecPrefixByte1 || raw[1] != ecPrefixByte2 {
		return DecryptResult{}, bip38errors.New(bip38errors.UnexpectedPrefix,
			"not an EC-multiply encrypted WIF")
	}

	flag := raw[2]
	if flag&ecFlagReservedMask != 0 {
		return DecryptResult{}, bip38errors.New(bip38errors.UnsupportedFlag,
			"EC-multiply flag byte sets reserved bits")
	}
	addressHash := raw[3:7]
	ownerEntropy := raw[7:15]
	encPart1First8 := raw[15:23]
	encPart2 := raw[23:39]

	compressed := flag&ecFlagCompressed != 0
	isLotSeq := flag&ecFlagLotSequence != 0

	passBytes := qtumhash.NormalizePassphrase(passphrase)

	var passfactor []byte
	if isLotSeq {
		saltFirst4 := ownerEntropy[:4]
		prefactor, err := qtumhash.ScryptStrong(passBytes, saltFirst4, 32)
		if err != nil {
			return DecryptResult{}, err
		}
		passfactor = qtumhash.DoubleSHA256(append(append([]byte{}, prefactor...), ownerEntropy...))
	} else {
		passfactor, err = qtumhash.ScryptStrong(passBytes, ownerEntropy, 32)
		if err != nil {
			return DecryptResult{}, err
		}
	}

	passpoint, err := eckey.ScalarBaseMult(passfactor)
	if err != nil {
		return DecryptResult{}, err
	}
	passpointBytes := eckey.SerializeCompressed(passpoint)

	salt := append(append([]byte{}, addressHash...), ownerEntropy...)
	derived, err := qtumhash.ScryptLight(passpointBytes, salt, 64)
	if err != nil {
		return DecryptResult{}, err
	}
	halfA, halfB, aesKey := derived[0:16], derived[16:32], derived[32:64]

	decPart2 := qtumhash.XOR(aesECBDecrypt(aesKey, encPart2), halfB)
	encPart1Last8 := decPart2[0:8]
	seedLast8 := decPart2[8:16]

	encPart1Full := append(append([]byte{}, encPart1First8...), encPart1Last8...)
	seedFirst16 := qtumhash.XOR(aesECBDecrypt(aesKey, encPart1Full), halfA)

	seed := append(append([]byte{}, seedFirst16...), seedLast8...)

	factorb := qtumhash.DoubleSHA256(seed)
	if err := validateScalarRange(factorb); err != nil {
		return DecryptResult{}, err
	}

	priv := eckey.MultiplyScalarsModN(passfactor, factorb)
	if err := validateScalarRange(priv); err != nil {
		return DecryptResult{}, err
	}

	pub, err := eckey.ScalarBaseMult(priv)
	if err != nil {
		return DecryptResult{}, err
	}
	address := wif.Address(pub, compressed, params)
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

	result := DecryptResult{
		WIF:           wifStr,
		PrivateKeyHex: hex.EncodeToString(priv),
		WIFType:       wifType,
		PublicKeyHex:  hex.EncodeToString(pubKeyBytes(pub, compressed)),
		Compressed:    compressed,
		Seed:          seed,
		Address:       address,
	}
	if isLotSeq {
		lot, sequence := decodeLotSequence(ownerEntropy[4:8])
		result.Lot = &lot
		result.Sequence = &sequence
	}
	return result, nil
}
