package bip38

import (
	"encoding/hex"

	"github.com/qtumproject/qtum-bip38/base58"
	"github.com/qtumproject/qtum-bip38/bip38errors"
	"github.com/qtumproject/qtum-bip38/eckey"
	"github.com/qtumproject/qtum-bip38/qtumhash"
	"github.com/qtumproject/qtum-bip38/wif"
)

// ConfirmResult is the detailed return shape of ConfirmCodeDetail (spec
// §4.6.3, §6.1).
type ConfirmResult struct {
	Address      string
	PublicKeyHex string
	Compressed   bool
	Lot          *int
	Sequence     *int
}

// ConfirmCode implements spec §4.6.3's brief form: given the passphrase
// and the confirmation code a committer handed back, recovers and
// returns the address the eventual encrypted WIF will decrypt to,
// without ever touching the private key itself. Returns
// bip38errors.BadPassphrase if the passphrase does not match the code.
func ConfirmCode(passphrase, confirmationCode string, network Network) (string, error) {
	result, err := confirmCode(passphrase, confirmationCode, network)
	if err != nil {
		return "", err
	}
	return result.Address, nil
}

// ConfirmCodeDetail is the detailed-record counterpart of ConfirmCode.
func ConfirmCodeDetail(passphrase, confirmationCode string, network Network) (ConfirmResult, error) {
	return confirmCode(passphrase, confirmationCode, network)
}

func confirmCode(passphrase, confirmationCode string, network Network) (ConfirmResult, error) {
	logger.Trace("bip38.ConfirmCode: network=%v", network)

	params, err := network.params()
	if err != nil {
		return ConfirmResult{}, err
	}

	raw, err := base58.CheckDecode(confirmationCode)
	if err != nil {
		return ConfirmResult{}, err
	}
	if len(raw) != confirmCodeLen {
		return ConfirmResult{}, bip38errors.New(bip38errors.InvalidLength,
			"confirmation code has unexpected length")
	}
	if !equalBytes(raw[0:5], confirmationCodePrefix[:]) {
		return ConfirmResult{}, bip38errors.New(bip38errors.UnexpectedPrefix,
			"not a confirmation code")
	}

	flag := raw[5]
	if flag&ecFlagReservedMask != 0 {
		return ConfirmResult{}, bip38errors.New(bip38errors.UnsupportedFlag,
			"confirmation code flag byte sets reserved bits")
	}
	addressHash := raw[6:10]
	ownerEntropy := raw[10:18]
	encryptedPointB := raw[18:51]

	compressed := flag&ecFlagCompressed != 0
	isLotSeq := flag&ecFlagLotSequence != 0

	passBytes := qtumhash.NormalizePassphrase(passphrase)

	var passfactor []byte
	if isLotSeq {
		saltFirst4 := ownerEntropy[:4]
		prefactor, err := qtumhash.ScryptStrong(passBytes, saltFirst4, 32)
		if err != nil {
			return ConfirmResult{}, err
		}
		passfactor = qtumhash.DoubleSHA256(append(append([]byte{}, prefactor...), ownerEntropy...))
	} else {
		passfactor, err = qtumhash.ScryptStrong(passBytes, ownerEntropy, 32)
		if err != nil {
			return ConfirmResult{}, err
		}
	}

	passpoint, err := eckey.ScalarBaseMult(passfactor)
	if err != nil {
		return ConfirmResult{}, err
	}
	passpointBytes := eckey.SerializeCompressed(passpoint)

	salt := append(append([]byte{}, addressHash...), ownerEntropy...)
	derived, err := qtumhash.ScryptLight(passpointBytes, salt, 64)
	if err != nil {
		return ConfirmResult{}, err
	}
	halfA, halfB, aesKey := derived[0:16], derived[16:32], derived[32:64]

	pointbPrefix := encryptedPointB[0] ^ (aesKey[31] & 0x01)
	pointbx1 := qtumhash.XOR(aesECBDecrypt(aesKey, encryptedPointB[1:17]), halfA)
	pointbx2 := qtumhash.XOR(aesECBDecrypt(aesKey, encryptedPointB[17:33]), halfB)

	pointbBytes := make([]byte, 0, passPointLen)
	pointbBytes = append(pointbBytes, pointbPrefix)
	pointbBytes = append(pointbBytes, pointbx1...)
	pointbBytes = append(pointbBytes, pointbx2...)

	pointb, err := eckey.ParsePublicKey(pointbBytes)
	if err != nil {
		// A wrong passphrase decrypts pointb to bytes that are usually not
		// a point on the curve at all.
		return ConfirmResult{}, bip38errors.New(bip38errors.BadPassphrase,
			"decrypted pointb is not a valid curve point")
	}
	pub, err := eckey.ScalarMult(pointb, passfactor)
	if err != nil {
		return ConfirmResult{}, err
	}

	address := wif.Address(pub, compressed, params)
	if !bytesEqual(wif.AddressHash(address), addressHash) {
		return ConfirmResult{}, bip38errors.New(bip38errors.BadPassphrase,
			"recomputed address hash does not match confirmation code")
	}

	result := ConfirmResult{
		Address:      address,
		PublicKeyHex: hex.EncodeToString(pubKeyBytes(pub, compressed)),
		Compressed:   compressed,
	}
	if isLotSeq {
		lot, sequence := decodeLotSequence(ownerEntropy[4:8])
		result.Lot = &lot
		result.Sequence = &sequence
	}
	return result, nil
}
