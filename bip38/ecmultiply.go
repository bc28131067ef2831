package bip38

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/qtumproject/qtum-bip38/base58"
	"github.com/qtumproject/qtum-bip38/bip38errors"
	"github.com/qtumproject/qtum-bip38/eckey"
	"github.com/qtumproject/qtum-bip38/qtumhash"
	"github.com/qtumproject/qtum-bip38/wif"
)

// PublicKeyType selects whether an EC-multiply operation produces a
// compressed or uncompressed public key / address (spec §4.6.2, §6.1).
type PublicKeyType string

const (
	Compressed   PublicKeyType = "compressed"
	Uncompressed PublicKeyType = "uncompressed"
)

func (t PublicKeyType) compressed() (bool, error) {
	switch t {
	case Compressed:
		return true, nil
	case Uncompressed:
		return false, nil
	default:
		return false, bip38errors.New(bip38errors.UnsupportedFlag,
			"public key type must be \"compressed\" or \"uncompressed\"")
	}
}

// EncryptedWIFResult is the return shape of CreateNewEncryptedWIF (spec
// §6.1).
type EncryptedWIFResult struct {
	EncryptedWIF      string
	ConfirmationCode  string
	PublicKeyHex      string
	Seed              []byte
	PublicKeyType     PublicKeyType
	Address           string
}

// IntermediateCode implements spec §4.6.1: builds the intermediate
// passphrase token a committer distributes to a passphrase-holder,
// optionally embedding lot/sequence provenance numbers.
//
// ownerSalt, lot and sequence are all optional: pass a nil ownerSalt to
// have 8 cryptographically random bytes generated, and nil for both lot
// and sequence to omit provenance tracking. Supplying only one of lot/
// sequence is rejected, matching spec §3's invariant that sequence is
// required iff lot is present.
func IntermediateCode(passphrase string, ownerSalt []byte, lot, sequence *int) (string, error) {
	logger.Trace("bip38.IntermediateCode")

	if ownerSalt == nil {
		ownerSalt = make([]byte, ownerSaltLen)
		if _, err := rand.Read(ownerSalt); err != nil {
			return "", err
		}
	}
	if len(ownerSalt) != ownerSaltLen {
		return "", bip38errors.New(bip38errors.InvalidOwnerSaltLength,
			"owner salt must be 8 bytes")
	}
	if (lot == nil) != (sequence == nil) {
		return "", bip38errors.New(bip38errors.InvalidLot,
			"lot and sequence must both be present or both be absent")
	}

	passBytes := qtumhash.NormalizePassphrase(passphrase)

	var passfactor, ownerEntropy []byte
	var magic [8]byte
	if lot != nil {
		if *lot < 0 || *lot > maxLot {
			return "", bip38errors.New(bip38errors.InvalidLot, "lot out of range [0, 1048575]")
		}
		if *sequence < 0 || *sequence > maxSequence {
			return "", bip38errors.New(bip38errors.InvalidSequence, "sequence out of range [0, 4095]")
		}

		saltFirst4 := ownerSalt[:4]
		prefactor, err := qtumhash.ScryptStrong(passBytes, saltFirst4, 32)
		if err != nil {
			return "", err
		}
		lotseq := encodeLotSequence(*lot, *sequence)
		ownerEntropy = append(append([]byte{}, saltFirst4...), lotseq...)
		passfactor = qtumhash.DoubleSHA256(append(append([]byte{}, prefactor...), ownerEntropy...))
		magic = magicLotSequence
	} else {
		var err error
		passfactor, err = qtumhash.ScryptStrong(passBytes, ownerSalt, 32)
		if err != nil {
			return "", err
		}
		ownerEntropy = ownerSalt
		magic = magicNoLotSequence
	}

	passpoint, err := eckey.ScalarBaseMult(passfactor)
	if err != nil {
		return "", err
	}
	passpointBytes := eckey.SerializeCompressed(passpoint)

	payload := make([]byte, 0, intermediateLen)
	payload = append(payload, magic[:]...)
	payload = append(payload, ownerEntropy...)
	payload = append(payload, passpointBytes...)
	return base58.CheckEncode(payload), nil
}

func encodeLotSequence(lot, sequence int) []byte {
	v := uint32(lot)*4096 + uint32(sequence)
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func decodeLotSequence(b []byte) (lot, sequence int) {
	v := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	sequence = int(v % 4096)
	lot = int((v - uint32(sequence)) / 4096)
	return lot, sequence
}

// CreateNewEncryptedWIF implements spec §4.6.2: a committer, who knows
// only an intermediate passphrase (not the underlying passphrase itself),
// mints a brand-new key pair and returns both the encrypted WIF and its
// confirmation code.
func CreateNewEncryptedWIF(intermediatePassphrase string, publicKeyType PublicKeyType, seed []byte, network Network) (EncryptedWIFResult, error) {
	logger.Trace("bip38.CreateNewEncryptedWIF: network=%v", network)

	compressed, err := publicKeyType.compressed()
	if err != nil {
		return EncryptedWIFResult{}, err
	}
	params, err := network.params()
	if err != nil {
		return EncryptedWIFResult{}, err
	}

	raw, err := base58.CheckDecode(intermediatePassphrase)
	if err != nil {
		return EncryptedWIFResult{}, err
	}
	if len(raw) != intermediateLen {
		return EncryptedWIFResult{}, bip38errors.New(bip38errors.InvalidLength,
			"intermediate passphrase has unexpected length")
	}
	magic := raw[:8]
	ownerEntropy := raw[8:16]
	passpointBytes := raw[16:intermediateLen]

	isLotSeq, err := classifyMagic(magic)
	if err != nil {
		return EncryptedWIFResult{}, err
	}

	if seed == nil {
		seed = make([]byte, seedLen)
		if _, err := rand.Read(seed); err != nil {
			return EncryptedWIFResult{}, err
		}
	}
	if len(seed) != seedLen {
		return EncryptedWIFResult{}, bip38errors.New(bip38errors.InvalidSeedLength,
			"seed must be 24 bytes")
	}

	factorb := qtumhash.DoubleSHA256(seed)
	if err := validateScalarRange(factorb); err != nil {
		return EncryptedWIFResult{}, err
	}

	passpoint, err := eckey.ParsePublicKey(passpointBytes)
	if err != nil {
		return EncryptedWIFResult{}, err
	}
	pub, err := eckey.ScalarMult(passpoint, factorb)
	if err != nil {
		return EncryptedWIFResult{}, err
	}

	address := wif.Address(pub, compressed, params)
	addressHash := wif.AddressHash(address)

	salt := append(append([]byte{}, addressHash...), ownerEntropy...)
	derived, err := qtumhash.ScryptLight(passpointBytes, salt, 64)
	if err != nil {
		return EncryptedWIFResult{}, err
	}
	halfA, halfB, aesKey := derived[0:16], derived[16:32], derived[32:64]

	encPart1 := aesECBEncrypt(aesKey, qtumhash.XOR(seed[0:16], halfA))
	block2Input := qtumhash.XOR(append(append([]byte{}, encPart1[8:16]...), seed[16:24]...), halfB)
	encPart2 := aesECBEncrypt(aesKey, block2Input)

	flag := byte(0)
	if compressed {
		flag |= ecFlagCompressed
	}
	if isLotSeq {
		flag |= ecFlagLotSequence
	}

	encPayload := make([]byte, 0, ecPayloadLen)
	encPayload = append(encPayload, ecPrefixByte1, ecPrefixByte2, flag)
	encPayload = append(encPayload, addressHash...)
	encPayload = append(encPayload, ownerEntropy...)
	encPayload = append(encPayload, encPart1[0:8]...)
	encPayload = append(encPayload, encPart2...)
	encryptedWIF := base58.CheckEncode(encPayload)

	pointb, err := eckey.ScalarBaseMult(factorb)
	if err != nil {
		return EncryptedWIFResult{}, err
	}
	pointbBytes := eckey.SerializeCompressed(pointb)
	pointbPrefix := pointbBytes[0] ^ (aesKey[31] & 0x01)
	pointbx1 := aesECBEncrypt(aesKey, qtumhash.XOR(pointbBytes[1:17], halfA))
	pointbx2 := aesECBEncrypt(aesKey, qtumhash.XOR(pointbBytes[17:33], halfB))

	confirmPayload := make([]byte, 0, confirmCodeLen)
	confirmPayload = append(confirmPayload, confirmationCodePrefix[:]...)
	confirmPayload = append(confirmPayload, flag)
	confirmPayload = append(confirmPayload, addressHash...)
	confirmPayload = append(confirmPayload, ownerEntropy...)
	confirmPayload = append(confirmPayload, pointbPrefix)
	confirmPayload = append(confirmPayload, pointbx1...)
	confirmPayload = append(confirmPayload, pointbx2...)
	confirmationCode := base58.CheckEncode(confirmPayload)

	return EncryptedWIFResult{
		EncryptedWIF:     encryptedWIF,
		ConfirmationCode: confirmationCode,
		PublicKeyHex:     hex.EncodeToString(pubKeyBytes(pub, compressed)),
		Seed:             seed,
		PublicKeyType:    publicKeyType,
		Address:          address,
	}, nil
}

func classifyMagic(magic []byte) (isLotSeq bool, err error) {
	switch {
	case equalBytes(magic, magicLotSequence[:]):
		return true, nil
	case equalBytes(magic, magicNoLotSequence[:]):
		return false, nil
	default:
		return false, bip38errors.New(bip38errors.UnexpectedPrefix,
			"intermediate passphrase has unrecognised magic bytes")
	}
}

func equalBytes(a, b []byte) bool {
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
