package bip38

// Prefix bytes for the two encrypted-WIF payload shapes (spec §3, §4.5,
// §4.6). Grounded on original_source/qtum_bip38/bip38.py's
// BIP38_NO_EC_MULTIPLIED_PRIVATE_KEY_PREFIX / _EC_MULTIPLIED_ variants,
// split into the two bytes Go's fixed-width payload slicing wants.
const (
	noECPrefixByte1 = 0x01
	noECPrefixByte2 = 0x42

	ecPrefixByte1 = 0x01
	ecPrefixByte2 = 0x43
)

// No-EC flag bits (spec §3 "Flag byte semantics").
const (
	noECFlagBase       byte = 0xc0 // two high bits set, identifies no-EC
	noECFlagCompressed byte = 0x20
)

// EC-multiply flag bits (spec §3).
const (
	ecFlagCompressed   byte = 0x20
	ecFlagLotSequence  byte = 0x04
	ecFlagReservedMask byte = 0xc3 // bits that must be zero for EC payloads
)

// Intermediate-passphrase magic numbers (spec §4.6.1), 8 bytes each,
// big-endian.
var (
	magicLotSequence   = [8]byte{0x2c, 0xe9, 0xb3, 0xe1, 0xff, 0x39, 0xe2, 0x51}
	magicNoLotSequence = [8]byte{0x2c, 0xe9, 0xb3, 0xe1, 0xff, 0x39, 0xe2, 0x53}
)

// Confirmation-code prefix (spec §3), 5 bytes.
var confirmationCodePrefix = [5]byte{0x64, 0x3b, 0xf6, 0xa8, 0x9a}

const (
	ownerSaltLen     = 8
	seedLen          = 24
	addressHashLen   = 4
	ownerEntropyLen  = 8
	passPointLen     = 33
	intermediateLen  = 8 + ownerEntropyLen + passPointLen // magic+entropy+passpoint
	confirmCodeLen   = 5 + 1 + addressHashLen + ownerEntropyLen + passPointLen
	noECPayloadLen   = 39 // prefix(2)+flag(1)+addresshash(4)+enc(32)
	ecPayloadLen     = 39 // prefix(2)+flag(1)+addresshash(4)+ownerentropy(8)+encpart1(8)+encpart2(16)
	maxLot           = 1_048_575
	maxSequence      = 4095
)
