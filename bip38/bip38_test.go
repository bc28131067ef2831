package bip38

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/qtumproject/qtum-bip38/base58"
	"github.com/qtumproject/qtum-bip38/bip38errors"
)

const goldenPassphrase = "qtum123"

func TestNoECEncryptGoldenVectors(t *testing.T) {
	const priv = "cbf4b9f70470856bb4f40f80b87edb90865997ffee6df315ab166d713af433a5"

	cases := []struct {
		name        string
		wifType     WIFType
		wantEncrypt string
		wantAddress string
	}{
		{
			name:        "uncompressed",
			wifType:     WIFUncompressed,
			wantEncrypt: "6PRP4FDk4BWidB539rEWBH26DRcG2tavQg52WRcyuK5dxMdu8WHVftRZof",
			wantAddress: "QeS5U4AEaxPpJ8swzLHEcNbAaNkDfpWjQN",
		},
		{
			name:        "compressed",
			wifType:     WIFCompressed,
			wantEncrypt: "6PYUYP8xySgSbqtYXHGfWUn1xL9F3r9qKru8CUbqeK94QSrJcrSAmZoaEd",
			wantAddress: "QRfLX1RpJN25v2jKGPYsQHu8G1ag3sHJeL",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			wif, err := PrivateKeyToWIF(priv, c.wifType, MainNet)
			if err != nil {
				t.Fatalf("PrivateKeyToWIF: %v", err)
			}

			encrypted, err := Encrypt(wif, goldenPassphrase, MainNet)
			if err != nil {
				t.Fatalf("Encrypt: %v", err)
			}
			if encrypted != c.wantEncrypt {
				t.Fatalf("Encrypt = %s, want %s", encrypted, c.wantEncrypt)
			}

			detail, err := DecryptDetail(encrypted, goldenPassphrase, MainNet)
			if err != nil {
				t.Fatalf("DecryptDetail: %v", err)
			}
			if detail.PrivateKeyHex != priv {
				t.Fatalf("decrypted private key = %s, want %s", detail.PrivateKeyHex, priv)
			}
			if detail.Address != c.wantAddress {
				t.Fatalf("decrypted address = %s, want %s", detail.Address, c.wantAddress)
			}
		})
	}
}

func TestNoECDecryptWrongPassphrase(t *testing.T) {
	_, err := Decrypt("6PRP4FDk4BWidB539rEWBH26DRcG2tavQg52WRcyuK5dxMdu8WHVftRZof", "wrong-passphrase", MainNet)
	if err == nil {
		t.Fatalf("expected an error for the wrong passphrase")
	}
}

func TestNoECDecryptRejectsReservedFlagBits(t *testing.T) {
	raw, err := base58.CheckDecode("6PRP4FDk4BWidB539rEWBH26DRcG2tavQg52WRcyuK5dxMdu8WHVftRZof")
	if err != nil {
		t.Fatalf("CheckDecode: %v", err)
	}
	raw[2] = 0x00 // neither 0xc0 nor 0xe0
	malformed := base58.CheckEncode(raw)

	_, err = Decrypt(malformed, goldenPassphrase, MainNet)
	if !errors.Is(err, bip38errors.UnsupportedFlag) {
		t.Fatalf("Decrypt error = %v, want UnsupportedFlag", err)
	}
}

func TestECMultiplyDecryptGoldenVectors(t *testing.T) {
	cases := []struct {
		name        string
		encrypted   string
		wantPriv    string // empty when not asserted
		wantAddress string
	}{
		{
			name:        "no lot/seq, uncompressed",
			encrypted:   "6PfMmFWzXobLGrJReqJaNnGcaCMd9T3Xhcwp2jkCHZ6jZoDJ2MnKk15ZuV",
			wantPriv:    "34de039d8e90172f246ec3190fc8bd98e46f11bc5d50d062d0d6f806e43372a9",
			wantAddress: "QXsy25WUg3kARS1o4t8si4AsyuwZjLkY9R",
		},
		{
			name:        "lot/seq, uncompressed",
			encrypted:   "6PgLaWLw6fb6uDBtnN6QVyT9AbvN4zFi8E4oLdSiEWCqsHZFAtcY4wP4LW",
			wantPriv:    "e1013f4521ffeefb06aad092a040189075a5163af3c6cb7ca1622cbea2d498fc",
			wantAddress: "QfAtAjYNEQMAVtxNaXCWcg1rws3ubJJAED",
		},
		{
			name:        "no lot/seq, compressed",
			encrypted:   "6PnQ3P5GdsSJSUcJCAmtvn74U9gqPs8JMZLdVBkBYsUvSVd4TjgSZEqB7w",
			wantAddress: "QS3xSF9psn8DMT6uBExPDkm258eJPqJbsB",
		},
		{
			name:        "lot/seq, compressed",
			encrypted:   "6PoLtrDYSMopr5nRKDN9LDanSPiSPRQ3vkfmT2gj4c3E3S5FeGTmyuG12z",
			wantAddress: "QQ2yBHc39h3Fyb8AnKuwtw1Soxpq9f4GRt",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			detail, err := DecryptDetail(c.encrypted, goldenPassphrase, MainNet)
			if err != nil {
				t.Fatalf("DecryptDetail: %v", err)
			}
			if c.wantPriv != "" && detail.PrivateKeyHex != c.wantPriv {
				t.Fatalf("decrypted private key = %s, want %s", detail.PrivateKeyHex, c.wantPriv)
			}
			if detail.Address != c.wantAddress {
				t.Fatalf("decrypted address = %s, want %s", detail.Address, c.wantAddress)
			}
		})
	}
}

func TestECMultiplyEncryptGoldenVectors(t *testing.T) {
	ownerSalt, err := hex.DecodeString("75ed1cdeb254cb38")
	if err != nil {
		t.Fatalf("decode owner_salt: %v", err)
	}
	seed, err := hex.DecodeString("99241d58245c883896f80843d2846672d7312e6195ca1a6c")
	if err != nil {
		t.Fatalf("decode seed: %v", err)
	}

	cases := []struct {
		name          string
		publicKeyType PublicKeyType
		lot, sequence *int
		wantEncrypt   string
		wantAddress   string
	}{
		{
			name:          "no lot/seq, uncompressed",
			publicKeyType: Uncompressed,
			wantEncrypt:   "6PfMmFWzXobLGrJReqJaNnGcaCMd9T3Xhcwp2jkCHZ6jZoDJ2MnKk15ZuV",
			wantAddress:   "QXsy25WUg3kARS1o4t8si4AsyuwZjLkY9R",
		},
		{
			name:          "lot/seq, uncompressed",
			publicKeyType: Uncompressed,
			lot:           intPtr(567885),
			sequence:      intPtr(1),
			wantEncrypt:   "6PgLaWLw6fb6uDBtnN6QVyT9AbvN4zFi8E4oLdSiEWCqsHZFAtcY4wP4LW",
			wantAddress:   "QfAtAjYNEQMAVtxNaXCWcg1rws3ubJJAED",
		},
		{
			name:          "no lot/seq, compressed",
			publicKeyType: Compressed,
			wantEncrypt:   "6PnQ3P5GdsSJSUcJCAmtvn74U9gqPs8JMZLdVBkBYsUvSVd4TjgSZEqB7w",
			wantAddress:   "QS3xSF9psn8DMT6uBExPDkm258eJPqJbsB",
		},
		{
			name:          "lot/seq, compressed",
			publicKeyType: Compressed,
			lot:           intPtr(369861),
			sequence:      intPtr(1),
			wantEncrypt:   "6PoLtrDYSMopr5nRKDN9LDanSPiSPRQ3vkfmT2gj4c3E3S5FeGTmyuG12z",
			wantAddress:   "QQ2yBHc39h3Fyb8AnKuwtw1Soxpq9f4GRt",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			intermediate, err := IntermediateCode(goldenPassphrase, ownerSalt, c.lot, c.sequence)
			if err != nil {
				t.Fatalf("IntermediateCode: %v", err)
			}

			created, err := CreateNewEncryptedWIF(intermediate, c.publicKeyType, seed, MainNet)
			if err != nil {
				t.Fatalf("CreateNewEncryptedWIF: %v", err)
			}
			if created.EncryptedWIF != c.wantEncrypt {
				t.Fatalf("EncryptedWIF = %s, want %s", created.EncryptedWIF, c.wantEncrypt)
			}
			if created.Address != c.wantAddress {
				t.Fatalf("Address = %s, want %s", created.Address, c.wantAddress)
			}

			confirmed, err := ConfirmCodeDetail(goldenPassphrase, created.ConfirmationCode, MainNet)
			if err != nil {
				t.Fatalf("ConfirmCodeDetail: %v", err)
			}
			if confirmed.Address != c.wantAddress {
				t.Fatalf("confirmed address = %s, want %s", confirmed.Address, c.wantAddress)
			}
		})
	}
}

func intPtr(v int) *int { return &v }

func TestECMultiplyRoundTrip(t *testing.T) {
	intermediate, err := IntermediateCode(goldenPassphrase, nil, nil, nil)
	if err != nil {
		t.Fatalf("IntermediateCode: %v", err)
	}

	created, err := CreateNewEncryptedWIF(intermediate, Compressed, nil, MainNet)
	if err != nil {
		t.Fatalf("CreateNewEncryptedWIF: %v", err)
	}

	detail, err := DecryptDetail(created.EncryptedWIF, goldenPassphrase, MainNet)
	if err != nil {
		t.Fatalf("DecryptDetail: %v", err)
	}
	if detail.Address != created.Address {
		t.Fatalf("decrypted address %s does not match minted address %s", detail.Address, created.Address)
	}
	if detail.PublicKeyHex != created.PublicKeyHex {
		t.Fatalf("decrypted public key %s does not match minted public key %s", detail.PublicKeyHex, created.PublicKeyHex)
	}

	confirmed, err := ConfirmCodeDetail(goldenPassphrase, created.ConfirmationCode, MainNet)
	if err != nil {
		t.Fatalf("ConfirmCodeDetail: %v", err)
	}
	if confirmed.Address != created.Address {
		t.Fatalf("confirmed address %s does not match minted address %s", confirmed.Address, created.Address)
	}
}

func TestECMultiplyRoundTripWithLotSequence(t *testing.T) {
	lot, sequence := 123456, 7

	intermediate, err := IntermediateCode(goldenPassphrase, nil, &lot, &sequence)
	if err != nil {
		t.Fatalf("IntermediateCode: %v", err)
	}

	created, err := CreateNewEncryptedWIF(intermediate, Uncompressed, nil, MainNet)
	if err != nil {
		t.Fatalf("CreateNewEncryptedWIF: %v", err)
	}

	detail, err := DecryptDetail(created.EncryptedWIF, goldenPassphrase, MainNet)
	if err != nil {
		t.Fatalf("DecryptDetail: %v", err)
	}
	if detail.Lot == nil || *detail.Lot != lot {
		t.Fatalf("decrypted lot = %v, want %d", detail.Lot, lot)
	}
	if detail.Sequence == nil || *detail.Sequence != sequence {
		t.Fatalf("decrypted sequence = %v, want %d", detail.Sequence, sequence)
	}
}

func TestIntermediateCodeRejectsSequenceWithoutLot(t *testing.T) {
	sequence := 1
	_, err := IntermediateCode(goldenPassphrase, nil, nil, &sequence)
	if err == nil {
		t.Fatalf("expected an error when sequence is set without lot")
	}
}

func TestIntermediateCodeRejectsOutOfRangeLot(t *testing.T) {
	lot, sequence := 1_048_576, 0
	_, err := IntermediateCode(goldenPassphrase, nil, &lot, &sequence)
	if err == nil {
		t.Fatalf("expected InvalidLot for lot out of range")
	}
}
