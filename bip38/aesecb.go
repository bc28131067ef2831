package bip38

import "crypto/aes"

// aesECBEncrypt and aesECBDecrypt implement AES-256 in ECB mode over a
// single 16-byte block, exactly as the teacher's bip38/bip38.go Encrypt/
// Decrypt do with crypto/aes's block cipher directly — BIP38 only ever
// encrypts fixed 16-byte halves, so there's no multi-block chaining to
// get wrong and no need for a third-party ECB wrapper (crypto/aes's
// cipher.Block is already block-at-a-time).

func aesECBEncrypt(key, block []byte) []byte {
	c, err := aes.NewCipher(key)
	if err != nil {
		panic(err) // key is always 32 bytes here; NewCipher only fails on bad key size
	}
	dst := make([]byte, aes.BlockSize)
	c.Encrypt(dst, block)
	return dst
}

func aesECBDecrypt(key, block []byte) []byte {
	c, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}
	dst := make([]byte, aes.BlockSize)
	c.Decrypt(dst, block)
	return dst
}
