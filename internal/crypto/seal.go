package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blowfish"
	"golang.org/x/text/encoding/unicode"
)

// SealV1 produces the hex value SecureCRT stores after "S:"Password"=u" for
// password. The framing bytes are zero; SecureCRT uses random ones, which
// decryption ignores. Used to build test fixtures.
func SealV1(password string) (string, error) {
	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(password))
	if err != nil {
		return "", fmt.Errorf("encode utf-16: %w", err)
	}

	plain := zeroPad(append(utf16, 0x00, 0x00), blowfish.BlockSize)
	inner, err := blowfishCBCEncrypt(legacyKey2[:], plain)
	if err != nil {
		return "", err
	}

	framed := make([]byte, 0, len(inner)+2*legacyFrameSize)
	framed = append(framed, make([]byte, legacyFrameSize)...)
	framed = append(framed, inner...)
	framed = append(framed, make([]byte, legacyFrameSize)...)

	outer, err := blowfishCBCEncrypt(legacyKey1[:], framed)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(outer), nil
}

// SealV2 produces the hex value SecureCRT stores after
// "S:"Password V2"=02:" for password under passphrase.
func SealV2(password, passphrase string) (string, error) {
	payload := []byte(password)
	digest := sha256.Sum256(payload)

	plain := make([]byte, lengthPrefixSize, lengthPrefixSize+len(payload)+sha256.Size)
	binary.LittleEndian.PutUint32(plain, uint32(len(payload)))
	plain = append(plain, payload...)
	plain = append(plain, digest[:]...)
	plain = zeroPad(plain, aes.BlockSize)

	key := deriveV2Key(passphrase)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	out := make([]byte, len(plain))
	cipher.NewCBCEncrypter(block, make([]byte, aes.BlockSize)).CryptBlocks(out, plain)
	return hex.EncodeToString(out), nil
}

func blowfishCBCEncrypt(key, src []byte) ([]byte, error) {
	block, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create blowfish cipher: %w", err)
	}

	dst := make([]byte, len(src))
	cipher.NewCBCEncrypter(block, make([]byte, blowfish.BlockSize)).CryptBlocks(dst, src)
	return dst, nil
}

func zeroPad(b []byte, blockSize int) []byte {
	if rem := len(b) % blockSize; rem != 0 {
		b = append(b, make([]byte, blockSize-rem)...)
	}
	return b
}
