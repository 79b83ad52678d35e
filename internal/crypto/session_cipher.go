// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blowfish"

	"github.com/MKhiriev/securecrt-dump/internal/textenc"
)

// Fixed v1 keys. They are public knowledge (reverse engineered from the
// SecureCRT binary) and never change.
var (
	legacyKey1 = [16]byte{0x24, 0xA6, 0x3D, 0xDE, 0x5B, 0xD3, 0xB3, 0x82, 0x9C, 0x7E, 0x06, 0xF4, 0x08, 0x16, 0xAA, 0x07}
	legacyKey2 = [16]byte{0x5F, 0xB0, 0x45, 0xA2, 0x94, 0x17, 0xD9, 0x16, 0xC6, 0xC6, 0xA2, 0xFF, 0x06, 0x41, 0x82, 0xB7}
)

const (
	// v1 inner ciphertext is wrapped in 4 leading and 4 trailing bytes.
	legacyFrameSize = 4
	// v2 plaintext starts with a little-endian int32 payload length.
	lengthPrefixSize = 4
)

// sessionCipher is the private implementation of [SessionCipher].
type sessionCipher struct{}

// NewSessionCipher constructs a [SessionCipher].
func NewSessionCipher() SessionCipher {
	return &sessionCipher{}
}

// DecryptV1 implements [SessionCipher].
func (c *sessionCipher) DecryptV1(hexCiphertext string) (string, error) {
	raw, err := decodeHex(hexCiphertext)
	if err != nil {
		return "", err
	}
	if len(raw) < 2*legacyFrameSize || len(raw)%blowfish.BlockSize != 0 {
		return "", fmt.Errorf("%w: v1 ciphertext is %d bytes", ErrMalformedCiphertext, len(raw))
	}

	// 1. Outer layer
	framed, err := blowfishCBCDecrypt(legacyKey1[:], raw)
	if err != nil {
		return "", err
	}

	// 2. Drop the framing bytes; the remainder stays a multiple of 8
	inner := framed[legacyFrameSize : len(framed)-legacyFrameSize]

	// 3. Inner layer
	padded, err := blowfishCBCDecrypt(legacyKey2[:], inner)
	if err != nil {
		return "", err
	}

	// 4. Password ends at the first UTF-16 NUL
	end, ok := utf16Terminator(padded)
	if !ok {
		return "", ErrNoTerminator
	}

	return textenc.DecodeUTF16LE(padded[:end]), nil
}

// DecryptV2 implements [SessionCipher].
func (c *sessionCipher) DecryptV2(hexCiphertext, passphrase string) (string, error) {
	raw, err := decodeHex(hexCiphertext)
	if err != nil {
		return "", err
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: v2 ciphertext is %d bytes", ErrMalformedCiphertext, len(raw))
	}

	key := deriveV2Key(passphrase)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	plain := make([]byte, len(raw))
	cipher.NewCBCDecrypter(block, make([]byte, aes.BlockSize)).CryptBlocks(plain, raw)

	// A wrong key yields a random length, so an impossible length is the
	// same failure as a digest mismatch.
	n := int64(int32(binary.LittleEndian.Uint32(plain[:lengthPrefixSize])))
	if n < 0 || lengthPrefixSize+n+sha256.Size > int64(len(plain)) {
		return "", ErrPassphraseMismatch
	}

	payload := plain[lengthPrefixSize : lengthPrefixSize+n]
	digest := plain[lengthPrefixSize+n : lengthPrefixSize+n+sha256.Size]

	sum := sha256.Sum256(payload)
	if subtle.ConstantTimeCompare(sum[:], digest) != 1 {
		return "", ErrPassphraseMismatch
	}

	return string(payload), nil
}

// deriveV2Key returns SHA-256(passphrase). The key is derived per call and
// never cached.
func deriveV2Key(passphrase string) [sha256.Size]byte {
	return sha256.Sum256([]byte(passphrase))
}

func decodeHex(s string) ([]byte, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}
	return raw, nil
}

// blowfishCBCDecrypt decrypts src with a zero IV and no padding removal.
// len(src) must be a multiple of the block size.
func blowfishCBCDecrypt(key, src []byte) ([]byte, error) {
	block, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create blowfish cipher: %w", err)
	}

	dst := make([]byte, len(src))
	cipher.NewCBCDecrypter(block, make([]byte, blowfish.BlockSize)).CryptBlocks(dst, src)
	return dst, nil
}

// utf16Terminator returns the offset of the first aligned 00 00 pair.
func utf16Terminator(b []byte) (int, bool) {
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0x00 && b[i+1] == 0x00 {
			return i, true
		}
	}
	return 0, false
}
