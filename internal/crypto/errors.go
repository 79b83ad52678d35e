package crypto

import "errors"

var (
	// ErrMalformedCiphertext is returned when a ciphertext is not valid hex
	// or its length does not fit the cipher's block structure.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrNoTerminator is returned by v1 decryption when no UTF-16 NUL
	// terminator was found in the decrypted buffer.
	ErrNoTerminator = errors.New("v1 password terminator not found")

	// ErrPassphraseMismatch is returned by v2 decryption when the embedded
	// SHA-256 digest does not match the decrypted payload.
	ErrPassphraseMismatch = errors.New("v2 password digest mismatch")
)
