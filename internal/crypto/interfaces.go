package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/session_cipher_mock.go -package=mock

// SessionCipher recovers passwords stored in SecureCRT session files.
// It knows nothing about files, fields or sessions: it only turns a hex
// ciphertext into a plaintext password.
//
// Two storage schemes exist:
//
//	v1  S:"Password"=u<hex>       Blowfish-CBC(K1) ∘ unframe ∘ Blowfish-CBC(K2), UTF-16LE
//	v2  S:"Password V2"=02:<hex>  AES-256-CBC(SHA-256(passphrase)), len ‖ payload ‖ SHA-256(payload)
//
// Implementations hold no mutable state and are safe for concurrent use.
type SessionCipher interface {
	// DecryptV1 decrypts a "Password" value (without the leading "u").
	// Returns ErrMalformedCiphertext when the input cannot be a v1 value and
	// ErrNoTerminator when the decrypted buffer holds no UTF-16 NUL.
	DecryptV1(hexCiphertext string) (string, error)

	// DecryptV2 decrypts a "Password V2" value (without the leading "02:")
	// using the key derived from passphrase. An empty passphrase is the
	// SecureCRT default. Returns ErrMalformedCiphertext for unusable input
	// and ErrPassphraseMismatch when the integrity digest does not verify,
	// which almost always means the passphrase is wrong.
	DecryptV2(hexCiphertext, passphrase string) (string, error)
}
