package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"
)

func mustSealV1(t *testing.T, password string) string {
	t.Helper()
	ct, err := SealV1(password)
	if err != nil {
		t.Fatalf("SealV1 error: %v", err)
	}
	return ct
}

func mustSealV2(t *testing.T, password, passphrase string) string {
	t.Helper()
	ct, err := SealV2(password, passphrase)
	if err != nil {
		t.Fatalf("SealV2 error: %v", err)
	}
	return ct
}

func TestDecryptV1_RoundTrip(t *testing.T) {
	svc := NewSessionCipher()

	for _, password := range []string{"Tr0ub4dor", "", "a", "exactly8", "пароль с пробелами", "🔑 key"} {
		ct := mustSealV1(t, password)

		got, err := svc.DecryptV1(ct)
		if err != nil {
			t.Fatalf("DecryptV1(%q) error: %v", password, err)
		}
		if got != password {
			t.Fatalf("DecryptV1 = %q, want %q", got, password)
		}
	}
}

func TestDecryptV1_CiphertextIsLowerHex(t *testing.T) {
	ct := mustSealV1(t, "Tr0ub4dor")

	if ct != strings.ToLower(ct) {
		t.Fatalf("expected lowercase hex, got %q", ct)
	}
	if len(ct)%16 != 0 {
		t.Fatalf("expected a whole number of blowfish blocks, got %d hex chars", len(ct))
	}
}

func TestDecryptV1_Deterministic(t *testing.T) {
	svc := NewSessionCipher()
	ct := mustSealV1(t, "Tr0ub4dor")

	first, err1 := svc.DecryptV1(ct)
	second, err2 := svc.DecryptV1(ct)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if first != second {
		t.Fatalf("expected identical results, got %q and %q", first, second)
	}

	bad := strings.Repeat("00", 8)
	_, err1 = svc.DecryptV1(bad)
	_, err2 = svc.DecryptV1(bad)
	if !errors.Is(err1, ErrNoTerminator) || !errors.Is(err2, ErrNoTerminator) {
		t.Fatalf("expected ErrNoTerminator twice, got %v and %v", err1, err2)
	}
}

func TestDecryptV1_Malformed(t *testing.T) {
	svc := NewSessionCipher()

	inputs := map[string]string{
		"empty":            "",
		"odd length":       "abc",
		"non-hex":          "zz00zz00zz00zz00",
		"not block sized":  strings.Repeat("00", 12),
		"shorter than one": strings.Repeat("00", 4),
	}

	for name, in := range inputs {
		got, err := svc.DecryptV1(in)
		if !errors.Is(err, ErrMalformedCiphertext) {
			t.Fatalf("%s: expected ErrMalformedCiphertext, got %v", name, err)
		}
		if got != "" {
			t.Fatalf("%s: expected no plaintext, got %q", name, got)
		}
	}
}

func TestDecryptV1_NoTerminatorReturnsNothing(t *testing.T) {
	svc := NewSessionCipher()

	// UTF-16LE "ABCD" with no trailing NUL.
	plain := []byte{'A', 0, 'B', 0, 'C', 0, 'D', 0}
	inner, err := blowfishCBCEncrypt(legacyKey2[:], plain)
	if err != nil {
		t.Fatalf("encrypt inner: %v", err)
	}
	framed := append(append(make([]byte, 4), inner...), make([]byte, 4)...)
	outer, err := blowfishCBCEncrypt(legacyKey1[:], framed)
	if err != nil {
		t.Fatalf("encrypt outer: %v", err)
	}

	got, err := svc.DecryptV1(hex.EncodeToString(outer))
	if !errors.Is(err, ErrNoTerminator) {
		t.Fatalf("expected ErrNoTerminator, got %v", err)
	}
	if got != "" {
		t.Fatalf("expected no partial plaintext, got %q", got)
	}
}

func TestDecryptV1_StopsAtFirstAlignedNul(t *testing.T) {
	svc := NewSessionCipher()

	// "A" 00 00 "B": the password is "A" even though more bytes follow.
	plain := []byte{'A', 0, 0, 0, 'B', 0, 0, 0}
	inner, err := blowfishCBCEncrypt(legacyKey2[:], plain)
	if err != nil {
		t.Fatalf("encrypt inner: %v", err)
	}
	framed := append(append([]byte{1, 2, 3, 4}, inner...), 5, 6, 7, 8)
	outer, err := blowfishCBCEncrypt(legacyKey1[:], framed)
	if err != nil {
		t.Fatalf("encrypt outer: %v", err)
	}

	got, err := svc.DecryptV1(hex.EncodeToString(outer))
	if err != nil {
		t.Fatalf("DecryptV1 error: %v", err)
	}
	if got != "A" {
		t.Fatalf("DecryptV1 = %q, want %q", got, "A")
	}
}

func TestDecryptV2_RoundTrip(t *testing.T) {
	svc := NewSessionCipher()
	payload := "correct horse battery staple"

	ct := mustSealV2(t, payload, "secret")

	got, err := svc.DecryptV2(ct, "secret")
	if err != nil {
		t.Fatalf("DecryptV2 error: %v", err)
	}
	if got != payload {
		t.Fatalf("DecryptV2 = %q, want %q", got, payload)
	}
}

func TestDecryptV2_WrongPassphrase(t *testing.T) {
	svc := NewSessionCipher()
	ct := mustSealV2(t, "correct horse battery staple", "secret")

	got, err := svc.DecryptV2(ct, "wrong")
	if !errors.Is(err, ErrPassphraseMismatch) {
		t.Fatalf("expected ErrPassphraseMismatch, got %v", err)
	}
	if got != "" {
		t.Fatalf("expected no plaintext, got %q", got)
	}
}

func TestDecryptV2_DefaultEmptyPassphrase(t *testing.T) {
	svc := NewSessionCipher()
	ct := mustSealV2(t, "hunter2", "")

	got, err := svc.DecryptV2(ct, "")
	if err != nil {
		t.Fatalf("DecryptV2 error: %v", err)
	}
	if got != "hunter2" {
		t.Fatalf("DecryptV2 = %q, want %q", got, "hunter2")
	}

	// Passphrase set at install time, none supplied.
	ct = mustSealV2(t, "hunter2", "abc")
	if _, err = svc.DecryptV2(ct, ""); !errors.Is(err, ErrPassphraseMismatch) {
		t.Fatalf("expected ErrPassphraseMismatch, got %v", err)
	}
}

func TestDecryptV2_Payloads(t *testing.T) {
	svc := NewSessionCipher()

	for _, payload := range []string{"", "x", strings.Repeat("p", 12), strings.Repeat("long", 40), "päss wörd"} {
		ct := mustSealV2(t, payload, "k")

		got, err := svc.DecryptV2(ct, "k")
		if err != nil {
			t.Fatalf("DecryptV2(%q) error: %v", payload, err)
		}
		if got != payload {
			t.Fatalf("DecryptV2 = %q, want %q", got, payload)
		}
	}
}

func TestDecryptV2_Malformed(t *testing.T) {
	svc := NewSessionCipher()

	inputs := map[string]string{
		"empty":           "",
		"odd length":      "abc",
		"non-hex":         strings.Repeat("zz", 16),
		"not block sized": strings.Repeat("00", 20),
	}

	for name, in := range inputs {
		if _, err := svc.DecryptV2(in, ""); !errors.Is(err, ErrMalformedCiphertext) {
			t.Fatalf("%s: expected ErrMalformedCiphertext, got %v", name, err)
		}
	}
}

func TestDecryptV2_ImpossibleLength(t *testing.T) {
	svc := NewSessionCipher()
	key := deriveV2Key("k")

	for _, prefix := range [][]byte{
		{0xFF, 0xFF, 0xFF, 0xFF}, // -1
		{0x00, 0x01, 0x00, 0x00}, // 256, past the buffer
	} {
		plain := append(append([]byte{}, prefix...), make([]byte, 60)...)

		block, err := aes.NewCipher(key[:])
		if err != nil {
			t.Fatalf("aes: %v", err)
		}
		ct := make([]byte, len(plain))
		cipher.NewCBCEncrypter(block, make([]byte, aes.BlockSize)).CryptBlocks(ct, plain)

		if _, err = svc.DecryptV2(hex.EncodeToString(ct), "k"); !errors.Is(err, ErrPassphraseMismatch) {
			t.Fatalf("prefix %x: expected ErrPassphraseMismatch, got %v", prefix, err)
		}
	}
}

func TestSessionCipher_ConcurrentUse(t *testing.T) {
	svc := NewSessionCipher()
	v1 := mustSealV1(t, "one")
	v2 := mustSealV2(t, "two", "secret")

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got, err := svc.DecryptV1(v1); err != nil || got != "one" {
				errs <- errors.New("v1 mismatch")
			}
			if got, err := svc.DecryptV2(v2, "secret"); err != nil || got != "two" {
				errs <- errors.New("v2 mismatch")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}
}
