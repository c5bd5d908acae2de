package persistence

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
)

// DefaultPassphrase seals saves when no key is configured.
const DefaultPassphrase = "hoopsim-local-development-key"

// ErrDecrypt is returned when a sealed blob cannot be opened with the key.
var ErrDecrypt = errors.New("save could not be decrypted")

func gcm(passphrase string) (cipher.AEAD, error) {
	key := sha256.Sum256([]byte(passphrase))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plain with AES-256-GCM under a key derived from passphrase.
// The result is nonce followed by ciphertext.
func Seal(plain []byte, passphrase string) ([]byte, error) {
	return sealWith(plain, passphrase, rand.Reader)
}

func sealWith(plain []byte, passphrase string, nonces io.Reader) ([]byte, error) {
	aead, err := gcm(passphrase)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(nonces, nonce); err != nil {
		return nil, fmt.Errorf("reading nonce: %w", err)
	}
	return aead.Seal(nonce, nonce, plain, nil), nil
}

// Unseal reverses Seal. A wrong key or a damaged blob yields ErrDecrypt.
func Unseal(blob []byte, passphrase string) ([]byte, error) {
	aead, err := gcm(passphrase)
	if err != nil {
		return nil, err
	}
	if len(blob) < aead.NonceSize() {
		return nil, fmt.Errorf("%w: blob too short", ErrDecrypt)
	}
	nonce, body := blob[:aead.NonceSize()], blob[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, body, nil)
	if err != nil {
		return nil, ErrDecrypt
	}
	return plain, nil
}
