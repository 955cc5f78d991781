package fieldcrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/BrenoDPS/teste-tecnico-backend/pkg/config"
)

// ErrInvalidCiphertext is returned when a stored value cannot be decrypted,
// either because it was truncated or because it was produced with another key.
var ErrInvalidCiphertext = errors.New("fieldcrypt: invalid ciphertext")

// Encryptor encrypts and decrypts single column values with AES-GCM. It is the
// explicit encode/decode pair used at the repository boundary for the supplier
// national id; nothing encrypts as a side effect of field access.
type Encryptor struct {
	aead cipher.AEAD
}

// New builds an Encryptor from the configured field key. The key must be
// 16, 24 or 32 bytes.
func New(cfg *config.CryptoConfig) (*Encryptor, error) {
	block, err := aes.NewCipher([]byte(cfg.FieldKey))
	if err != nil {
		return nil, fmt.Errorf("fieldcrypt: bad key: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("fieldcrypt: %w", err)
	}
	return &Encryptor{aead: aead}, nil
}

// Encrypt returns the base64 ciphertext for plaintext. Empty input stays empty
// so that absent national ids round-trip as absent.
func (e *Encryptor) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, e.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("fieldcrypt: %w", err)
	}

	sealed := e.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt reverses Encrypt. Empty input stays empty.
func (e *Encryptor) Decrypt(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	if len(sealed) < e.aead.NonceSize() {
		return "", ErrInvalidCiphertext
	}

	nonce, ciphertext := sealed[:e.aead.NonceSize()], sealed[e.aead.NonceSize():]
	plaintext, err := e.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrInvalidCiphertext
	}
	return string(plaintext), nil
}
