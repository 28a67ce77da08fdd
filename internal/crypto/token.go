package crypto

import (
	"encoding/base64"
	"fmt"
)

// TokenCipher encrypts and decrypts git access tokens for storage. Each
// token gets its own salt and nonce; both are packed into the stored value
// so decryption only needs the passphrase.
type TokenCipher struct {
	passphrase string
}

// NewTokenCipher returns a cipher bound to the given passphrase, or nil when
// the passphrase is empty (tokens are then stored as-is).
func NewTokenCipher(passphrase string) *TokenCipher {
	if passphrase == "" {
		return nil
	}
	return &TokenCipher{passphrase: passphrase}
}

// EncryptToken encrypts a token and returns base64(salt || nonce || ciphertext).
func (tc *TokenCipher) EncryptToken(token string) (string, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return "", err
	}

	key := DeriveKey(tc.passphrase, salt, PBKDF2Iterations)
	ciphertext, nonce, err := Encrypt(token, key)
	if err != nil {
		return "", err
	}

	packed := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext))
	packed = append(packed, salt...)
	packed = append(packed, nonce...)
	packed = append(packed, ciphertext...)
	return base64.StdEncoding.EncodeToString(packed), nil
}

// DecryptToken reverses EncryptToken.
func (tc *TokenCipher) DecryptToken(stored string) (string, error) {
	packed, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return "", fmt.Errorf("invalid stored token: %w", err)
	}
	if len(packed) < SaltLength+NonceLength {
		return "", fmt.Errorf("invalid stored token: too short")
	}

	salt := packed[:SaltLength]
	nonce := packed[SaltLength : SaltLength+NonceLength]
	ciphertext := packed[SaltLength+NonceLength:]

	key := DeriveKey(tc.passphrase, salt, PBKDF2Iterations)
	return Decrypt(ciphertext, nonce, key)
}
