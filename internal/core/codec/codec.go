// Package codec implements the reversible confidentiality transform applied
// to a user's CPF, e-mail and phone number before they reach the store and
// after they leave it.
//
// Each value is sealed independently: a fresh 16-byte salt feeds
// PBKDF2-SHA256 to derive an AES-256 key from the passphrase, the plaintext
// is encrypted with AES-GCM under a random nonce, and the result is encoded
// as base64(salt ‖ nonce ‖ ciphertext). Two encryptions of the same value
// therefore never produce the same payload, which is also why uniqueness
// checks happen on decrypted data.
package codec

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"

	"github.com/lojaviva/commerce-system/internal/core/domain"
)

// DefaultPassphrase is the development fallback used when no passphrase is
// configured. Not suitable for production.
const DefaultPassphrase = "p@ssw0rd_f0r-t@sts"

const (
	saltSize   = 16
	nonceSize  = 12
	keySize    = 32
	iterations = 4096
)

var errPayloadTooShort = errors.New("payload too short")

// Codec seals and opens sensitive user fields with a shared passphrase.
type Codec struct {
	passphrase []byte
}

// New returns a Codec for the given passphrase, falling back to
// DefaultPassphrase when it is empty.
func New(passphrase string) *Codec {
	if passphrase == "" {
		passphrase = DefaultPassphrase
	}
	return &Codec{passphrase: []byte(passphrase)}
}

// EncryptValue seals a single plaintext value.
func (c *Codec) EncryptValue(plaintext string) (string, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return "", domain.NewEncryptionError(err)
	}

	gcm, err := c.aead(salt)
	if err != nil {
		return "", domain.NewEncryptionError(err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", domain.NewEncryptionError(err)
	}

	payload := append(salt, nonce...)
	payload = gcm.Seal(payload, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(payload), nil
}

// DecryptValue opens a payload produced by EncryptValue.
func (c *Codec) DecryptValue(encoded string) (string, error) {
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", domain.NewDecryptionError(err)
	}
	if len(payload) < saltSize+nonceSize {
		return "", domain.NewDecryptionError(errPayloadTooShort)
	}

	salt := payload[:saltSize]
	nonce := payload[saltSize : saltSize+nonceSize]
	ciphertext := payload[saltSize+nonceSize:]

	gcm, err := c.aead(salt)
	if err != nil {
		return "", domain.NewDecryptionError(err)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", domain.NewDecryptionError(err)
	}
	return string(plaintext), nil
}

// EncryptUser returns a copy of u with CPF, e-mail and phone number sealed.
// The input value is never modified, and the three fields transform
// atomically: any failure leaves no partially encrypted copy behind.
func (c *Codec) EncryptUser(u domain.User) (domain.User, error) {
	return c.transformUser(u, c.EncryptValue)
}

// DecryptUser returns a copy of u with CPF, e-mail and phone number opened.
func (c *Codec) DecryptUser(u domain.User) (domain.User, error) {
	return c.transformUser(u, c.DecryptValue)
}

// EncryptUsers seals a batch, preserving order and returning a new slice.
func (c *Codec) EncryptUsers(users []domain.User) ([]domain.User, error) {
	return c.transformUsers(users, c.EncryptUser)
}

// DecryptUsers opens a batch, preserving order and returning a new slice.
func (c *Codec) DecryptUsers(users []domain.User) ([]domain.User, error) {
	return c.transformUsers(users, c.DecryptUser)
}

func (c *Codec) transformUser(u domain.User, op func(string) (string, error)) (domain.User, error) {
	cpf, err := op(u.CPF)
	if err != nil {
		return domain.User{}, err
	}
	email, err := op(u.Email)
	if err != nil {
		return domain.User{}, err
	}
	phone, err := op(u.PhoneNumber)
	if err != nil {
		return domain.User{}, err
	}

	u.CPF = cpf
	u.Email = email
	u.PhoneNumber = phone
	return u, nil
}

func (c *Codec) transformUsers(users []domain.User, op func(domain.User) (domain.User, error)) ([]domain.User, error) {
	out := make([]domain.User, 0, len(users))
	for i, u := range users {
		transformed, err := op(u)
		if err != nil {
			return nil, fmt.Errorf("user %d of %d: %w", i+1, len(users), err)
		}
		out = append(out, transformed)
	}
	return out, nil
}

func (c *Codec) aead(salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key(c.passphrase, salt, iterations, keySize, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
