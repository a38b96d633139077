/*
Package encryption 提供个人数据的静态加密（AES-256-CTR）。

存储格式: base64(iv) + "___" + base64(ciphertext)
不含分隔符的值视为明文，解密时原样返回。
*/
package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	separator = "___"
	salt      = "salt"
	keyLength = 32
)

// ErrMalformedValue 密文格式错误
var ErrMalformedValue = errors.New("malformed encrypted value")

// Cipher encrypts and decrypts personal data with a key derived from a secret.
type Cipher struct {
	key []byte
}

// NewCipher derives the AES-256 key of secret with scrypt.
func NewCipher(secret string) (*Cipher, error) {
	if secret == "" {
		return nil, errors.New("encryption secret is required")
	}
	key, err := scrypt.Key([]byte(secret), []byte(salt), 16384, 8, 1, keyLength)
	if err != nil {
		return nil, fmt.Errorf("failed to derive encryption key: %w", err)
	}
	return &Cipher{key: key}, nil
}

// Encrypt encrypts value with a random initialization vector.
// Empty values stay empty.
func (c *Cipher) Encrypt(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}
	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate initialization vector: %w", err)
	}
	encrypted := make([]byte, len(value))
	cipher.NewCTR(block, iv).XORKeyStream(encrypted, []byte(value))

	return base64.StdEncoding.EncodeToString(iv) + separator + base64.StdEncoding.EncodeToString(encrypted), nil
}

// Decrypt reverses Encrypt. Values without separator are returned unchanged.
func (c *Cipher) Decrypt(value string) (string, error) {
	ivPart, dataPart, found := strings.Cut(value, separator)
	if !found {
		return value, nil
	}
	iv, err := base64.StdEncoding.DecodeString(ivPart)
	if err != nil || len(iv) != aes.BlockSize {
		return "", ErrMalformedValue
	}
	data, err := base64.StdEncoding.DecodeString(dataPart)
	if err != nil {
		return "", ErrMalformedValue
	}
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}
	decrypted := make([]byte, len(data))
	cipher.NewCTR(block, iv).XORKeyStream(decrypted, data)
	return string(decrypted), nil
}
