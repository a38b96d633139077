package encryption

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipher_RoundTrip(t *testing.T) {
	c, err := NewCipher("personal-data-secret")
	require.NoError(t, err)

	for _, value := range []string{gofakeit.Name(), gofakeit.Email(), gofakeit.Phone(), "Île-d'Orléans, Québec"} {
		encrypted, err := c.Encrypt(value)
		require.NoError(t, err)
		assert.NotEqual(t, value, encrypted)
		assert.Contains(t, encrypted, "___")

		decrypted, err := c.Decrypt(encrypted)
		require.NoError(t, err)
		assert.Equal(t, value, decrypted)
	}
}

func TestCipher_RandomInitializationVector(t *testing.T) {
	c, err := NewCipher("secret")
	require.NoError(t, err)

	first, err := c.Encrypt("same value")
	require.NoError(t, err)
	second, err := c.Encrypt("same value")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, strings.Split(first, "___")[0], strings.Split(second, "___")[0])
}

func TestCipher_PlainValuesPassThrough(t *testing.T) {
	c, err := NewCipher("secret")
	require.NoError(t, err)

	decrypted, err := c.Decrypt("not encrypted")
	require.NoError(t, err)
	assert.Equal(t, "not encrypted", decrypted)

	empty, err := c.Encrypt("")
	require.NoError(t, err)
	assert.Equal(t, "", empty)
}

func TestCipher_WrongKeyDoesNotRecoverValue(t *testing.T) {
	c1, err := NewCipher("first")
	require.NoError(t, err)
	c2, err := NewCipher("second")
	require.NoError(t, err)

	encrypted, err := c1.Encrypt("Jeanne")
	require.NoError(t, err)

	decrypted, err := c2.Decrypt(encrypted)
	require.NoError(t, err)
	assert.NotEqual(t, "Jeanne", decrypted)
}

func TestCipher_Errors(t *testing.T) {
	_, err := NewCipher("")
	assert.Error(t, err)

	c, err := NewCipher("secret")
	require.NoError(t, err)
	_, err = c.Decrypt("!!!___abc")
	assert.ErrorIs(t, err, ErrMalformedValue)
}
