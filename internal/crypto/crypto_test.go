package crypto

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AlexZinkM/creatorweb3/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap parameters; the production cost makes tests take seconds each
var testKDF = model.KDFParams{N: 1 << 10, R: 8, P: 1}

func testWallet() *model.WalletData {
	return &model.WalletData{
		PrivateKey: []byte("0123456789abcdef0123456789abcdef"),
		CreatedAt:  "2026-01-02T03:04:05Z",
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")

	err := EncryptWallet(path, "ethereum", "0xabc", "qr", testWallet(), []byte("secret"), testKDF)
	require.NoError(t, err)

	file, data, err := DecryptWallet(path, []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, "ethereum", file.Network)
	assert.Equal(t, "0xabc", file.Address)
	assert.Equal(t, testKDF, file.KDF)
	assert.Equal(t, testWallet().PrivateKey, data.PrivateKey)

	address, err := ReadWalletAddress(path)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", address)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestDecryptWrongPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	require.NoError(t, EncryptWallet(path, "ethereum", "0xabc", "", testWallet(), []byte("secret"), testKDF))

	_, _, err := DecryptWallet(path, []byte("nope"))
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestEncryptRejectsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	require.NoError(t, EncryptWallet(path, "ethereum", "0xabc", "", testWallet(), []byte("secret"), testKDF))

	err := EncryptWallet(path, "ethereum", "0xdef", "", testWallet(), []byte("secret"), testKDF)
	assert.True(t, errors.Is(err, ErrFileExists))
	assert.True(t, errors.Is(err, os.ErrExist))
}

func TestEncryptRejectsExtension(t *testing.T) {
	err := EncryptWallet(filepath.Join(t.TempDir(), "wallet.json"), "ethereum", "0xabc", "", testWallet(), []byte("secret"), testKDF)
	assert.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	_, err := ReadWalletFile(filepath.Join(t.TempDir(), "missing.cwt"))
	assert.ErrorIs(t, err, ErrNoWalletFile)
}

func TestReencrypt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallet.cwt")
	require.NoError(t, EncryptWallet(path, "ethereum", "0xabc", "", testWallet(), []byte("old"), testKDF))

	require.NoError(t, Reencrypt(path, []byte("old"), []byte("new"), testKDF))

	_, _, err := DecryptWallet(path, []byte("old"))
	assert.ErrorIs(t, err, ErrInvalidPassword)

	_, data, err := DecryptWallet(path, []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, testWallet().PrivateKey, data.PrivateKey)
}
