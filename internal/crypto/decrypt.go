package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/creatorweb3/internal/model"
)

var (
	// ErrInvalidPassword is returned when the file cannot be opened with the given password
	ErrInvalidPassword = errors.New("invalid password")
	// ErrNoWalletFile is returned when the wallet file does not exist or is empty
	ErrNoWalletFile = errors.New("wallet file does not exist")
)

// DecryptWallet reads and decrypts a wallet file
// password must be []byte for security (caller should zero it after use)
func DecryptWallet(filePath string, password []byte) (*model.WalletFile, *model.WalletData, error) {
	file, err := ReadWalletFile(filePath)
	if err != nil {
		return nil, nil, err
	}

	salt, err := base64.StdEncoding.DecodeString(file.Salt)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(file.Nonce)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode nonce: %w", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(file.CipherText)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	kdf := file.KDF
	if kdf.N == 0 {
		// files written before kdf params were stored
		kdf = DefaultKDF()
	}

	aesGCM, err := newGCM(password, salt, kdf)
	if err != nil {
		return nil, nil, err
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, nil, ErrInvalidPassword
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	var walletData model.WalletData
	if err := json.Unmarshal(plaintext, &walletData); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal wallet data: %w", err)
	}

	return file, &walletData, nil
}

// ReadWalletFile reads the public part of a wallet file (without decryption)
func ReadWalletFile(filePath string) (*model.WalletFile, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoWalletFile
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	if fileInfo.Size() == 0 {
		return nil, ErrNoWalletFile
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	fileData = bytes.TrimPrefix(fileData, utf8BOM)

	var file model.WalletFile
	if err := json.Unmarshal(fileData, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet file: %w", err)
	}
	return &file, nil
}

// ReadWalletAddress reads only the address from a wallet file (without decryption)
func ReadWalletAddress(filePath string) (string, error) {
	file, err := ReadWalletFile(filePath)
	if err != nil {
		return "", err
	}
	return file.Address, nil
}
