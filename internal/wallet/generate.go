package wallet

import (
	"encoding/base64"
	"fmt"
	"time"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/skip2/go-qrcode"

	"github.com/AlexZinkM/creatorweb3/internal/crypto"
	"github.com/AlexZinkM/creatorweb3/internal/model"
)

const (
	networkEthereum = "ethereum"
	qrSize          = 256
)

// GenerateWallet generates a new key and saves it to a .cwt file.
// Returns the generated address on success.
// password must be []byte for security (caller should zero it after use)
func GenerateWallet(filePath string, password []byte, kdf model.KDFParams) (address string, err error) {
	// Generate new secp256k1 key
	key, err := ethcrypto.GenerateKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}
	privateKey := ethcrypto.FromECDSA(key)
	defer clear(privateKey)

	address = ethcrypto.PubkeyToAddress(key.PublicKey).Hex()

	// Generate QR code
	qrCode, err := generateQRCode(address)
	if err != nil {
		return "", fmt.Errorf("failed to generate QR code: %w", err)
	}

	walletData := &model.WalletData{
		PrivateKey: privateKey,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	// Encrypt and write to file
	if err := crypto.EncryptWallet(filePath, networkEthereum, address, qrCode, walletData, password, kdf); err != nil {
		return "", fmt.Errorf("failed to encrypt wallet: %w", err)
	}

	return address, nil
}

// AddressQR renders address as a PNG QR code
func AddressQR(address string) ([]byte, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(qrSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}
	return png, nil
}

// generateQRCode generates QR code of address in base64
func generateQRCode(address string) (string, error) {
	png, err := AddressQR(address)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}
