package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AlexZinkM/creatorweb3/internal/model"

	"golang.org/x/crypto/scrypt"
)

const (
	// WalletFileExt is the extension every wallet file must carry
	WalletFileExt = ".cwt"

	// scrypt parameters for new files (N=2^18 needs ~256MB RAM)
	defaultScryptN = 1 << 18
	defaultScryptR = 8
	defaultScryptP = 1
	scryptKeyLen   = 32
	saltLen        = 32
	nonceLen       = 12
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrFileExists is returned when the target wallet file exists and is not empty
var ErrFileExists = errors.New("file is not empty")

// DefaultKDF returns the scrypt parameters used for new wallet files
func DefaultKDF() model.KDFParams {
	return model.KDFParams{N: defaultScryptN, R: defaultScryptR, P: defaultScryptP}
}

// EncryptWallet encrypts wallet data and writes it to a .cwt file.
// The file must not exist or be empty.
// password must be []byte for security (caller should zero it after use)
func EncryptWallet(filePath string, network, address, qrCode string, walletData *model.WalletData, password []byte, kdf model.KDFParams) error {
	if filepath.Ext(filePath) != WalletFileExt {
		return fmt.Errorf("file must have %s extension", WalletFileExt)
	}

	if fileInfo, err := os.Stat(filePath); err == nil && fileInfo.Size() > 0 {
		return fmt.Errorf("%w: %w", ErrFileExists, os.ErrExist)
	}

	file, err := seal(network, address, qrCode, walletData, password, kdf)
	if err != nil {
		return err
	}
	return writeWalletFile(filePath, file)
}

// Reencrypt decrypts the wallet file with oldPassword and rewrites it with
// newPassword, a fresh salt and a fresh nonce.
func Reencrypt(filePath string, oldPassword, newPassword []byte, kdf model.KDFParams) error {
	file, walletData, err := DecryptWallet(filePath, oldPassword)
	if err != nil {
		return err
	}
	defer clear(walletData.PrivateKey)

	sealed, err := seal(file.Network, file.Address, file.QR, walletData, newPassword, kdf)
	if err != nil {
		return err
	}
	return writeWalletFile(filePath, sealed)
}

func seal(network, address, qrCode string, walletData *model.WalletData, password []byte, kdf model.KDFParams) (*model.WalletFile, error) {
	// Generate salt and nonce
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	aesGCM, err := newGCM(password, salt, kdf)
	if err != nil {
		return nil, err
	}

	// Serialize wallet data
	plaintext, err := json.Marshal(walletData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal wallet data: %w", err)
	}
	defer clear(plaintext) // wipe plaintext bytes from memory

	ciphertext := aesGCM.Seal(nil, nonce, plaintext, nil)

	return &model.WalletFile{
		Network:    network,
		Address:    address,
		QR:         qrCode,
		KDF:        kdf,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
	}, nil
}

// newGCM derives the file key from password and builds the AES-GCM cipher
func newGCM(password, salt []byte, kdf model.KDFParams) (cipher.AEAD, error) {
	key, err := scrypt.Key(password, salt, kdf.N, kdf.R, kdf.P, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}

func writeWalletFile(filePath string, file *model.WalletFile) error {
	fileData, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal wallet file: %w", err)
	}

	// UTF-8 BOM for proper display in Windows
	fileDataWithBOM := append(append([]byte{}, utf8BOM...), fileData...)

	if err := os.WriteFile(filePath, fileDataWithBOM, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
