package model

// WalletFile represents the encrypted wallet file structure
type WalletFile struct {
	Network    string    `json:"network"`
	Address    string    `json:"address"`
	QR         string    `json:"QR"`
	KDF        KDFParams `json:"kdf"`
	Salt       string    `json:"salt"`
	Nonce      string    `json:"nonce"`
	CipherText string    `json:"cipherText"`
}

// KDFParams are the scrypt parameters the file was encrypted with
type KDFParams struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

// WalletData represents decrypted wallet data
type WalletData struct {
	PrivateKey []byte `json:"privateKey"` // 32-byte secp256k1 scalar (stored as base64 in JSON)
	CreatedAt  string `json:"createdAt"`
}

// WalletSession is the connection state of the local wallet as seen by API clients
type WalletSession struct {
	Connected  bool   `json:"connected"`
	Connecting bool   `json:"connecting"`
	Address    string `json:"address,omitempty"`
	Balance    string `json:"balance,omitempty"` // native currency, ether units
	Error      string `json:"error,omitempty"`
}
