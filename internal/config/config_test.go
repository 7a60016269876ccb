package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	factory     = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	marketplace = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CREATOR_FACTORY_ADDRESS", factory)
	t.Setenv("CREATOR_MARKETPLACE_ADDRESS", marketplace)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, int64(31337), cfg.ChainID)
	assert.Equal(t, "https://ipfs.io/ipfs", cfg.IPFSGatewayURL)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, int64(50<<20), cfg.MaxUploadBytes())
}

func TestLoadMissingAddresses(t *testing.T) {
	t.Setenv("CREATOR_FACTORY_ADDRESS", "")
	t.Setenv("CREATOR_MARKETPLACE_ADDRESS", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad address", "CREATOR_FACTORY_ADDRESS", "0x123"},
		{"bad rpc url", "RPC_URL", "not a url"},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"zero workers", "UPLOAD_WORKERS", "0"},
		{"bad chain id", "CHAIN_ID", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CREATOR_FACTORY_ADDRESS", factory)
			t.Setenv("CREATOR_MARKETPLACE_ADDRESS", marketplace)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestPasswordStore(t *testing.T) {
	var s PasswordStore

	_, err := s.Password(context.Background())
	assert.ErrorIs(t, err, ErrPasswordNotSet)

	input := []byte("secret")
	s.Set(input)
	clear(input)

	pw, err := s.Password(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "secret", string(pw))

	// returned slice is a copy
	clear(pw)
	pw, _ = s.Password(context.Background())
	assert.Equal(t, "secret", string(pw))

	s.Clear()
	_, err = s.Password(context.Background())
	assert.ErrorIs(t, err, ErrPasswordNotSet)
}
