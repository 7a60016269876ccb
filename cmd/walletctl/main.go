// Manages the local .cwt wallet file: create it, print its address, change its password.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlexZinkM/creatorweb3/internal/config"
	"github.com/AlexZinkM/creatorweb3/internal/crypto"
	"github.com/AlexZinkM/creatorweb3/internal/logger"
	"github.com/AlexZinkM/creatorweb3/internal/wallet"
)

var (
	walletPath string
	qrPath     string
)

var rootCmd = &cobra.Command{
	Use:          "walletctl",
	Short:        "Manage the local wallet file",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if walletPath == "" {
			walletPath = os.Getenv("WALLET_FILE_PATH")
		}
		if walletPath == "" {
			return errors.New("wallet file not set: use --file or WALLET_FILE_PATH")
		}
		return nil
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new key and write it to the wallet file",
	RunE: func(cmd *cobra.Command, args []string) error {
		password, err := newPassword()
		if err != nil {
			return err
		}
		defer clear(password)

		address, err := wallet.GenerateWallet(walletPath, password, crypto.DefaultKDF())
		if err != nil {
			return err
		}
		logger.For(cmd.Context()).WithField("file", walletPath).Info("wallet generated")
		fmt.Fprintln(cmd.OutOrStdout(), address)
		return nil
	},
}

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Print the wallet address (no password needed)",
	RunE: func(cmd *cobra.Command, args []string) error {
		address, err := crypto.ReadWalletAddress(walletPath)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), address)

		if qrPath == "" {
			return nil
		}
		png, err := wallet.AddressQR(address)
		if err != nil {
			return err
		}
		return os.WriteFile(qrPath, png, 0o644)
	},
}

var rekeyCmd = &cobra.Command{
	Use:   "rekey",
	Short: "Re-encrypt the wallet file with a new password",
	RunE: func(cmd *cobra.Command, args []string) error {
		oldPassword, err := config.PromptForPassword("Current password: ")
		if err != nil {
			return err
		}
		defer clear(oldPassword)

		password, err := newPassword()
		if err != nil {
			return err
		}
		defer clear(password)

		if err := crypto.Reencrypt(walletPath, oldPassword, password, crypto.DefaultKDF()); err != nil {
			return err
		}
		logger.For(cmd.Context()).WithField("file", walletPath).Info("wallet re-encrypted")
		return nil
	},
}

// newPassword prompts twice and requires both entries to match
func newPassword() ([]byte, error) {
	password, err := config.PromptForPassword("New password: ")
	if err != nil {
		return nil, err
	}
	confirm, err := config.PromptForPassword("Repeat password: ")
	if err != nil {
		clear(password)
		return nil, err
	}
	defer clear(confirm)

	if !bytes.Equal(password, confirm) {
		clear(password)
		return nil, errors.New("passwords do not match")
	}
	return password, nil
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&walletPath, "file", "f", "", "wallet file (.cwt), defaults to WALLET_FILE_PATH")
	addressCmd.Flags().StringVar(&qrPath, "qr", "", "also write the address QR code as PNG to this path")
	rootCmd.AddCommand(generateCmd, addressCmd, rekeyCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
