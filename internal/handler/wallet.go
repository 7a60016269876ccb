package handler

import (
	"errors"
	"net/http"

	"github.com/AlexZinkM/creatorweb3/internal/apperr"
	"github.com/AlexZinkM/creatorweb3/internal/crypto"
	"github.com/AlexZinkM/creatorweb3/internal/model"
	"github.com/AlexZinkM/creatorweb3/internal/wallet"
)

// Generate handles POST /wallet/generate
// @Summary      Generate new wallet
// @Description  Generates a new Ethereum key and saves it to the configured .cwt file
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.GenerateResponse
// @Failure      400  {object}  model.ErrorResponse
// @Failure      409  {object}  model.ErrorResponse
// @Router       /wallet/generate [post]
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	if h.WalletFilePath == "" {
		badRequest(w, r, "WALLET_FILE_PATH not set", nil)
		return
	}

	// Get password as []byte, use it, then zero it immediately
	passwordBytes, err := h.Passwords.Password(r.Context())
	if err != nil {
		badRequest(w, r, "wallet password not available", err)
		return
	}
	defer clear(passwordBytes)

	address, err := wallet.GenerateWallet(h.WalletFilePath, passwordBytes, h.KDF)
	if err != nil {
		if errors.Is(err, crypto.ErrFileExists) {
			writeJSON(w, http.StatusConflict, model.ErrorResponse{Error: err.Error(), Code: "FILE_EXISTS"})
			return
		}
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Success: true,
		Message: "Wallet generated successfully",
		Address: address,
	})
}

// Connect handles POST /wallet/connect
// @Summary      Connect wallet
// @Description  Unlocks the wallet, switches to the configured chain and loads the balance
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.WalletSession
// @Failure      403  {object}  model.ErrorResponse
// @Failure      409  {object}  model.ErrorResponse
// @Failure      503  {object}  model.ErrorResponse
// @Router       /wallet/connect [post]
func (h *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	state, err := h.Session.Connect(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Disconnect handles POST /wallet/disconnect
// @Summary      Disconnect wallet
// @Description  Clears the local wallet session
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.WalletSession
// @Router       /wallet/disconnect [post]
func (h *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	h.Session.Disconnect()
	writeJSON(w, http.StatusOK, h.Session.Snapshot())
}

// Status handles GET /wallet/status
// @Summary      Wallet session
// @Description  Returns the wallet session; refresh=true reloads the balance first
// @Tags         wallet
// @Produce      json
// @Param        refresh  query     bool  false  "Reload balance"
// @Success      200      {object}  model.WalletSession
// @Router       /wallet/status [get]
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("refresh") == "true" {
		if err := h.Session.RefreshBalance(r.Context()); err != nil && !errors.Is(err, apperr.ErrNotConnected) {
			writeError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, h.Session.Snapshot())
}

// QR handles GET /wallet/qr
// @Summary      Wallet address QR code
// @Description  PNG QR code of the connected address, or of the wallet file address when disconnected
// @Tags         wallet
// @Produce      png
// @Success      200
// @Failure      404  {object}  model.ErrorResponse
// @Router       /wallet/qr [get]
func (h *Handler) QR(w http.ResponseWriter, r *http.Request) {
	var address string
	if viewer, ok := h.viewer(); ok {
		address = viewer.Hex()
	} else if h.WalletFilePath != "" {
		stored, err := crypto.ReadWalletAddress(h.WalletFilePath)
		if err != nil && !errors.Is(err, crypto.ErrNoWalletFile) {
			writeError(w, r, err)
			return
		}
		address = stored
	}
	if address == "" {
		writeError(w, r, apperr.New(apperr.KindNotFound, "no wallet address available"))
		return
	}

	png, err := wallet.AddressQR(address)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// ClearError handles DELETE /wallet/error
// @Summary      Dismiss wallet error
// @Description  Clears the last connection error from the session
// @Tags         wallet
// @Produce      json
// @Success      200  {object}  model.WalletSession
// @Router       /wallet/error [delete]
func (h *Handler) ClearError(w http.ResponseWriter, r *http.Request) {
	h.Session.ClearError()
	writeJSON(w, http.StatusOK, h.Session.Snapshot())
}
