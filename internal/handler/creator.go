package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"

	"github.com/AlexZinkM/creatorweb3/internal/apperr"
	"github.com/AlexZinkM/creatorweb3/internal/content"
	"github.com/AlexZinkM/creatorweb3/internal/market"
	"github.com/AlexZinkM/creatorweb3/internal/model"
	"github.com/AlexZinkM/creatorweb3/internal/storage"
)

// ListCreators handles GET /creators
// @Summary      List creators
// @Description  Returns every registered creator, or only those owned by ?owner=
// @Tags         creators
// @Produce      json
// @Param        owner  query     string  false  "Owner address"
// @Success      200    {array}   model.Creator
// @Failure      400    {object}  model.ErrorResponse
// @Failure      502    {object}  model.ErrorResponse
// @Router       /creators [get]
func (h *Handler) ListCreators(w http.ResponseWriter, r *http.Request) {
	var (
		creators []model.Creator
		err      error
	)
	if ownerStr := r.URL.Query().Get("owner"); ownerStr != "" {
		owner, perr := market.ParseAddress(ownerStr)
		if perr != nil {
			writeError(w, r, perr)
			return
		}
		creators, err = h.Market.GetCreatorsOwnedBy(r.Context(), owner)
	} else {
		creators, err = h.Market.GetCreators(r.Context())
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	if creators == nil {
		creators = []model.Creator{}
	}
	writeJSON(w, http.StatusOK, creators)
}

// CreateCreator handles POST /creators
// @Summary      Register creator token
// @Description  Creates a creator token from the connected account
// @Tags         creators
// @Accept       json
// @Produce      json
// @Param        request  body      model.CreateCreatorRequest  true  "Token name and symbol"
// @Success      200      {object}  model.TxResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      401      {object}  model.ErrorResponse
// @Failure      403      {object}  model.ErrorResponse
// @Router       /creators [post]
func (h *Handler) CreateCreator(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCreatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		badRequest(w, r, "invalid creator token", err)
		return
	}

	txHash, err := h.Market.CreateCreatorToken(r.Context(), req.Name, req.Symbol)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TxResponse{TxHash: txHash})
}

// Profile handles GET /creators/{id}
// @Summary      Creator profile
// @Description  Creator, token, minimum holding, price and (when connected) the viewer's access
// @Tags         creators
// @Produce      json
// @Param        id   path      string  true  "Creator id"
// @Success      200  {object}  model.CreatorProfile
// @Failure      400  {object}  model.ErrorResponse
// @Failure      502  {object}  model.ErrorResponse
// @Router       /creators/{id} [get]
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	creatorID, err := market.ParseCreatorID(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var viewer *common.Address
	if account, ok := h.viewer(); ok {
		viewer = &account
	}

	profile, err := h.Content.Profile(r.Context(), creatorID, viewer)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Access handles GET /creators/{id}/access
// @Summary      Check token gate
// @Description  Compares the holder's balance with the creator's minimum. Defaults to the connected account.
// @Tags         creators
// @Produce      json
// @Param        id       path      string  true   "Creator id"
// @Param        address  query     string  false  "Holder address"
// @Success      200      {object}  model.AccessStatus
// @Failure      400      {object}  model.ErrorResponse
// @Failure      401      {object}  model.ErrorResponse
// @Router       /creators/{id}/access [get]
func (h *Handler) Access(w http.ResponseWriter, r *http.Request) {
	creatorID, err := market.ParseCreatorID(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var holder common.Address
	if addressStr := r.URL.Query().Get("address"); addressStr != "" {
		holder, err = market.ParseAddress(addressStr)
		if err != nil {
			writeError(w, r, err)
			return
		}
	} else {
		account, ok := h.viewer()
		if !ok {
			writeError(w, r, apperr.New(apperr.KindNotConnected, "wallet not connected"))
			return
		}
		holder = account
	}

	status, err := h.Market.AccessDetails(r.Context(), creatorID, holder)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// Buy handles POST /creators/{id}/buy
// @Summary      Buy creator tokens
// @Description  Pays amount*price in the native currency from the connected account
// @Tags         creators
// @Accept       json
// @Produce      json
// @Param        id       path      string            true  "Creator id"
// @Param        request  body      model.BuyRequest  true  "Token amount, e.g. 12.5"
// @Success      200      {object}  model.TxResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      401      {object}  model.ErrorResponse
// @Failure      403      {object}  model.ErrorResponse
// @Router       /creators/{id}/buy [post]
func (h *Handler) Buy(w http.ResponseWriter, r *http.Request) {
	creatorID, err := market.ParseCreatorID(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req model.BuyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, r, "invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		badRequest(w, r, "amount is required", err)
		return
	}

	txHash, err := h.Market.BuyTokens(r.Context(), creatorID, req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TxResponse{TxHash: txHash})
}

// Purchases handles GET /creators/{id}/purchases
// @Summary      Purchase history
// @Description  TokensPurchased events of a creator, newest first, with optional filters
// @Tags         creators
// @Produce      json
// @Param        id         path      string  true   "Creator id"
// @Param        buyer      query     string  false  "Buyer address"
// @Param        fromBlock  query     int     false  "First block"
// @Param        toBlock    query     int     false  "Last block"
// @Param        minAmount  query     string  false  "Minimum token amount"
// @Param        maxAmount  query     string  false  "Maximum token amount"
// @Success      200        {object}  model.PurchaseResponse
// @Failure      400        {object}  model.ErrorResponse
// @Router       /creators/{id}/purchases [get]
func (h *Handler) Purchases(w http.ResponseWriter, r *http.Request) {
	creatorID, err := market.ParseCreatorID(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req model.PurchaseRequest
	query := r.URL.Query()

	if buyer := query.Get("buyer"); buyer != "" {
		req.Buyer = &buyer
	}

	// Parse block range
	if fromStr := query.Get("fromBlock"); fromStr != "" {
		from, err := strconv.ParseUint(fromStr, 10, 64)
		if err != nil {
			badRequest(w, r, "invalid fromBlock", err)
			return
		}
		req.FromBlock = &from
	}
	if toStr := query.Get("toBlock"); toStr != "" {
		to, err := strconv.ParseUint(toStr, 10, 64)
		if err != nil {
			badRequest(w, r, "invalid toBlock", err)
			return
		}
		req.ToBlock = &to
	}

	// Parse amounts
	if minAmount := query.Get("minAmount"); minAmount != "" {
		req.MinAmount = &minAmount
	}
	if maxAmount := query.Get("maxAmount"); maxAmount != "" {
		req.MaxAmount = &maxAmount
	}

	if err := req.Validate(); err != nil {
		badRequest(w, r, "invalid filter", err)
		return
	}

	resp, err := h.Market.Purchases(r.Context(), creatorID, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetContent handles GET /creators/{id}/content
// @Summary      Gated content
// @Description  Content metadata of a creator; requires the connected account to hold the minimum
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "Creator id"
// @Success      200  {object}  model.ContentResponse
// @Failure      401  {object}  model.ErrorResponse
// @Failure      403  {object}  model.ErrorResponse
// @Router       /creators/{id}/content [get]
func (h *Handler) GetContent(w http.ResponseWriter, r *http.Request) {
	creatorID, err := market.ParseCreatorID(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	viewer, ok := h.viewer()
	if !ok {
		writeError(w, r, apperr.New(apperr.KindNotConnected, "wallet not connected"))
		return
	}

	resp, err := h.Content.Load(r.Context(), creatorID, viewer)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// PublishContent handles POST /creators/{id}/content
// @Summary      Publish content
// @Description  Uploads files and metadata to IPFS and stores the metadata CID for the creator
// @Tags         content
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path      string  true   "Creator id"
// @Param        title        formData  string  true   "Title"
// @Param        description  formData  string  false  "Description"
// @Param        files        formData  file    true   "Files"
// @Success      200          {object}  model.PublishResponse
// @Failure      400          {object}  model.ErrorResponse
// @Failure      401          {object}  model.ErrorResponse
// @Failure      403          {object}  model.ErrorResponse
// @Failure      502          {object}  model.ErrorResponse
// @Router       /creators/{id}/content [post]
func (h *Handler) PublishContent(w http.ResponseWriter, r *http.Request) {
	creatorID, err := market.ParseCreatorID(r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if h.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			badRequest(w, r, "upload too large", err)
			return
		}
		badRequest(w, r, "invalid multipart form", err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	req := content.PublishRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}
	for _, header := range r.MultipartForm.File["files"] {
		fh := header
		req.Files = append(req.Files, storage.File{
			Name: fh.Filename,
			Type: fh.Header.Get("Content-Type"),
			Size: fh.Size,
			Open: func() (io.ReadCloser, error) { return fh.Open() },
		})
	}

	resp, err := h.Content.Publish(r.Context(), creatorID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
