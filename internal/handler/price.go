package handler

import (
	"net/http"

	"github.com/AlexZinkM/creatorweb3/internal/market"
	"github.com/AlexZinkM/creatorweb3/internal/model"
	"github.com/AlexZinkM/creatorweb3/internal/price"
)

func priceResponse(p model.TokenPrice) model.PriceResponse {
	return model.PriceResponse{
		TokenPrice:  p,
		Label:       price.FormatPrice(p.USD),
		ChangeLabel: price.FormatPriceChange(p.Change24h),
		Direction:   price.ChangeDirection(p.Change24h),
	}
}

// TokenPrice handles GET /prices/tokens/{address}
// @Summary      Token USD price
// @Description  USD price and 24h change of a token; available=false means a fallback value
// @Tags         prices
// @Produce      json
// @Param        address  path      string  true  "Token contract address"
// @Success      200      {object}  model.PriceResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /prices/tokens/{address} [get]
func (h *Handler) TokenPrice(w http.ResponseWriter, r *http.Request) {
	address, err := market.ParseAddress(r.PathValue("address"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, priceResponse(h.Prices.GetTokenPrice(r.Context(), address.Hex())))
}

// NativePrice handles GET /prices/native
// @Summary      Native currency USD price
// @Tags         prices
// @Produce      json
// @Success      200  {object}  model.PriceResponse
// @Router       /prices/native [get]
func (h *Handler) NativePrice(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, priceResponse(h.Prices.GetNativePrice(r.Context())))
}
