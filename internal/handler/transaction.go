package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/AlexZinkM/creatorweb3/internal/model"
)

const maxWait = 2 * time.Minute

// TransactionStatus handles GET /transactions/{hash}
// @Summary      Transaction status
// @Description  PENDING until a receipt exists, then SUCCESS or FAILED. wait (e.g. 30s, at most 2m) blocks until the transaction is mined.
// @Tags         transactions
// @Produce      json
// @Param        hash  path      string  true   "Transaction hash"
// @Param        wait  query     string  false  "Time to wait for the receipt"
// @Success      200   {object}  model.TransactionStatus
// @Failure      400   {object}  model.ErrorResponse
// @Router       /transactions/{hash} [get]
func (h *Handler) TransactionStatus(w http.ResponseWriter, r *http.Request) {
	raw, err := hexutil.Decode(r.PathValue("hash"))
	if err != nil || len(raw) != common.HashLength {
		badRequest(w, r, "invalid transaction hash", err)
		return
	}
	hash := common.BytesToHash(raw)

	var wait time.Duration
	if waitStr := r.URL.Query().Get("wait"); waitStr != "" {
		wait, err = time.ParseDuration(waitStr)
		if err != nil || wait < 0 {
			badRequest(w, r, "invalid wait: use a duration such as 30s", err)
			return
		}
		wait = min(wait, maxWait)
	}

	var status model.TransactionStatus
	if wait > 0 {
		ctx, cancel := context.WithTimeout(r.Context(), wait)
		defer cancel()
		status, err = h.Market.WaitForTransaction(ctx, hash, 0)
		// Still pending when the wait ran out, even if it hit mid-lookup
		if errors.Is(err, context.DeadlineExceeded) {
			status = model.TransactionStatus{TxHash: hash.Hex(), State: model.TransactionPending}
			err = nil
		}
	} else {
		status, err = h.Market.TransactionStatus(r.Context(), hash)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}
