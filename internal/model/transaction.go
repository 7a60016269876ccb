package model

import (
	"fmt"

	"github.com/AlexZinkM/creatorweb3/internal/common"
)

// TransactionState state of a submitted transaction
type TransactionState string

const (
	TransactionPending TransactionState = "PENDING"
	TransactionSuccess TransactionState = "SUCCESS"
	TransactionFailed  TransactionState = "FAILED"
)

// TransactionStatus represents response for GET /transactions/{hash}
type TransactionStatus struct {
	TxHash      string           `json:"txHash"`
	State       TransactionState `json:"state"`
	BlockNumber uint64           `json:"blockNumber,omitempty"`
	GasUsed     uint64           `json:"gasUsed,omitempty"`
}

// Purchase represents a TokensPurchased event
type Purchase struct {
	CreatorID   string `json:"creatorId"`
	Buyer       string `json:"buyer"`
	Amount      string `json:"amount"` // token units
	Cost        string `json:"cost"`   // native currency, ether units
	TxHash      string `json:"txHash"`
	BlockNumber uint64 `json:"blockNumber"`
}

// PurchaseResponse represents response for GET /creators/{id}/purchases
type PurchaseResponse struct {
	CreatorID   string     `json:"creatorId"`
	TotalAmount string     `json:"totalAmount"`
	TotalCost   string     `json:"totalCost"`
	Purchases   []Purchase `json:"purchases"`
}

// PurchaseRequest represents filter parameters for GET /creators/{id}/purchases
type PurchaseRequest struct {
	Buyer     *string `form:"buyer"`
	FromBlock *uint64 `form:"fromBlock"`
	ToBlock   *uint64 `form:"toBlock"`
	MinAmount *string `form:"minAmount"`
	MaxAmount *string `form:"maxAmount"`
}

// Validate validates PurchaseRequest filter parameters.
func (r *PurchaseRequest) Validate() error {
	if r.FromBlock != nil && r.ToBlock != nil && *r.ToBlock < *r.FromBlock {
		return fmt.Errorf("toBlock must be greater than or equal to fromBlock")
	}
	if r.MinAmount != nil {
		if _, err := common.ParseUnits(*r.MinAmount, common.TokenDecimals); err != nil {
			return fmt.Errorf("invalid minAmount: %w", err)
		}
	}
	if r.MaxAmount != nil {
		if _, err := common.ParseUnits(*r.MaxAmount, common.TokenDecimals); err != nil {
			return fmt.Errorf("invalid maxAmount: %w", err)
		}
	}
	if r.MinAmount != nil && r.MaxAmount != nil {
		cmp, err := common.CompareAmounts(*r.MinAmount, *r.MaxAmount, common.TokenDecimals)
		if err != nil {
			return fmt.Errorf("invalid amount: %w", err)
		}
		if cmp == 1 {
			return fmt.Errorf("minAmount must be less than or equal to maxAmount")
		}
	}
	return nil
}
