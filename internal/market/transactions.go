package market

import (
	"context"
	"errors"
	"math/big"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/AlexZinkM/creatorweb3/internal/apperr"
	appcommon "github.com/AlexZinkM/creatorweb3/internal/common"
	"github.com/AlexZinkM/creatorweb3/internal/model"
)

const defaultPollInterval = 2 * time.Second

// TransactionStatus looks up the receipt of a submitted transaction
func (s *Service) TransactionStatus(ctx context.Context, hash common.Hash) (model.TransactionStatus, error) {
	backend, err := s.backend()
	if err != nil {
		return model.TransactionStatus{}, apperr.RemoteCallFailed("failed to fetch transaction", err)
	}

	status := model.TransactionStatus{TxHash: hash.Hex(), State: model.TransactionPending}
	receipt, err := backend.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return status, nil
	}
	if err != nil {
		return model.TransactionStatus{}, apperr.RemoteCallFailed("failed to fetch transaction", err)
	}

	status.State = receiptState(receipt)
	if receipt.BlockNumber != nil {
		status.BlockNumber = receipt.BlockNumber.Uint64()
	}
	status.GasUsed = receipt.GasUsed
	return status, nil
}

// WaitForTransaction polls until the transaction is mined or ctx is done
func (s *Service) WaitForTransaction(ctx context.Context, hash common.Hash, interval time.Duration) (model.TransactionStatus, error) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status, err := s.TransactionStatus(ctx, hash)
		if err != nil {
			return model.TransactionStatus{}, err
		}
		if status.State != model.TransactionPending {
			return status, nil
		}

		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Purchases returns the token purchases of a creator matching req, newest first
func (s *Service) Purchases(ctx context.Context, creatorID *big.Int, req *model.PurchaseRequest) (*model.PurchaseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidInput, "invalid purchase filter", err)
	}

	var buyers []common.Address
	if req.Buyer != nil {
		buyer, err := ParseAddress(*req.Buyer)
		if err != nil {
			return nil, err
		}
		buyers = append(buyers, buyer)
	}

	opts := &bind.FilterOpts{Context: ctx}
	if req.FromBlock != nil {
		opts.Start = *req.FromBlock
	}
	if req.ToBlock != nil {
		opts.End = req.ToBlock
	}

	// Parse amount bounds
	var minAmount, maxAmount *big.Int
	if req.MinAmount != nil {
		minAmount, _ = appcommon.ParseUnits(*req.MinAmount, appcommon.TokenDecimals)
	}
	if req.MaxAmount != nil {
		maxAmount, _ = appcommon.ParseUnits(*req.MaxAmount, appcommon.TokenDecimals)
	}

	marketplace, err := s.marketplace()
	if err != nil {
		return nil, apperr.RemoteCallFailed("failed to fetch purchases", err)
	}
	events, err := marketplace.FilterTokensPurchased(opts, []*big.Int{creatorID}, buyers)
	if err != nil {
		return nil, apperr.RemoteCallFailed("failed to fetch purchases", err)
	}

	// Filter by amount (base units, no float comparison)
	matched := events[:0]
	for _, ev := range events {
		if minAmount != nil && ev.Amount.Cmp(minAmount) < 0 {
			continue
		}
		if maxAmount != nil && ev.Amount.Cmp(maxAmount) > 0 {
			continue
		}
		matched = append(matched, ev)
	}

	// Sort by block DESC (newest first)
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Raw.BlockNumber != matched[j].Raw.BlockNumber {
			return matched[i].Raw.BlockNumber > matched[j].Raw.BlockNumber
		}
		return matched[i].Raw.Index > matched[j].Raw.Index
	})

	totalAmount := new(big.Int)
	totalCost := new(big.Int)
	purchases := make([]model.Purchase, 0, len(matched))
	for _, ev := range matched {
		totalAmount.Add(totalAmount, ev.Amount)
		totalCost.Add(totalCost, ev.Cost)
		purchases = append(purchases, model.Purchase{
			CreatorID:   ev.CreatorId.String(),
			Buyer:       ev.Buyer.Hex(),
			Amount:      appcommon.FormatUnits(ev.Amount, appcommon.TokenDecimals),
			Cost:        appcommon.WeiToEther(ev.Cost),
			TxHash:      ev.Raw.TxHash.Hex(),
			BlockNumber: ev.Raw.BlockNumber,
		})
	}

	return &model.PurchaseResponse{
		CreatorID:   creatorID.String(),
		TotalAmount: appcommon.FormatUnits(totalAmount, appcommon.TokenDecimals),
		TotalCost:   appcommon.WeiToEther(totalCost),
		Purchases:   purchases,
	}, nil
}
