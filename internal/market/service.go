// Package market reads and writes the creator factory, marketplace and token contracts.
package market

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/AlexZinkM/creatorweb3/internal/access"
	"github.com/AlexZinkM/creatorweb3/internal/apperr"
	appcommon "github.com/AlexZinkM/creatorweb3/internal/common"
	"github.com/AlexZinkM/creatorweb3/internal/contracts"
	"github.com/AlexZinkM/creatorweb3/internal/logger"
	"github.com/AlexZinkM/creatorweb3/internal/model"
	"github.com/AlexZinkM/creatorweb3/internal/wallet"
)

// Wallet is the connected wallet the service reads and signs through
type Wallet interface {
	Address() (common.Address, bool)
	Backend() (wallet.ChainClient, error)
	Transactor(ctx context.Context) (*bind.TransactOpts, error)
}

// Service is the contract access layer
type Service struct {
	wallet Wallet
	binder Binder
}

// NewService creates a contract service
func NewService(w Wallet, binder Binder) *Service {
	return &Service{wallet: w, binder: binder}
}

func (s *Service) backend() (wallet.ChainClient, error) {
	backend, err := s.wallet.Backend()
	if err != nil {
		return nil, err
	}
	if backend == nil {
		return nil, apperr.New(apperr.KindNotConnected, "wallet not connected")
	}
	return backend, nil
}

func (s *Service) factory() (Factory, error) {
	backend, err := s.backend()
	if err != nil {
		return nil, err
	}
	return s.binder.Factory(backend)
}

func (s *Service) marketplace() (Marketplace, error) {
	backend, err := s.backend()
	if err != nil {
		return nil, err
	}
	return s.binder.Marketplace(backend)
}

func (s *Service) token(address common.Address) (Token, error) {
	backend, err := s.backend()
	if err != nil {
		return nil, err
	}
	return s.binder.Token(address, backend)
}

func callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx}
}

// ParseCreatorID parses a decimal creator id
func ParseCreatorID(id string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(id), 10)
	if !ok || n.Sign() < 0 {
		return nil, apperr.New(apperr.KindInvalidInput, fmt.Sprintf("invalid creator id %q", id))
	}
	return n, nil
}

// ParseAddress parses a hex account or contract address
func ParseAddress(address string) (common.Address, error) {
	if !common.IsHexAddress(address) {
		return common.Address{}, apperr.New(apperr.KindInvalidInput, fmt.Sprintf("invalid address %q", address))
	}
	return common.HexToAddress(address), nil
}

func toCreator(r contracts.CreatorRecord) model.Creator {
	id := "0"
	if r.Id != nil {
		id = r.Id.String()
	}
	return model.Creator{
		ID:           id,
		Name:         r.Name,
		Symbol:       r.Symbol,
		TokenAddress: r.TokenAddress.Hex(),
		Owner:        r.Owner.Hex(),
	}
}

// GetCreators lists every registered creator
func (s *Service) GetCreators(ctx context.Context) ([]model.Creator, error) {
	factory, err := s.factory()
	if err != nil {
		return nil, apperr.RemoteCallFailed("failed to fetch creators", err)
	}

	records, err := factory.GetCreators(callOpts(ctx))
	if err != nil {
		return nil, apperr.RemoteCallFailed("failed to fetch creators", err)
	}

	creators := make([]model.Creator, 0, len(records))
	for _, r := range records {
		creators = append(creators, toCreator(r))
	}
	return creators, nil
}

// GetCreatorsOwnedBy lists the creators whose owner is owner
func (s *Service) GetCreatorsOwnedBy(ctx context.Context, owner common.Address) ([]model.Creator, error) {
	creators, err := s.GetCreators(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]model.Creator, 0)
	for _, c := range creators {
		if common.HexToAddress(c.Owner) == owner {
			owned = append(owned, c)
		}
	}
	return owned, nil
}

// GetCreatorInfo returns one creator
func (s *Service) GetCreatorInfo(ctx context.Context, creatorID *big.Int) (model.Creator, error) {
	factory, err := s.factory()
	if err != nil {
		return model.Creator{}, apperr.RemoteCallFailed("failed to fetch creator info", err)
	}

	record, err := factory.GetCreatorInfo(callOpts(ctx), creatorID)
	if err != nil {
		return model.Creator{}, apperr.RemoteCallFailed("failed to fetch creator info", err)
	}
	return toCreator(record), nil
}

// TokenBalance returns the balance of holder in base units
func (s *Service) TokenBalance(ctx context.Context, tokenAddress, holder common.Address) (*big.Int, error) {
	token, err := s.token(tokenAddress)
	if err != nil {
		return nil, apperr.RemoteCallFailed("failed to fetch token balance", err)
	}

	balance, err := token.BalanceOf(callOpts(ctx), holder)
	if err != nil {
		return nil, apperr.RemoteCallFailed("failed to fetch token balance", err)
	}
	return balance, nil
}

// GetTokenBalance returns the balance of holder in token units
func (s *Service) GetTokenBalance(ctx context.Context, tokenAddress, holder common.Address) (string, error) {
	balance, err := s.TokenBalance(ctx, tokenAddress, holder)
	if err != nil {
		return "", err
	}
	return appcommon.FormatUnits(balance, appcommon.TokenDecimals), nil
}

// GetTokenInfo reads name, symbol and supply concurrently, then the balance of
// the connected account ("0" when no wallet is connected).
func (s *Service) GetTokenInfo(ctx context.Context, tokenAddress common.Address) (model.TokenInfo, error) {
	token, err := s.token(tokenAddress)
	if err != nil {
		return model.TokenInfo{}, apperr.RemoteCallFailed("failed to fetch token info", err)
	}

	var (
		name, symbol string
		supply       *big.Int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		name, err = token.Name(callOpts(gctx))
		return err
	})
	g.Go(func() (err error) {
		symbol, err = token.Symbol(callOpts(gctx))
		return err
	})
	g.Go(func() (err error) {
		supply, err = token.TotalSupply(callOpts(gctx))
		return err
	})
	if err := g.Wait(); err != nil {
		return model.TokenInfo{}, apperr.RemoteCallFailed("failed to fetch token info", err)
	}

	info := model.TokenInfo{
		Balance:     "0",
		Name:        name,
		Symbol:      symbol,
		TotalSupply: appcommon.FormatUnits(supply, appcommon.TokenDecimals),
	}
	if holder, ok := s.wallet.Address(); ok {
		if info.Balance, err = s.GetTokenBalance(ctx, tokenAddress, holder); err != nil {
			return model.TokenInfo{}, err
		}
	}
	return info, nil
}

// MinimumTokensRequired returns the access threshold in base units
func (s *Service) MinimumTokensRequired(ctx context.Context, creatorID *big.Int) (*big.Int, error) {
	marketplace, err := s.marketplace()
	if err != nil {
		return nil, apperr.RemoteCallFailed("failed to fetch minimum tokens required", err)
	}

	minimum, err := marketplace.GetMinimumTokensRequired(callOpts(ctx), creatorID)
	if err != nil {
		return nil, apperr.RemoteCallFailed("failed to fetch minimum tokens required", err)
	}
	return minimum, nil
}

// GetMinimumTokensRequired returns the access threshold in token units
func (s *Service) GetMinimumTokensRequired(ctx context.Context, creatorID *big.Int) (string, error) {
	minimum, err := s.MinimumTokensRequired(ctx, creatorID)
	if err != nil {
		return "", err
	}
	return appcommon.FormatUnits(minimum, appcommon.TokenDecimals), nil
}

// GetTokenPrice returns the price of one whole token in native currency units
func (s *Service) GetTokenPrice(ctx context.Context, creatorID *big.Int) (string, error) {
	marketplace, err := s.marketplace()
	if err != nil {
		return "", apperr.RemoteCallFailed("failed to fetch token price", err)
	}

	price, err := marketplace.GetTokenPrice(callOpts(ctx), creatorID)
	if err != nil {
		return "", apperr.RemoteCallFailed("failed to fetch token price", err)
	}
	return appcommon.WeiToEther(price), nil
}

// BuyTokens buys amount (token units) of a creator's token, paying the current
// marketplace price. It returns the transaction hash without waiting for it to be mined.
func (s *Service) BuyTokens(ctx context.Context, creatorID *big.Int, amount string) (string, error) {
	amountUnits, err := appcommon.ParseUnits(amount, appcommon.TokenDecimals)
	if err != nil {
		return "", apperr.Wrap(apperr.KindInvalidInput, "invalid amount", err)
	}
	if amountUnits.Sign() == 0 {
		return "", apperr.New(apperr.KindInvalidInput, "amount must be greater than zero")
	}

	opts, err := s.wallet.Transactor(ctx)
	if err != nil {
		return "", err
	}
	marketplace, err := s.marketplace()
	if err != nil {
		return "", apperr.RemoteCallFailed("failed to buy tokens", err)
	}

	// Get the price per token
	price, err := marketplace.GetTokenPrice(callOpts(ctx), creatorID)
	if err != nil {
		return "", apperr.RemoteCallFailed("failed to buy tokens", err)
	}

	opts.Value = TotalCost(amountUnits, price)
	tx, err := marketplace.BuyTokens(opts, creatorID, amountUnits)
	if err != nil {
		return "", transactError("failed to buy tokens", err)
	}

	logger.For(ctx).WithFields(logrus.Fields{
		"creatorId": creatorID.String(),
		"amount":    amount,
		"cost":      appcommon.WeiToEther(opts.Value),
		"tx":        tx.Hash().Hex(),
	}).Info("buy tokens submitted")
	return tx.Hash().Hex(), nil
}

// GetContentCID returns the content reference of a creator ("" when none is set)
func (s *Service) GetContentCID(ctx context.Context, creatorID *big.Int) (string, error) {
	marketplace, err := s.marketplace()
	if err != nil {
		return "", apperr.RemoteCallFailed("failed to fetch content CID", err)
	}

	cid, err := marketplace.GetContentCID(callOpts(ctx), creatorID)
	if err != nil {
		return "", apperr.RemoteCallFailed("failed to fetch content CID", err)
	}
	return cid, nil
}

// SetContentCID stores a content reference and returns the transaction hash
func (s *Service) SetContentCID(ctx context.Context, creatorID *big.Int, cid string) (string, error) {
	opts, err := s.wallet.Transactor(ctx)
	if err != nil {
		return "", err
	}
	marketplace, err := s.marketplace()
	if err != nil {
		return "", apperr.RemoteCallFailed("failed to set content CID", err)
	}

	tx, err := marketplace.SetContentCID(opts, creatorID, cid)
	if err != nil {
		return "", transactError("failed to set content CID", err)
	}

	logger.For(ctx).WithFields(logrus.Fields{"creatorId": creatorID.String(), "cid": cid, "tx": tx.Hash().Hex()}).Info("content CID submitted")
	return tx.Hash().Hex(), nil
}

// AccessDetails fetches the creator and its threshold concurrently, then the
// holder's balance, and compares them in base units. The first failure aborts.
func (s *Service) AccessDetails(ctx context.Context, creatorID *big.Int, holder common.Address) (model.AccessStatus, error) {
	var (
		creator model.Creator
		minimum *big.Int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		creator, err = s.GetCreatorInfo(gctx, creatorID)
		return err
	})
	g.Go(func() (err error) {
		minimum, err = s.MinimumTokensRequired(gctx, creatorID)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.AccessStatus{}, apperr.RemoteCallFailed("failed to check token access", err)
	}

	balance, err := s.TokenBalance(ctx, common.HexToAddress(creator.TokenAddress), holder)
	if err != nil {
		return model.AccessStatus{}, apperr.RemoteCallFailed("failed to check token access", err)
	}

	return model.AccessStatus{
		CreatorID: creatorID.String(),
		Address:   holder.Hex(),
		HasAccess: access.Evaluate(minimum, balance),
		Balance:   appcommon.FormatUnits(balance, appcommon.TokenDecimals),
		Minimum:   appcommon.FormatUnits(minimum, appcommon.TokenDecimals),
	}, nil
}

// CheckTokenAccess reports whether holder's balance meets the creator's minimum
func (s *Service) CheckTokenAccess(ctx context.Context, creatorID *big.Int, holder common.Address) (bool, error) {
	status, err := s.AccessDetails(ctx, creatorID, holder)
	if err != nil {
		return false, err
	}
	return status.HasAccess, nil
}

// CreateCreatorToken registers the connected account as a creator with a new token
func (s *Service) CreateCreatorToken(ctx context.Context, name, symbol string) (string, error) {
	opts, err := s.wallet.Transactor(ctx)
	if err != nil {
		return "", err
	}
	factory, err := s.factory()
	if err != nil {
		return "", apperr.RemoteCallFailed("failed to create creator token", err)
	}

	tx, err := factory.CreateCreatorToken(opts, name, symbol)
	if err != nil {
		return "", transactError("failed to create creator token", err)
	}

	logger.For(ctx).WithFields(logrus.Fields{"name": name, "symbol": symbol, "tx": tx.Hash().Hex()}).Info("create creator token submitted")
	return tx.Hash().Hex(), nil
}

// transactError keeps user rejections distinct from other failures
func transactError(message string, err error) error {
	if wallet.ErrorCodeOf(err) == wallet.CodeUserRejected {
		return apperr.Wrap(apperr.KindUserRejected, "transaction rejected by user", err)
	}
	return apperr.RemoteCallFailed(message, err)
}

// receiptState maps a receipt status to a transaction state
func receiptState(receipt *types.Receipt) model.TransactionState {
	if receipt.Status == types.ReceiptStatusSuccessful {
		return model.TransactionSuccess
	}
	return model.TransactionFailed
}
