// Package price looks up fiat quotes for creator tokens and the native asset.
package price

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/AlexZinkM/creatorweb3/internal/client"
	"github.com/AlexZinkM/creatorweb3/internal/logger"
	"github.com/AlexZinkM/creatorweb3/internal/model"
)

// Fallback quotes returned when the index has no entry or the request fails.
const (
	FallbackTokenUSD  = 0.01
	FallbackNativeUSD = 2000
)

// Quoter is the price index the service reads from
type Quoter interface {
	TokenPrice(ctx context.Context, contractAddress string) (*client.Quote, error)
	AssetPrice(ctx context.Context, assetID string) (*client.Quote, error)
}

// Service resolves quotes and never fails: misses degrade to fallback values
// with Available set to false.
type Service struct {
	quoter      Quoter
	nativeAsset string
}

// NewService creates a price service. nativeAsset is the index id of the chain's native coin.
func NewService(quoter Quoter, nativeAsset string) *Service {
	if nativeAsset == "" {
		nativeAsset = "ethereum"
	}
	return &Service{quoter: quoter, nativeAsset: nativeAsset}
}

// GetTokenPrice returns the USD quote for a token contract
func (s *Service) GetTokenPrice(ctx context.Context, tokenAddress string) model.TokenPrice {
	quote, err := s.quoter.TokenPrice(ctx, tokenAddress)
	if err != nil {
		logger.For(ctx).WithFields(logrus.Fields{"token": tokenAddress}).WithError(err).Warn("token price unavailable, using fallback")
		return model.TokenPrice{USD: FallbackTokenUSD}
	}
	return fromQuote(quote, FallbackTokenUSD)
}

// GetNativePrice returns the USD quote for the native asset
func (s *Service) GetNativePrice(ctx context.Context) model.TokenPrice {
	quote, err := s.quoter.AssetPrice(ctx, s.nativeAsset)
	if err != nil {
		logger.For(ctx).WithFields(logrus.Fields{"asset": s.nativeAsset}).WithError(err).Warn("native price unavailable, using fallback")
		return model.TokenPrice{USD: FallbackNativeUSD}
	}
	return fromQuote(quote, FallbackNativeUSD)
}

func fromQuote(quote *client.Quote, fallback float64) model.TokenPrice {
	if quote == nil || quote.USD == nil {
		return model.TokenPrice{USD: fallback}
	}
	p := model.TokenPrice{USD: *quote.USD, Available: true}
	if quote.Change24h != nil {
		p.Change24h = *quote.Change24h
	}
	return p
}
