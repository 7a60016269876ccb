// Package content publishes creator content and serves it to token holders.
package content

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/AlexZinkM/creatorweb3/internal/apperr"
	"github.com/AlexZinkM/creatorweb3/internal/logger"
	"github.com/AlexZinkM/creatorweb3/internal/model"
	"github.com/AlexZinkM/creatorweb3/internal/price"
	"github.com/AlexZinkM/creatorweb3/internal/storage"
)

// DefaultMaxFileSize is the per-file upload limit
const DefaultMaxFileSize = 50 << 20

// Market is the part of the contract layer content depends on
type Market interface {
	GetCreatorInfo(ctx context.Context, creatorID *big.Int) (model.Creator, error)
	GetTokenInfo(ctx context.Context, tokenAddress common.Address) (model.TokenInfo, error)
	GetMinimumTokensRequired(ctx context.Context, creatorID *big.Int) (string, error)
	AccessDetails(ctx context.Context, creatorID *big.Int, holder common.Address) (model.AccessStatus, error)
	GetContentCID(ctx context.Context, creatorID *big.Int) (string, error)
	SetContentCID(ctx context.Context, creatorID *big.Int, cid string) (string, error)
}

// Storage stores files and metadata
type Storage interface {
	UploadFiles(ctx context.Context, files []storage.File) ([]model.FileDescriptor, error)
	UploadJSON(ctx context.Context, v interface{}) (model.UploadResult, error)
	FetchJSON(ctx context.Context, cid string, v interface{}) error
}

// Prices quotes creator tokens
type Prices interface {
	GetTokenPrice(ctx context.Context, tokenAddress string) model.TokenPrice
}

// Wallet reports the connected account
type Wallet interface {
	Address() (common.Address, bool)
}

// PublishRequest is the content a creator publishes
type PublishRequest struct {
	Title       string
	Description string
	Files       []storage.File
}

// Service composes contracts, storage and prices into creator pages
type Service struct {
	market      Market
	storage     Storage
	prices      Prices
	wallet      Wallet
	maxFileSize int64
	now         func() time.Time
}

// NewService creates a content service. A non-positive maxFileSize uses DefaultMaxFileSize.
func NewService(market Market, storage Storage, prices Prices, wallet Wallet, maxFileSize int64) *Service {
	if maxFileSize <= 0 {
		maxFileSize = DefaultMaxFileSize
	}
	return &Service{
		market:      market,
		storage:     storage,
		prices:      prices,
		wallet:      wallet,
		maxFileSize: maxFileSize,
		now:         time.Now,
	}
}

// Publish uploads files and their metadata and stores the metadata CID for the creator.
// Only the creator's owner may publish.
func (s *Service) Publish(ctx context.Context, creatorID *big.Int, req PublishRequest) (*model.PublishResponse, error) {
	account, ok := s.wallet.Address()
	if !ok {
		return nil, apperr.New(apperr.KindNotConnected, "wallet not connected")
	}

	// Validate request
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperr.New(apperr.KindInvalidInput, "title is required")
	}
	if len(req.Files) == 0 {
		return nil, apperr.New(apperr.KindInvalidInput, "at least one file is required")
	}
	for _, f := range req.Files {
		if f.Size > s.maxFileSize {
			return nil, apperr.New(apperr.KindInvalidInput,
				fmt.Sprintf("file %s is too large, maximum size is %dMB", f.Name, s.maxFileSize>>20))
		}
	}

	// Check ownership
	creator, err := s.market.GetCreatorInfo(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if common.HexToAddress(creator.Owner) != account {
		return nil, apperr.New(apperr.KindForbidden, "only the creator owner can publish content")
	}

	log := logger.For(ctx).WithFields(logrus.Fields{"creatorId": creatorID.String(), "files": len(req.Files)})

	// Upload files
	files, err := s.storage.UploadFiles(ctx, req.Files)
	if err != nil {
		return nil, err
	}
	log.Info("files uploaded")

	// Upload metadata
	metadata := model.ContentMetadata{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		CreatedAt:   s.now().UTC().Format(time.RFC3339),
		Creator:     creatorID.String(),
		Files:       files,
	}
	meta, err := s.storage.UploadJSON(ctx, metadata)
	if err != nil {
		return nil, err
	}

	// Store content reference
	txHash, err := s.market.SetContentCID(ctx, creatorID, meta.CID)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"cid": meta.CID, "tx": txHash}).Info("content published")

	return &model.PublishResponse{
		MetadataCID: meta.CID,
		MetadataURL: meta.URL,
		TxHash:      txHash,
		Files:       files,
	}, nil
}

// Load returns the creator's content when viewer holds enough tokens
func (s *Service) Load(ctx context.Context, creatorID *big.Int, viewer common.Address) (*model.ContentResponse, error) {
	status, err := s.market.AccessDetails(ctx, creatorID, viewer)
	if err != nil {
		return nil, err
	}
	if !status.HasAccess {
		return nil, apperr.New(apperr.KindForbidden,
			fmt.Sprintf("holding %s tokens, %s required", status.Balance, status.Minimum))
	}

	cid, err := s.market.GetContentCID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if cid == "" {
		return &model.ContentResponse{}, nil
	}

	var metadata model.ContentMetadata
	if err := s.storage.FetchJSON(ctx, cid, &metadata); err != nil {
		return nil, err
	}
	return &model.ContentResponse{CID: cid, Metadata: &metadata}, nil
}

// Profile gathers the creator page: creator, token, threshold, price and,
// when viewer is set, the viewer's access.
func (s *Service) Profile(ctx context.Context, creatorID *big.Int, viewer *common.Address) (*model.CreatorProfile, error) {
	creator, err := s.market.GetCreatorInfo(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	profile := &model.CreatorProfile{Creator: creator}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		profile.Token, err = s.market.GetTokenInfo(gctx, common.HexToAddress(creator.TokenAddress))
		return err
	})
	g.Go(func() (err error) {
		profile.Minimum, err = s.market.GetMinimumTokensRequired(gctx, creatorID)
		return err
	})
	g.Go(func() error {
		profile.Price = s.prices.GetTokenPrice(gctx, creator.TokenAddress)
		return nil
	})
	if viewer != nil {
		g.Go(func() error {
			status, err := s.market.AccessDetails(gctx, creatorID, *viewer)
			if err != nil {
				return err
			}
			profile.Access = &status
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	profile.PriceLabel = price.FormatPrice(profile.Price.USD)
	profile.ChangeLabel = price.FormatPriceChange(profile.Price.Change24h)
	if profile.Access != nil {
		if value, err := price.ValueInUSD(profile.Access.Balance, profile.Price.USD); err == nil {
			profile.HoldingUSD = "$" + value.StringFixed(2)
		}
	}
	return profile, nil
}
