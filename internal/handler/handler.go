package handler

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/go-playground/validator/v10"

	"github.com/AlexZinkM/creatorweb3/internal/content"
	"github.com/AlexZinkM/creatorweb3/internal/model"
	"github.com/AlexZinkM/creatorweb3/internal/storage"
)

// Session is the wallet session the handlers drive
type Session interface {
	Connect(ctx context.Context) (model.WalletSession, error)
	Disconnect()
	RefreshBalance(ctx context.Context) error
	ClearError()
	Snapshot() model.WalletSession
	SubscribeChanges(ch chan<- model.WalletSession) event.Subscription
}

// Market is the contract access layer
type Market interface {
	GetCreators(ctx context.Context) ([]model.Creator, error)
	GetCreatorsOwnedBy(ctx context.Context, owner common.Address) ([]model.Creator, error)
	AccessDetails(ctx context.Context, creatorID *big.Int, holder common.Address) (model.AccessStatus, error)
	BuyTokens(ctx context.Context, creatorID *big.Int, amount string) (string, error)
	CreateCreatorToken(ctx context.Context, name, symbol string) (string, error)
	Purchases(ctx context.Context, creatorID *big.Int, req *model.PurchaseRequest) (*model.PurchaseResponse, error)
	TransactionStatus(ctx context.Context, hash common.Hash) (model.TransactionStatus, error)
	WaitForTransaction(ctx context.Context, hash common.Hash, interval time.Duration) (model.TransactionStatus, error)
}

// Content publishes and serves creator content
type Content interface {
	Publish(ctx context.Context, creatorID *big.Int, req content.PublishRequest) (*model.PublishResponse, error)
	Load(ctx context.Context, creatorID *big.Int, viewer common.Address) (*model.ContentResponse, error)
	Profile(ctx context.Context, creatorID *big.Int, viewer *common.Address) (*model.CreatorProfile, error)
}

// Prices quotes tokens and the native asset
type Prices interface {
	GetTokenPrice(ctx context.Context, tokenAddress string) model.TokenPrice
	GetNativePrice(ctx context.Context) model.TokenPrice
}

// Storage reads stored documents
type Storage interface {
	Fetch(ctx context.Context, cid string) (*storage.Content, error)
}

// PasswordSource supplies the password new wallet files are encrypted with
type PasswordSource interface {
	Password(ctx context.Context) ([]byte, error)
}

// Deps are the services the handlers are built on
type Deps struct {
	Session   Session
	Market    Market
	Content   Content
	Prices    Prices
	Storage   Storage
	Passwords PasswordSource

	WalletFilePath string
	KDF            model.KDFParams
	MaxUploadBytes int64
}

// Handler serves the HTTP API
type Handler struct {
	Deps
	validate *validator.Validate
}

// New creates a Handler
func New(deps Deps) *Handler {
	return &Handler{
		Deps:     deps,
		validate: validator.New(),
	}
}

// viewer returns the connected account, if any
func (h *Handler) viewer() (common.Address, bool) {
	state := h.Session.Snapshot()
	if !state.Connected || state.Address == "" {
		return common.Address{}, false
	}
	return common.HexToAddress(state.Address), true
}
