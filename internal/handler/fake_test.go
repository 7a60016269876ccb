package handler

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"

	"github.com/AlexZinkM/creatorweb3/internal/content"
	"github.com/AlexZinkM/creatorweb3/internal/model"
	"github.com/AlexZinkM/creatorweb3/internal/storage"
)

var (
	viewerAddr = common.HexToAddress("0x00000000000000000000000000000000000000bb")
	otherAddr  = common.HexToAddress("0x00000000000000000000000000000000000000cc")
)

type fakeSession struct {
	state      model.WalletSession
	connectErr error
	refreshed  bool
	feed       event.Feed
}

func (s *fakeSession) Connect(ctx context.Context) (model.WalletSession, error) {
	if s.connectErr != nil {
		return model.WalletSession{Error: s.connectErr.Error()}, s.connectErr
	}
	s.state = model.WalletSession{Connected: true, Address: viewerAddr.Hex(), Balance: "1.5"}
	return s.state, nil
}

func (s *fakeSession) Disconnect() { s.state = model.WalletSession{} }

func (s *fakeSession) RefreshBalance(ctx context.Context) error {
	s.refreshed = true
	return nil
}

func (s *fakeSession) ClearError() { s.state.Error = "" }

func (s *fakeSession) Snapshot() model.WalletSession { return s.state }

func (s *fakeSession) SubscribeChanges(ch chan<- model.WalletSession) event.Subscription {
	return s.feed.Subscribe(ch)
}

type fakeMarket struct {
	creators  []model.Creator
	owner     common.Address
	holder    common.Address
	access    model.AccessStatus
	buyAmount string
	name      string
	symbol    string
	purchases *model.PurchaseRequest
	txStatus  model.TransactionStatus
	waited    bool
	// lookupTimeout makes a pending wait fail inside the receipt lookup
	lookupTimeout bool
	err           error
}

func (m *fakeMarket) GetCreators(ctx context.Context) ([]model.Creator, error) {
	return m.creators, m.err
}

func (m *fakeMarket) GetCreatorsOwnedBy(ctx context.Context, owner common.Address) ([]model.Creator, error) {
	m.owner = owner
	return m.creators[:1], m.err
}

func (m *fakeMarket) AccessDetails(ctx context.Context, creatorID *big.Int, holder common.Address) (model.AccessStatus, error) {
	m.holder = holder
	status := m.access
	status.CreatorID = creatorID.String()
	status.Address = holder.Hex()
	return status, m.err
}

func (m *fakeMarket) BuyTokens(ctx context.Context, creatorID *big.Int, amount string) (string, error) {
	m.buyAmount = amount
	return "0xbuy", m.err
}

func (m *fakeMarket) CreateCreatorToken(ctx context.Context, name, symbol string) (string, error) {
	m.name, m.symbol = name, symbol
	return "0xcreate", m.err
}

func (m *fakeMarket) Purchases(ctx context.Context, creatorID *big.Int, req *model.PurchaseRequest) (*model.PurchaseResponse, error) {
	m.purchases = req
	return &model.PurchaseResponse{CreatorID: creatorID.String(), Purchases: []model.Purchase{}}, m.err
}

func (m *fakeMarket) TransactionStatus(ctx context.Context, hash common.Hash) (model.TransactionStatus, error) {
	status := m.txStatus
	status.TxHash = hash.Hex()
	return status, m.err
}

func (m *fakeMarket) WaitForTransaction(ctx context.Context, hash common.Hash, interval time.Duration) (model.TransactionStatus, error) {
	m.waited = true
	status := m.txStatus
	status.TxHash = hash.Hex()
	if status.State == model.TransactionPending {
		<-ctx.Done()
		if m.lookupTimeout {
			return model.TransactionStatus{}, fmt.Errorf("receipt lookup: %w", ctx.Err())
		}
		return status, ctx.Err()
	}
	return status, m.err
}

type fakeContent struct {
	published content.PublishRequest
	bodies    []string
	viewer    *common.Address
	err       error
}

func (c *fakeContent) Publish(ctx context.Context, creatorID *big.Int, req content.PublishRequest) (*model.PublishResponse, error) {
	c.published = req
	for _, f := range req.Files {
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		body, _ := io.ReadAll(rc)
		rc.Close()
		c.bodies = append(c.bodies, string(body))
	}
	return &model.PublishResponse{MetadataCID: "bafymeta", TxHash: "0xpublish"}, c.err
}

func (c *fakeContent) Load(ctx context.Context, creatorID *big.Int, viewer common.Address) (*model.ContentResponse, error) {
	c.viewer = &viewer
	if c.err != nil {
		return nil, c.err
	}
	return &model.ContentResponse{CID: "bafymeta", Metadata: &model.ContentMetadata{Title: "Episode 1"}}, nil
}

func (c *fakeContent) Profile(ctx context.Context, creatorID *big.Int, viewer *common.Address) (*model.CreatorProfile, error) {
	c.viewer = viewer
	return &model.CreatorProfile{Creator: model.Creator{ID: creatorID.String(), Name: "Alice"}}, c.err
}

type fakePrices struct{}

func (fakePrices) GetTokenPrice(ctx context.Context, tokenAddress string) model.TokenPrice {
	return model.TokenPrice{USD: 1.5, Change24h: -2.25, Available: true}
}

func (fakePrices) GetNativePrice(ctx context.Context) model.TokenPrice {
	return model.TokenPrice{USD: 2000}
}

type fakeStorage struct {
	docs map[string]*storage.Content
}

func (s *fakeStorage) Fetch(ctx context.Context, cid string) (*storage.Content, error) {
	doc, ok := s.docs[cid]
	if !ok {
		return nil, errNotStored
	}
	return doc, nil
}

type fakePasswords struct {
	password []byte
	err      error
}

func (p fakePasswords) Password(ctx context.Context) ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	return append([]byte(nil), p.password...), nil
}

type testEnv struct {
	handler *Handler
	session *fakeSession
	market  *fakeMarket
	content *fakeContent
	storage *fakeStorage
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		session: &fakeSession{},
		market: &fakeMarket{creators: []model.Creator{
			{ID: "1", Name: "Alice", Symbol: "ALC", Owner: viewerAddr.Hex()},
			{ID: "2", Name: "Bob", Symbol: "BOB", Owner: otherAddr.Hex()},
		}},
		content: &fakeContent{},
		storage: &fakeStorage{docs: map[string]*storage.Content{}},
	}
	env.handler = New(Deps{
		Session:        env.session,
		Market:         env.market,
		Content:        env.content,
		Prices:         fakePrices{},
		Storage:        env.storage,
		Passwords:      fakePasswords{password: []byte("secret")},
		KDF:            model.KDFParams{N: 1 << 10, R: 8, P: 1},
		MaxUploadBytes: 1 << 20,
	})
	return env
}

func (e *testEnv) connect() {
	e.session.state = model.WalletSession{Connected: true, Address: viewerAddr.Hex()}
}

// serve routes req through a mux holding only pattern so path values resolve
func serve(pattern string, handle http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	mux := http.NewServeMux()
	mux.HandleFunc(pattern, handle)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}
