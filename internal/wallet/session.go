package wallet

import (
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/event"
	"github.com/sirupsen/logrus"

	"github.com/AlexZinkM/creatorweb3/internal/apperr"
	appcommon "github.com/AlexZinkM/creatorweb3/internal/common"
	"github.com/AlexZinkM/creatorweb3/internal/logger"
	"github.com/AlexZinkM/creatorweb3/internal/model"
)

// Session owns the wallet session state. It is mutated only by connect,
// disconnect and provider notifications.
type Session struct {
	bridge *Bridge

	mu    sync.Mutex
	state model.WalletSession
	// epoch changes on every reset; results of calls started in an older epoch are dropped
	epoch uint64

	feed event.Feed
}

// NewSession creates a disconnected session over bridge
func NewSession(bridge *Bridge) *Session {
	return &Session{bridge: bridge}
}

// Bridge returns the underlying bridge
func (s *Session) Bridge() *Bridge { return s.bridge }

// Snapshot returns a copy of the current state
func (s *Session) Snapshot() model.WalletSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SubscribeChanges delivers a snapshot after every state change
func (s *Session) SubscribeChanges(ch chan<- model.WalletSession) event.Subscription {
	return s.feed.Subscribe(ch)
}

func (s *Session) publish() {
	s.feed.Send(s.Snapshot())
}

// Restore reconnects when the provider still has an authorized account
func (s *Session) Restore(ctx context.Context) {
	if !s.bridge.IsConnected(ctx) {
		return
	}
	if _, err := s.Connect(ctx); err != nil {
		logger.For(ctx).WithError(err).Warn("failed to restore wallet session")
	}
}

// Connect connects the wallet and loads its balance.
// A call made while another connect is in progress returns the current state.
func (s *Session) Connect(ctx context.Context) (model.WalletSession, error) {
	s.mu.Lock()
	if s.state.Connecting {
		state := s.state
		s.mu.Unlock()
		return state, nil
	}
	s.state.Connecting = true
	s.state.Error = ""
	epoch := s.epoch
	s.mu.Unlock()
	s.publish()

	address, err := s.bridge.Connect(ctx)
	if err != nil {
		s.mu.Lock()
		if epoch == s.epoch {
			s.state.Connecting = false
			s.state.Error = err.Error()
		}
		s.mu.Unlock()
		s.publish()
		return s.Snapshot(), err
	}

	balance, balanceErr := s.bridge.Balance(ctx)

	s.mu.Lock()
	if epoch != s.epoch {
		// A newer connect owns the bridge now.
		if s.state.Connected || s.state.Connecting {
			state := s.state
			s.mu.Unlock()
			return state, nil
		}
		s.bridge.Disconnect()
		s.mu.Unlock()
		return s.Snapshot(), apperr.New(apperr.KindNotConnected, "session was reset while connecting")
	}
	s.state = model.WalletSession{Connected: true, Address: address.Hex()}
	if balanceErr != nil {
		s.state.Error = balanceErr.Error()
	} else {
		s.state.Balance = appcommon.WeiToEther(balance)
	}
	state := s.state
	s.mu.Unlock()
	s.publish()

	return state, nil
}

// Disconnect resets the session unconditionally and drops any in-flight refresh
func (s *Session) Disconnect() {
	s.mu.Lock()
	s.epoch++
	s.state = model.WalletSession{}
	s.bridge.Disconnect()
	s.mu.Unlock()
	s.publish()
}

// RefreshBalance reloads the balance of the connected account
func (s *Session) RefreshBalance(ctx context.Context) error {
	s.mu.Lock()
	if !s.state.Connected {
		s.mu.Unlock()
		return apperr.New(apperr.KindNotConnected, "wallet not connected")
	}
	epoch := s.epoch
	s.mu.Unlock()

	balance, err := s.bridge.Balance(ctx)

	s.mu.Lock()
	if epoch != s.epoch {
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		s.state.Error = err.Error()
	} else {
		s.state.Balance = appcommon.WeiToEther(balance)
	}
	s.mu.Unlock()
	s.publish()
	return err
}

// ClearError removes the last error
func (s *Session) ClearError() {
	s.mu.Lock()
	s.state.Error = ""
	s.mu.Unlock()
	s.publish()
}

// Watch applies provider notifications to the session until ctx is done.
// Zero accounts reset the session, a new account replaces the address and
// balance, and a chain change reloads the whole session unless it lands on
// the configured chain while the session is up or connecting.
// Listeners are removed when Watch returns.
func (s *Session) Watch(ctx context.Context) error {
	accounts := make(chan []common.Address, 8)
	chains := make(chan *big.Int, 8)

	accountsSub := s.bridge.SubscribeAccountsChanged(accounts)
	chainSub := s.bridge.SubscribeChainChanged(chains)
	defer s.bridge.RemoveAllListeners()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case list := <-accounts:
			if len(list) == 0 {
				logger.For(ctx).Info("wallet locked, disconnecting")
				s.Disconnect()
				continue
			}
			s.accountChanged(ctx, list[0])
		case chainID := <-chains:
			if s.onConfiguredChain(chainID) {
				continue
			}
			logger.For(ctx).WithFields(logrus.Fields{"chainId": chainID.String()}).Info("chain changed, reloading session")
			s.Disconnect()
			s.Restore(ctx)
		case err := <-accountsSub.Err():
			return err
		case err := <-chainSub.Err():
			return err
		}
	}
}

func (s *Session) accountChanged(ctx context.Context, account common.Address) {
	s.mu.Lock()
	if !s.state.Connected || s.state.Address == account.Hex() {
		s.mu.Unlock()
		return
	}
	s.bridge.adopt(account)
	s.state.Address = account.Hex()
	s.state.Balance = ""
	s.mu.Unlock()
	s.publish()
	logger.For(ctx).WithField("address", appcommon.ShortAddress(account.Hex())).Info("account changed")

	if err := s.RefreshBalance(ctx); err != nil {
		logger.For(ctx).WithError(err).Warn("failed to refresh balance after account change")
	}
}

// onConfiguredChain reports whether a chain change only confirms the switch
// made by a live or in-flight connect.
func (s *Session) onConfiguredChain(chainID *big.Int) bool {
	if chainID == nil || chainID.Cmp(s.bridge.Chain().ChainID) != 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Connected || s.state.Connecting
}
