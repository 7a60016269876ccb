package handler

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/AlexZinkM/creatorweb3/internal/logger"
	"github.com/AlexZinkM/creatorweb3/internal/model"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Events handles GET /wallet/events
// @Summary      Wallet session stream
// @Description  WebSocket stream of wallet session snapshots; the current one is sent on connect
// @Tags         wallet
// @Success      101
// @Router       /wallet/events [get]
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.For(r.Context()).WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// Feed.Send blocks until every subscriber receives, so keep this buffered
	changes := make(chan model.WalletSession, 16)
	sub := h.Session.SubscribeChanges(changes)
	defer sub.Unsubscribe()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func(state model.WalletSession) bool {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(state); err != nil {
			logger.For(r.Context()).WithError(err).Debug("websocket write failed")
			return false
		}
		return true
	}

	if !send(h.Session.Snapshot()) {
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case state := <-changes:
			if !send(state) {
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case err := <-sub.Err():
			if err != nil {
				logger.For(r.Context()).WithError(err).Warn("session subscription closed")
			}
			return
		case <-closed:
			return
		case <-r.Context().Done():
			return
		}
	}
}
