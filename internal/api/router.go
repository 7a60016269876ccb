package api

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/AlexZinkM/creatorweb3/internal/handler"
)

// SetupRouter sets up router with handlers
func SetupRouter(h *handler.Handler) http.Handler {
	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("POST /wallet/generate", h.Generate)
	mux.HandleFunc("POST /wallet/connect", h.Connect)
	mux.HandleFunc("POST /wallet/disconnect", h.Disconnect)
	mux.HandleFunc("GET /wallet/status", h.Status)
	mux.HandleFunc("DELETE /wallet/error", h.ClearError)
	mux.HandleFunc("GET /wallet/qr", h.QR)
	mux.HandleFunc("GET /wallet/events", h.Events)

	// Creator endpoints
	mux.HandleFunc("GET /creators", h.ListCreators)
	mux.HandleFunc("POST /creators", h.CreateCreator)
	mux.HandleFunc("GET /creators/{id}", h.Profile)
	mux.HandleFunc("GET /creators/{id}/access", h.Access)
	mux.HandleFunc("POST /creators/{id}/buy", h.Buy)
	mux.HandleFunc("GET /creators/{id}/purchases", h.Purchases)
	mux.HandleFunc("GET /creators/{id}/content", h.GetContent)
	mux.HandleFunc("POST /creators/{id}/content", h.PublishContent)

	// Chain and price endpoints
	mux.HandleFunc("GET /transactions/{hash}", h.TransactionStatus)
	mux.HandleFunc("GET /prices/tokens/{address}", h.TokenPrice)
	mux.HandleFunc("GET /prices/native", h.NativePrice)
	mux.HandleFunc("GET /content/{cid}", h.RawContent)

	sentryHandler := sentryhttp.New(sentryhttp.Options{Repanic: true})
	return withRequestLogging(sentryHandler.Handle(mux))
}
