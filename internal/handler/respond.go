package handler

import (
	"encoding/json"
	"net/http"

	"github.com/AlexZinkM/creatorweb3/internal/apperr"
	"github.com/AlexZinkM/creatorweb3/internal/logger"
	"github.com/AlexZinkM/creatorweb3/internal/model"
	"github.com/AlexZinkM/creatorweb3/internal/sentryutil"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// statusFor maps an error kind to an HTTP status
func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindInvalidInput:
		return http.StatusBadRequest
	case apperr.KindNotConnected:
		return http.StatusUnauthorized
	case apperr.KindUserRejected, apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindNetworkMismatch, apperr.KindNetworkSwitchFailed:
		return http.StatusConflict
	case apperr.KindRemoteCallFailed, apperr.KindStorageFailed:
		return http.StatusBadGateway
	case apperr.KindProviderMissing:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// writeError renders err as an ErrorResponse. Server-side failures are logged and reported.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := apperr.KindOf(err)
	status := statusFor(kind)

	log := logger.For(r.Context()).WithError(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed")
		sentryutil.ReportError(r.Context(), err)
	} else {
		log.Info("request rejected")
	}

	writeJSON(w, status, model.ErrorResponse{Error: err.Error(), Code: string(kind)})
}

// badRequest renders a validation failure
func badRequest(w http.ResponseWriter, r *http.Request, message string, err error) {
	if err == nil {
		writeError(w, r, apperr.New(apperr.KindInvalidInput, message))
		return
	}
	writeError(w, r, apperr.Wrap(apperr.KindInvalidInput, message, err))
}
