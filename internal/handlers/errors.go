package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/aurora-studio/site-api/internal/apperr"
	"github.com/aurora-studio/site-api/internal/httpx"
)

// writeError is the only place a service failure becomes a status code.
// Internal errors are logged in full and reported generically; everything
// else carries its own client-safe message.
func writeError(log *zap.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		e = apperr.Internal("Internal server error.", err)
	}

	switch e.Kind {
	case apperr.KindValidation:
		httpx.Error(w, http.StatusBadRequest, e.Msg)
	case apperr.KindConflict:
		httpx.Error(w, http.StatusConflict, e.Msg)
	case apperr.KindUnauthorized:
		httpx.Error(w, http.StatusUnauthorized, e.Msg)
	case apperr.KindForbidden:
		httpx.Error(w, http.StatusForbidden, e.Msg)
	case apperr.KindNotFound:
		httpx.Error(w, http.StatusNotFound, e.Msg)
	default:
		log.Error("internal error",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		httpx.Error(w, http.StatusInternalServerError, "Internal server error.")
	}
}
