package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lojaviva/commerce-system/internal/core/domain"
	"github.com/lojaviva/commerce-system/internal/metrics"
)

// detailResponse is the canonical envelope for all error responses and for
// delete confirmations: {"detail": "<message>"}.
type detailResponse struct {
	Detail string `json:"detail"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps every domain error kind to its HTTP status code, exhaustively.
//   - Mirrors the peer's status for invalid-reference and upstream failures.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, detailResponse{Detail: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	e := domain.From(err)
	switch e.Kind {
	case domain.KindValidation:
		return http.StatusBadRequest, "error validating data: " + e.Message
	case domain.KindNotFound:
		return http.StatusNotFound, e.Message
	case domain.KindDuplicate:
		metrics.DuplicateRejectionsTotal.Inc()
		return http.StatusBadRequest, "error registering data: " + e.Message
	case domain.KindInvalidReference:
		return e.Status, e.Message
	case domain.KindUpstream:
		log.Error().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("peer service failure")
		return e.Status, e.Message
	case domain.KindEncryption:
		metrics.CodecFailuresTotal.WithLabelValues("encrypt").Inc()
		log.Error().Err(err).Msg("encryption failure")
		return http.StatusInternalServerError, e.Message
	case domain.KindDecryption:
		metrics.CodecFailuresTotal.WithLabelValues("decrypt").Inc()
		log.Error().Err(err).Msg("decryption failure")
		return http.StatusInternalServerError, e.Message
	case domain.KindUnknown:
		fallthrough
	default:
		// Unexpected error: log the real cause, return a generic message.
		log.Error().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")
		return http.StatusInternalServerError, "an unknown error occurred"
	}
}
