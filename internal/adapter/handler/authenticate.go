// Package handler contains the HTTP handlers for auth-gate.
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"auth-gate/internal/domain"
	"auth-gate/internal/usecase"
	"auth-gate/metrics"
	"auth-gate/utils/logger"
)

const (
	componentAuthenticate = "authenticate"

	internalErrorMessage  = "INTERNAL SERVER ERROR"
	directoryErrorMessage = "DIRECTORY UNAVAILABLE"
)

// authRequest is the inbound wire envelope. UserID is a pointer so a
// missing field is echoed back as null, matching the 400 contract.
type authRequest struct {
	UserID *string `json:"userId"`
}

// AuthHandler handles POST /authenticate.
type AuthHandler struct {
	uc    *usecase.AuthenticateUser
	txlog *logger.TransactionLogger
}

// NewAuthHandler creates the authenticate handler.
func NewAuthHandler(uc *usecase.AuthenticateUser, txlog *logger.TransactionLogger) *AuthHandler {
	return &AuthHandler{uc: uc, txlog: txlog}
}

// Handle resolves one authentication request. Every path through this
// function emits exactly one Request and one Response log entry
// sharing one transaction id. The response log and the response body
// are written in a deferred block so the pair stays complete even when
// a collaborator panics: the panic becomes the 500 payload instead of
// escaping to outer middleware.
func (h *AuthHandler) Handle(c echo.Context) (err error) {
	ctx := c.Request().Context()
	start := time.Now()

	var req authRequest
	bindErr := c.Bind(&req)

	var payload any = map[string]any{"userId": req.UserID}
	txn := h.txlog.Begin(ctx, componentAuthenticate, payload)

	code := http.StatusOK
	defer func() {
		if r := recover(); r != nil {
			code = http.StatusInternalServerError
			payload = map[string]any{"error": internalErrorMessage, "details": fmt.Sprint(r)}
			metrics.RecordError(componentAuthenticate, "panic")
		}
		metrics.RecordOutcome(outcomeLabel(code), time.Since(start).Seconds())
		h.txlog.End(ctx, txn, code, payload)
		err = c.JSON(code, payload)
	}()

	switch {
	case bindErr != nil, req.UserID == nil, *req.UserID == "":
		code = http.StatusBadRequest
	default:
		outcome, ucErr := h.uc.Execute(ctx, txn, *req.UserID)
		switch {
		case errors.Is(ucErr, domain.ErrDirectoryUnavailable):
			code = http.StatusBadGateway
			payload = map[string]any{"error": directoryErrorMessage, "details": ucErr.Error()}
			metrics.RecordError(componentAuthenticate, "directory")
		case ucErr != nil:
			code = http.StatusInternalServerError
			payload = map[string]any{"error": internalErrorMessage, "details": ucErr.Error()}
			metrics.RecordError(componentAuthenticate, errorType(ucErr))
		case outcome.Authenticated():
			payload = outcome.Record
		default:
			// Rejected and NotFound both answer 401 with the echoed input.
			code = http.StatusUnauthorized
		}
	}

	return nil
}

func errorType(err error) string {
	if errors.Is(err, domain.ErrCacheUnavailable) {
		return "cache"
	}
	return "internal"
}

func outcomeLabel(code int) string {
	switch code {
	case http.StatusOK:
		return "authenticated"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusBadGateway:
		return "directory_unavailable"
	default:
		return "error"
	}
}
