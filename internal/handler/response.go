package handler

// RESPONSE HELPERS:
// Every response from the API uses the same envelope:
//
//	{"status": "success", "data": {...}}          2xx (data omitted when empty)
//	{"status": "fail",    "message": "..."}       4xx, the client can fix it
//	{"status": "error",   "message": "..."}       500, our fault
//
// Handlers call writeSuccess / writeError and never build envelopes by hand.

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/forum-api/internal/apperror"
	"github.com/sakif/forum-api/internal/model"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
	statusError   = "error"

	msgInternal    = "terjadi kegagalan pada server kami"
	msgInvalidJSON = "request body harus berupa objek JSON yang valid"
)

// errMissingUser is returned by protected handlers mounted without
// auth.RequireAuth in front of them.
var errMissingUser = apperror.Authentication("Missing authentication")

// maxBodyBytes caps request bodies. Forum payloads are a few KB at most.
const maxBodyBytes = 1 << 20

// Response is the envelope shared by all endpoints.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// writeJSON sends a JSON response with the given status code.
//
// HEADER ORDER MATTERS:
// Headers and status must be set before the body. Once Encode writes, the
// headers are gone and later changes are silently ignored.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent; logging is all that is left.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeSuccess wraps data in the success envelope. Pass nil for bodies that
// carry only the status.
func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Response{Status: statusSuccess, Data: data})
}

// writeError maps an error from the service layer to an HTTP response.
//
// ERROR MAPPING:
//  1. apperror.Translate turns entity validation codes (DomainError) into a
//     400 with the user-facing message.
//  2. errors.As finds an *apperror.AppError anywhere in the wrapped chain; its
//     kind decides the status (400/401/403/404) and its Message is sent as is.
//  3. Anything else is an internal failure: logged with the request id and
//     answered with a generic 500. Raw error text never reaches the client.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	err = apperror.Translate(err)

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		if status := appErr.StatusCode(); status < http.StatusInternalServerError {
			writeJSON(w, status, Response{Status: statusFail, Message: appErr.Message})
			return
		}
	}

	logger.Error("request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("requestID", chimiddleware.GetReqID(r.Context())),
		slog.String("error", err.Error()),
	)
	writeJSON(w, http.StatusInternalServerError, Response{Status: statusError, Message: msgInternal})
}

// decodePayload reads the request body into a loosely typed Payload. Field
// presence and types are checked by the model constructors, not here, so a
// number where a string belongs yields the entity's own error code.
//
// An empty body decodes to an empty Payload. A body that is not a JSON
// object is a 400.
func decodePayload(w http.ResponseWriter, r *http.Request) (model.Payload, error) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var p model.Payload
	if err := json.NewDecoder(body).Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return model.Payload{}, nil
		}
		return nil, apperror.Invariant(msgInvalidJSON)
	}
	if p == nil {
		// The body was the literal null.
		p = model.Payload{}
	}
	return p, nil
}

// NotFound answers unknown routes with the fail envelope instead of chi's
// plain-text default.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, Response{Status: statusFail, Message: "resource tidak ditemukan"})
}

// MethodNotAllowed answers a known path hit with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, Response{Status: statusFail, Message: "method tidak diizinkan"})
}
