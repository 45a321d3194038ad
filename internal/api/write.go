// Package api provides http helpers shared by handlers: response writers and
// router middleware.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error string `json:"error"`
}

// WriteOK writes a json response with the given status code.
func WriteOK(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) // nolint:errcheck
}

// WriteError writes an error json response with the given status code.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteOK(w, status, errorResponse{Error: message})
}

// WriteInternalErrorf logs the formatted message with the request id and
// responds with a generic internal error, not leaking details to the caller.
func WriteInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	logrus.WithField("request_id", RequestID(ctx)).Errorf(format, args...)
	WriteError(w, http.StatusInternalServerError, "internal error")
}
