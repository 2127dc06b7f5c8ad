package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Every fleethr endpoint answers with the same envelope: a success flag,
// either a data payload or an error object, and the request id echoed back
// so clients can quote it when reporting problems. Upload endpoints return
// 200 with a summary even when individual rows failed; Fail is for requests
// that could not be processed at all.

type Problem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success   bool     `json:"success"`
	Data      any      `json:"data,omitempty"`
	Error     *Problem `json:"error,omitempty"`
	RequestID string   `json:"requestId,omitempty"`
}

func Success(w http.ResponseWriter, data any, requestID string) {
	write(w, http.StatusOK, envelope{Success: true, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, data any, requestID string) {
	write(w, http.StatusCreated, envelope{Success: true, Data: data, RequestID: requestID})
}

func Fail(w http.ResponseWriter, status int, code, message, requestID string) {
	write(w, status, envelope{
		Success:   false,
		Error:     &Problem{Code: code, Message: message},
		RequestID: requestID,
	})
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers are already gone; all we can do is leave a trace.
		slog.Warn("response encode failed", "requestId", body.RequestID, "err", err)
	}
}
