package models

// MessageResponse is returned by the root endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// ProbeResponse contains liveness and readiness probe results.
type ProbeResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// ErrorResponse is the envelope for every API error.
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Status values used by probes and the error envelope.
const (
	StatusOK    = "ok"
	StatusError = "error"
)
