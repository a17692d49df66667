package types

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// MessageResponse is the {"message": ...} body returned by mutation endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
