package models

// ErrorResponse is the uniform error shape returned by every endpoint
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
