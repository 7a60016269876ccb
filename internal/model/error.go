package model

// ErrorResponse is the consistent JSON structure for all API error responses.
// Code carries the error kind (e.g. NOT_CONNECTED, USER_REJECTED).
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
