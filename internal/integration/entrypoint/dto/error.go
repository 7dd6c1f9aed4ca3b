// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
