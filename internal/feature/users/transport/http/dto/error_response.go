package dto

// ErrorResponse is the generic error envelope `{"error": "..."}`.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries every field validation message of a
// rejected payload, not just the first one.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}
