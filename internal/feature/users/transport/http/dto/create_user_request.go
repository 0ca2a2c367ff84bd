// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// CreateUserReq represents the request body for POST /users.
// It uses Gin's binding tags for validation (required fields, name length, email format).
type CreateUserReq struct {
	Name  string  `json:"name" binding:"required,min=3"`
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone"`
}
