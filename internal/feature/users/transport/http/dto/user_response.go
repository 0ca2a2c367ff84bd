package dto

// UserResponse represents a user in API responses.
// Phone serializes to null when the user has none.
type UserResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}
