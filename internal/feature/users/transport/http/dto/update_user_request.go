package dto

// UpdateUserReq represents the request body for PUT /users/:id.
// Every field is optional; a nil field keeps the stored value. Provided
// fields run through the same validation rules as on create.
type UpdateUserReq struct {
	Name  *string `json:"name" binding:"omitempty,min=3"`
	Email *string `json:"email" binding:"omitempty,email"`
	Phone *string `json:"phone"`
}
