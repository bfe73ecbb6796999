package dto

// CreateModelRequest used for POST /api/models
type CreateModelRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateModelRequest used for PUT /api/models/:id; empty password means keep
type UpdateModelRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password,omitempty" binding:"omitempty,min=6"`
}

// SetModelStatusRequest used for PUT /api/models/:id/status
type SetModelStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE SUSPENDED PENDING"`
}
