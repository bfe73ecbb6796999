package dto

// UpdateProfileRequest used for PUT /api/settings/profile
type UpdateProfileRequest struct {
	Name      string  `json:"name" binding:"required"`
	AvatarURL *string `json:"avatar_url,omitempty" binding:"omitempty,url"`
}

// ChangePasswordRequest used for PUT /api/settings/password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
