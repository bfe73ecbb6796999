package dto

import (
	"time"

	"agencyhub/internal/models"
)

// UpdateGuidanceRequest used for PUT /api/guidance
type UpdateGuidanceRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// GuidanceResponse DTO for responses
type GuidanceResponse struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromGuidancePage(p models.GuidancePage) GuidanceResponse {
	return GuidanceResponse{
		Slug:      p.Slug,
		Title:     p.Title,
		Content:   p.Content,
		UpdatedAt: p.UpdatedAt,
	}
}
