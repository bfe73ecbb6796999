package dto

import (
	"time"

	"agencyhub/internal/models"
)

// CreatePoolRequest used for POST /api/pools. Date format: 2006-01-02.
type CreatePoolRequest struct {
	Date  string `json:"date" binding:"required,datetime=2006-01-02"`
	Title string `json:"title" binding:"required"`
}

// UpdatePoolRequest used for PUT /api/pools/:id
type UpdatePoolRequest struct {
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Title    string `json:"title" binding:"required"`
	IsActive bool   `json:"is_active"`
}

// AddPoolVideoRequest used for POST /api/pools/:id/videos
type AddPoolVideoRequest struct {
	Title    string  `json:"title" binding:"required"`
	VideoURL string  `json:"video_url" binding:"required"`
	SoundURL *string `json:"sound_url,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// UpdatePoolVideoRequest used for PUT /api/pools/videos/:video_id
type UpdatePoolVideoRequest struct {
	Title    string  `json:"title" binding:"required"`
	VideoURL string  `json:"video_url" binding:"required"`
	SoundURL *string `json:"sound_url,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// ReorderPoolVideosRequest used for PUT /api/pools/:id/videos/reorder
type ReorderPoolVideosRequest struct {
	VideoIDs []string `json:"video_ids" binding:"required"`
}

// PoolVideoResponse DTO for responses
type PoolVideoResponse struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	VideoURL string  `json:"video_url"`
	SoundURL *string `json:"sound_url,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Order    int     `json:"order"`
}

// PoolResponse DTO for responses
type PoolResponse struct {
	ID       string              `json:"id"`
	Date     string              `json:"date"`
	Title    string              `json:"title"`
	IsActive bool                `json:"is_active"`
	Videos   []PoolVideoResponse `json:"videos"`
}

func FromPool(p models.DailyPool) PoolResponse {
	videos := make([]PoolVideoResponse, 0, len(p.Videos))
	for _, v := range p.Videos {
		videos = append(videos, PoolVideoResponse{
			ID:       v.ID,
			Title:    v.Title,
			VideoURL: v.VideoURL,
			SoundURL: v.SoundURL,
			Notes:    v.Notes,
			Order:    v.Order,
		})
	}
	return PoolResponse{
		ID:       p.ID,
		Date:     p.Date.Format(time.DateOnly),
		Title:    p.Title,
		IsActive: p.IsActive,
		Videos:   videos,
	}
}
