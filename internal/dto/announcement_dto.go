package dto

import (
	"time"

	"agencyhub/internal/models"
)

// CreateAnnouncementRequest used for POST /api/announcements
type CreateAnnouncementRequest struct {
	Title        string   `json:"title" binding:"required,min=2"`
	Body         string   `json:"body" binding:"required"`
	IsPinned     bool     `json:"is_pinned"`
	IsGlobal     *bool    `json:"is_global,omitempty"` // defaults to true
	TaggedModels []string `json:"tagged_models,omitempty"`
}

func (d CreateAnnouncementRequest) ToModel(createdByID string) models.Announcement {
	return models.Announcement{
		Title:       d.Title,
		Body:        d.Body,
		IsPinned:    d.IsPinned,
		IsGlobal:    d.IsGlobal == nil || *d.IsGlobal,
		CreatedByID: createdByID,
	}
}

// UpdateAnnouncementRequest used for PUT /api/announcements/:id
type UpdateAnnouncementRequest struct {
	Title        string   `json:"title" binding:"required,min=2"`
	Body         string   `json:"body" binding:"required"`
	IsPinned     bool     `json:"is_pinned"`
	IsGlobal     *bool    `json:"is_global,omitempty"`
	TaggedModels []string `json:"tagged_models,omitempty"`
}

func (d UpdateAnnouncementRequest) ApplyTo(m *models.Announcement) {
	m.Title = d.Title
	m.Body = d.Body
	m.IsPinned = d.IsPinned
	if d.IsGlobal != nil {
		m.IsGlobal = *d.IsGlobal
	}
}

// AnnouncementResponse DTO for responses
type AnnouncementResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsPinned  bool      `json:"is_pinned"`
	IsGlobal  bool      `json:"is_global"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromAnnouncement(m models.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:        m.ID,
		Title:     m.Title,
		Body:      m.Body,
		IsPinned:  m.IsPinned,
		IsGlobal:  m.IsGlobal,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
