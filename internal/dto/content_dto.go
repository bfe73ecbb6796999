package dto

import (
	"time"

	"agencyhub/internal/models"
)

// CreateReelRequest used for POST /api/content/reels
type CreateReelRequest struct {
	Title          string   `json:"title" binding:"required,min=2"`
	Description    *string  `json:"description,omitempty"`
	VideoURL       *string  `json:"video_url,omitempty"`
	AudioURL       *string  `json:"audio_url,omitempty"`
	AudioLinkURL   *string  `json:"audio_link_url,omitempty"`
	Caption        *string  `json:"caption,omitempty"`
	OverlayText    *string  `json:"overlay_text,omitempty"`
	HookText       *string  `json:"hook_text,omitempty"`
	Instructions   *string  `json:"instructions,omitempty"`
	ReelCategory   *string  `json:"reel_category,omitempty"`
	IsGlobal       *bool    `json:"is_global,omitempty"` // defaults to true
	AssignedModels []string `json:"assigned_models,omitempty"`
}

func (d CreateReelRequest) ToModel(createdByID string) models.Content {
	return models.Content{
		Type:         models.ContentTypeReel,
		Title:        d.Title,
		Description:  d.Description,
		VideoURL:     d.VideoURL,
		AudioURL:     d.AudioURL,
		AudioLinkURL: d.AudioLinkURL,
		Caption:      d.Caption,
		OverlayText:  d.OverlayText,
		HookText:     d.HookText,
		Instructions: d.Instructions,
		ReelCategory: d.ReelCategory,
		IsGlobal:     d.IsGlobal == nil || *d.IsGlobal,
		IsActive:     true,
		CreatedByID:  createdByID,
	}
}

// CreateScriptRequest used for POST /api/content/scripts
type CreateScriptRequest struct {
	Title          string   `json:"title" binding:"required,min=2"`
	Description    *string  `json:"description,omitempty"`
	ScriptContent  string   `json:"script_content" binding:"required"`
	ScriptCategory *string  `json:"script_category,omitempty"`
	IsGlobal       *bool    `json:"is_global,omitempty"`
	AssignedModels []string `json:"assigned_models,omitempty"`
}

func (d CreateScriptRequest) ToModel(createdByID string) models.Content {
	return models.Content{
		Type:           models.ContentTypeScript,
		Title:          d.Title,
		Description:    d.Description,
		ScriptContent:  &d.ScriptContent,
		ScriptCategory: d.ScriptCategory,
		IsGlobal:       d.IsGlobal == nil || *d.IsGlobal,
		IsActive:       true,
		CreatedByID:    createdByID,
	}
}

// UpdateReelRequest used for PUT /api/content/reels/:id
type UpdateReelRequest struct {
	Title          string   `json:"title" binding:"required,min=2"`
	Description    *string  `json:"description,omitempty"`
	VideoURL       *string  `json:"video_url,omitempty"`
	AudioURL       *string  `json:"audio_url,omitempty"`
	AudioLinkURL   *string  `json:"audio_link_url,omitempty"`
	Caption        *string  `json:"caption,omitempty"`
	OverlayText    *string  `json:"overlay_text,omitempty"`
	HookText       *string  `json:"hook_text,omitempty"`
	Instructions   *string  `json:"instructions,omitempty"`
	ReelCategory   *string  `json:"reel_category,omitempty"`
	IsGlobal       *bool    `json:"is_global,omitempty"`
	AssignedModels []string `json:"assigned_models,omitempty"`
}

func (d UpdateReelRequest) ApplyTo(m *models.Content) {
	m.Title = d.Title
	m.Description = d.Description
	m.VideoURL = d.VideoURL
	m.AudioURL = d.AudioURL
	m.AudioLinkURL = d.AudioLinkURL
	m.Caption = d.Caption
	m.OverlayText = d.OverlayText
	m.HookText = d.HookText
	m.Instructions = d.Instructions
	m.ReelCategory = d.ReelCategory
	if d.IsGlobal != nil {
		m.IsGlobal = *d.IsGlobal
	}
}

// UpdateScriptRequest used for PUT /api/content/scripts/:id
type UpdateScriptRequest struct {
	Title          string   `json:"title" binding:"required,min=2"`
	Description    *string  `json:"description,omitempty"`
	ScriptContent  string   `json:"script_content" binding:"required"`
	ScriptCategory *string  `json:"script_category,omitempty"`
	IsGlobal       *bool    `json:"is_global,omitempty"`
	AssignedModels []string `json:"assigned_models,omitempty"`
}

func (d UpdateScriptRequest) ApplyTo(m *models.Content) {
	m.Title = d.Title
	m.Description = d.Description
	m.ScriptContent = &d.ScriptContent
	m.ScriptCategory = d.ScriptCategory
	if d.IsGlobal != nil {
		m.IsGlobal = *d.IsGlobal
	}
}

// ContentResponse DTO for responses
type ContentResponse struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Description    *string   `json:"description,omitempty"`
	VideoURL       *string   `json:"video_url,omitempty"`
	AudioURL       *string   `json:"audio_url,omitempty"`
	AudioLinkURL   *string   `json:"audio_link_url,omitempty"`
	Caption        *string   `json:"caption,omitempty"`
	OverlayText    *string   `json:"overlay_text,omitempty"`
	HookText       *string   `json:"hook_text,omitempty"`
	Instructions   *string   `json:"instructions,omitempty"`
	ReelCategory   *string   `json:"reel_category,omitempty"`
	ScriptContent  *string   `json:"script_content,omitempty"`
	ScriptCategory *string   `json:"script_category,omitempty"`
	IsGlobal       bool      `json:"is_global"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromContent(m models.Content) ContentResponse {
	return ContentResponse{
		ID:             m.ID,
		Type:           m.Type,
		Title:          m.Title,
		Description:    m.Description,
		VideoURL:       m.VideoURL,
		AudioURL:       m.AudioURL,
		AudioLinkURL:   m.AudioLinkURL,
		Caption:        m.Caption,
		OverlayText:    m.OverlayText,
		HookText:       m.HookText,
		Instructions:   m.Instructions,
		ReelCategory:   m.ReelCategory,
		ScriptContent:  m.ScriptContent,
		ScriptCategory: m.ScriptCategory,
		IsGlobal:       m.IsGlobal,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
