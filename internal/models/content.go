package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ContentTypeReel   = "REEL"
	ContentTypeScript = "SCRIPT"
)

// Reel categories mirror the editorial buckets admins file inspiration under.
const (
	ReelCategoryLifestyle      = "LIFESTYLE"
	ReelCategoryHighConverting = "HIGH_CONVERTING"
	ReelCategoryTrending       = "TRENDING"
)

const (
	ScriptCategoryIceBreaker   = "ICE_BREAKER"
	ScriptCategoryUpsell       = "UPSELL"
	ScriptCategoryRetention    = "RETENTION"
	ScriptCategoryReEngagement = "RE_ENGAGEMENT"
)

// Content is a publishable inspiration item, either a reel or a script.
// Reel-only and script-only fields are nullable; Type discriminates which
// set is meaningful.
type Content struct {
	ID          string  `gorm:"primaryKey;type:uuid" json:"id"`
	Type        string  `gorm:"not null;index" json:"type"` // REEL or SCRIPT
	Title       string  `gorm:"not null" json:"title"`
	Description *string `json:"description,omitempty"`

	// Reel fields
	VideoURL     *string `json:"video_url,omitempty"`
	AudioURL     *string `json:"audio_url,omitempty"`
	AudioLinkURL *string `json:"audio_link_url,omitempty"`
	Caption      *string `json:"caption,omitempty"`
	OverlayText  *string `json:"overlay_text,omitempty"`
	HookText     *string `json:"hook_text,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
	ReelCategory *string `json:"reel_category,omitempty"`

	// Script fields
	ScriptContent  *string `json:"script_content,omitempty"`
	ScriptCategory *string `json:"script_category,omitempty"`

	IsGlobal    bool      `gorm:"default:true;not null" json:"is_global"`
	IsActive    bool      `gorm:"default:true;not null" json:"is_active"`
	CreatedByID string    `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Associations
	CreatedBy   *User               `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Assignments []ContentAssignment `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"assignments,omitempty"`
}

func (c *Content) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

func (Content) TableName() string {
	return "content"
}

// ContentAssignment tags a non-global content item to a specific model user.
type ContentAssignment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ContentID string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_content_model" json:"content_id"`
	ModelID   string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_content_model" json:"model_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContentAssignment) TableName() string {
	return "content_assignments"
}
