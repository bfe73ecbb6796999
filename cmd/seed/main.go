package main

import (
	"fmt"
	"log/slog"
	"os"

	"gorm.io/gorm"

	"agencyhub/database"
	"agencyhub/internal/config"
	"agencyhub/internal/middleware/auth"
	"agencyhub/internal/models"
)

// Seeds an admin account, three sample model accounts, and a handful of
// global reels and scripts. Safe to run repeatedly: users are matched by
// email, content by title.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	admin, err := seedUser(db, "Admin", "admin@agencyhub.com", "admin123", models.RoleAdmin)
	if err != nil {
		logger.Error("seeding admin failed", "error", err)
		os.Exit(1)
	}
	logger.Info("admin user ready", "email", admin.Email)

	modelAccounts := []struct {
		name  string
		email string
	}{
		{"Maria", "maria@agencyhub.com"},
		{"Katherine", "katherine@agencyhub.com"},
		{"Sophia", "sophia@agencyhub.com"},
	}
	for _, m := range modelAccounts {
		user, err := seedUser(db, m.name, m.email, "model123", models.RoleModel)
		if err != nil {
			logger.Error("seeding model failed", "email", m.email, "error", err)
			os.Exit(1)
		}
		logger.Info("model user ready", "email", user.Email)
	}

	if err := seedContent(db, admin.ID); err != nil {
		logger.Error("seeding content failed", "error", err)
		os.Exit(1)
	}
	logger.Info("sample content ready")
}

func seedUser(db *gorm.DB, name, email, password, role string) (*models.User, error) {
	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return &existing, nil
	}

	hashed, err := auth.Hashpassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     role,
		Status:   models.StatusActive,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func seedContent(db *gorm.DB, adminID string) error {
	str := func(s string) *string { return &s }

	reels := []models.Content{
		{
			Type:         models.ContentTypeReel,
			Title:        "Morning Routine Reel",
			Description:  str("Show your authentic morning routine"),
			Caption:      str("My morning routine that keeps me energized ✨"),
			OverlayText:  str("POV: My morning routine"),
			HookText:     str("Start with a close-up of your face waking up"),
			ReelCategory: str("LIFESTYLE"),
			Instructions: str("Film in natural lighting, keep it under 30 seconds"),
		},
		{
			Type:         models.ContentTypeReel,
			Title:        "Get Ready With Me",
			Description:  str("GRWM content for engagement"),
			Caption:      str("Get ready with me for a night out 💄"),
			OverlayText:  str("GRWM"),
			HookText:     str("Start with 'I have somewhere to be...'"),
			ReelCategory: str("HIGH_CONVERTING"),
			Instructions: str("Use trending audio, show outfit selection"),
		},
	}

	scripts := []models.Content{
		{
			Type:           models.ContentTypeScript,
			Title:          "First Message Ice Breaker",
			ScriptContent:  str("Hey! I noticed you just subscribed 💕 Thanks for being here! What made you decide to join?"),
			ScriptCategory: str("ICE_BREAKER"),
		},
		{
			Type:           models.ContentTypeScript,
			Title:          "Retention Message",
			ScriptContent:  str("Hey, I haven't seen you around lately! Just wanted to check in and let you know I miss chatting with you 💋"),
			ScriptCategory: str("RETENTION"),
		},
		{
			Type:           models.ContentTypeScript,
			Title:          "Re-engagement Script",
			ScriptContent:  str("It's been a while! I've been posting some amazing new content... would love to see you back 💕"),
			ScriptCategory: str("RE_ENGAGEMENT"),
		},
	}

	for _, content := range append(reels, scripts...) {
		var existing models.Content
		if err := db.Where("title = ?", content.Title).First(&existing).Error; err == nil {
			continue
		}

		content.IsGlobal = true
		content.IsActive = true
		content.CreatedByID = adminID
		if err := db.Create(&content).Error; err != nil {
			return err
		}
	}
	return nil
}
