package service

import (
	"context"

	"agencyhub/internal/models"
	"agencyhub/internal/repository"
)

const guidanceDefaultSlug = "new-creator"

const guidanceDefaultContent = `# Welcome to the Team! 🎉

We're excited to have you on board! This guide will help you get started.

## Getting Started

1. **Set up your profile** - Upload a profile picture and complete your information
2. **Check your reels** - Review the content assigned to you
3. **Read the scripts** - Familiarize yourself with our messaging

## Best Practices

- Post consistently at optimal times
- Engage with your audience in comments
- Use trending sounds when appropriate
- Follow the instructions provided with each reel

## Need Help?

Reach out to your manager if you have any questions!
`

// GuidanceService serves the onboarding guidance page, creating the default
// page on first read.
type GuidanceService interface {
	Get(ctx context.Context) (*models.GuidancePage, error)
	Update(ctx context.Context, title, content string) error
}

type guidanceService struct {
	repo repository.GuidanceRepository
}

func NewGuidanceService(repo repository.GuidanceRepository) GuidanceService {
	return &guidanceService{repo: repo}
}

func (s *guidanceService) Get(ctx context.Context) (*models.GuidancePage, error) {
	page, err := s.repo.FindBySlug(ctx, guidanceDefaultSlug)
	if err == nil {
		return page, nil
	}

	page = &models.GuidancePage{
		Slug:    guidanceDefaultSlug,
		Title:   "New Creator Guidance",
		Content: guidanceDefaultContent,
	}
	if err := s.repo.Create(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *guidanceService) Update(ctx context.Context, title, content string) error {
	page, err := s.Get(ctx)
	if err != nil {
		return err
	}

	page.Title = title
	page.Content = content
	return s.repo.Update(ctx, page)
}
