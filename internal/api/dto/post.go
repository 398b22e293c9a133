package dto

import "time"

type CreatePostDTO struct {
	Platform    string     `json:"platform" validate:"required"`
	Content     string     `json:"content" validate:"required,max=5000"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

type PostDTO struct {
	ID              uint64          `json:"id"`
	Platform        string          `json:"platform"`
	Content         string          `json:"content"`
	Status          string          `json:"status"`
	ScheduledAt     *time.Time      `json:"scheduled_at,omitempty"`
	PostedAt        *time.Time      `json:"posted_at,omitempty"`
	EngagementStats map[string]int  `json:"engagement_stats,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
