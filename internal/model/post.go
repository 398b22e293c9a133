package model

import "time"

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPublished = "published"
)

type Post struct {
	ID              uint64 `gorm:"primaryKey"`
	UserID          uint64 `gorm:"not null;index:idx_post_user"`
	PlatformID      uint64 `gorm:"not null"`
	Content         string `gorm:"type:text;not null"`
	Status          string `gorm:"type:varchar(20);not null;default:'draft'"`
	ScheduledAt     *time.Time
	PostedAt        *time.Time
	EngagementStats []byte `gorm:"type:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Post) TableName() string {
	return "posts"
}
