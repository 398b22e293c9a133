package model

import "time"

// Platform 外部社媒平台（YouTube / Twitter / Instagram 等）
type Platform struct {
	ID        uint64  `gorm:"primaryKey"`
	Name      string  `gorm:"type:varchar(50);not null;uniqueIndex:idx_platform_name"`
	ApiKey    *string `gorm:"type:varchar(255)"`
	ApiSecret *string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Platform) TableName() string {
	return "platforms"
}
