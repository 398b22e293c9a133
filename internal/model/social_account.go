package model

import "time"

// SocialAccount 用户与平台的绑定关系
type SocialAccount struct {
	ID          uint64  `gorm:"primaryKey"`
	UserID      uint64  `gorm:"not null;uniqueIndex:idx_user_platform,columns:user_id,platform_id"`
	PlatformID  uint64  `gorm:"not null;uniqueIndex:idx_user_platform,columns:user_id,platform_id"`
	AccountName *string `gorm:"type:varchar(100)"`
	AccessToken *string `gorm:"type:varchar(255)"`
	CreatedAt   time.Time

	Platform Platform `gorm:"foreignKey:PlatformID;references:ID"`
}

func (SocialAccount) TableName() string {
	return "social_accounts"
}
