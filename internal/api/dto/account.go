package dto

import "time"

// ConnectAccountDTO 绑定社媒账号
type ConnectAccountDTO struct {
	AccountName *string `json:"account_name,omitempty" validate:"omitempty,max=100"`
}

// SocialAccountDTO 用户已绑定的平台账号
type SocialAccountDTO struct {
	PlatformID   uint64    `json:"platform_id"`
	PlatformName string    `json:"platform_name"`
	AccountName  *string   `json:"account_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// PlatformDTO 平台信息，Connected 仅在携带身份请求时返回
type PlatformDTO struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Connected *bool  `json:"connected,omitempty"`
}

// CreatePlatformDTO 管理端新增平台
type CreatePlatformDTO struct {
	Name      string  `json:"name" validate:"required,min=2,max=50"`
	ApiKey    *string `json:"api_key,omitempty"`
	ApiSecret *string `json:"api_secret,omitempty"`
}
