package model

import "time"

// AnalyticsSnapshot 某一时刻的用户+平台分析数据快照，只追加不修改
// TimeSeriesData / TrafficSources 为原样存储的 JSON，读取时按坏数据兜底解析
type AnalyticsSnapshot struct {
	ID              uint64 `gorm:"primaryKey"`
	UserID          uint64 `gorm:"not null;index:idx_snapshot_user"`
	PlatformID      uint64 `gorm:"not null;index:idx_snapshot_user_platform,columns:user_id,platform_id"`
	SubscriberCount int    `gorm:"type:int;not null;default:0"`
	ViewCount       int    `gorm:"type:int;not null;default:0"`
	VideoCount      int    `gorm:"type:int;not null;default:0"`
	TimeSeriesData  []byte `gorm:"type:json"`
	TrafficSources  []byte `gorm:"type:json"`
	CreatedAt       time.Time
}

func (AnalyticsSnapshot) TableName() string {
	return "analytics_snapshots"
}
