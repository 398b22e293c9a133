package repository

import (
	"Pulseboard/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type AnalyticsRepo interface {
	GetLatestSnapshot(ctx context.Context, userID, platformID uint64) (*model.AnalyticsSnapshot, error)
	GetRecentSnapshots(ctx context.Context, userID uint64, limit int) ([]*model.AnalyticsSnapshot, error)
	CreateSnapshot(ctx context.Context, snapshot *model.AnalyticsSnapshot) error
}

type AnalyticsRepoImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepo(db *gorm.DB) AnalyticsRepo {
	return &AnalyticsRepoImpl{db: db}
}

// GetLatestSnapshot 取用户在指定平台的最新一条快照
func (s *AnalyticsRepoImpl) GetLatestSnapshot(ctx context.Context, userID, platformID uint64) (*model.AnalyticsSnapshot, error) {
	snapshot := &model.AnalyticsSnapshot{}
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND platform_id = ?", userID, platformID).
		Order("created_at DESC").
		First(&snapshot)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return snapshot, nil
}

// GetRecentSnapshots 取用户跨平台的最近 N 条快照，时间倒序
func (s *AnalyticsRepoImpl) GetRecentSnapshots(ctx context.Context, userID uint64, limit int) ([]*model.AnalyticsSnapshot, error) {
	snapshots := make([]*model.AnalyticsSnapshot, 0, limit)
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&snapshots)
	if result.Error != nil {
		return nil, result.Error
	}
	return snapshots, nil
}

// CreateSnapshot 快照只追加，不存在更新语义
func (s *AnalyticsRepoImpl) CreateSnapshot(ctx context.Context, snapshot *model.AnalyticsSnapshot) error {
	return s.db.WithContext(ctx).Create(snapshot).Error
}
