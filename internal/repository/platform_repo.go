package repository

import (
	"Pulseboard/internal/model"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type PlatformRepo interface {
	GetPlatformByName(ctx context.Context, name string) (*model.Platform, error)
	GetPlatformById(ctx context.Context, id uint64) (*model.Platform, error)
	ListPlatforms(ctx context.Context) ([]*model.Platform, error)
	CreatePlatform(ctx context.Context, platform *model.Platform) error
}

type PlatformRepoImpl struct {
	db *gorm.DB
}

func NewPlatformRepo(db *gorm.DB) PlatformRepo {
	return &PlatformRepoImpl{db: db}
}

// GetPlatformByName 按名称查找平台，统一忽略大小写
func (s *PlatformRepoImpl) GetPlatformByName(ctx context.Context, name string) (*model.Platform, error) {
	platform := &model.Platform{}
	result := s.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		First(&platform)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return platform, nil
}

func (s *PlatformRepoImpl) GetPlatformById(ctx context.Context, id uint64) (*model.Platform, error) {
	platform := &model.Platform{}
	result := s.db.WithContext(ctx).First(platform, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return platform, nil
}

func (s *PlatformRepoImpl) ListPlatforms(ctx context.Context) ([]*model.Platform, error) {
	platforms := make([]*model.Platform, 0)
	result := s.db.WithContext(ctx).
		Order("id ASC").
		Find(&platforms)
	if result.Error != nil {
		return nil, result.Error
	}
	return platforms, nil
}

func (s *PlatformRepoImpl) CreatePlatform(ctx context.Context, platform *model.Platform) error {
	return s.db.WithContext(ctx).Create(platform).Error
}
