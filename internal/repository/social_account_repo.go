package repository

import (
	"Pulseboard/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type SocialAccountRepo interface {
	GetAccount(ctx context.Context, userID, platformID uint64) (*model.SocialAccount, error)
	ListAccountsByUser(ctx context.Context, userID uint64) ([]*model.SocialAccount, error)
	ListAllAccounts(ctx context.Context) ([]*model.SocialAccount, error)
	CreateAccount(ctx context.Context, account *model.SocialAccount) error
	DeleteAccount(ctx context.Context, userID, platformID uint64) (int64, error)
}

type SocialAccountRepoImpl struct {
	db *gorm.DB
}

func NewSocialAccountRepo(db *gorm.DB) SocialAccountRepo {
	return &SocialAccountRepoImpl{db: db}
}

func (s *SocialAccountRepoImpl) GetAccount(ctx context.Context, userID, platformID uint64) (*model.SocialAccount, error) {
	account := &model.SocialAccount{}
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND platform_id = ?", userID, platformID).
		First(&account)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return account, nil
}

func (s *SocialAccountRepoImpl) ListAccountsByUser(ctx context.Context, userID uint64) ([]*model.SocialAccount, error) {
	accounts := make([]*model.SocialAccount, 0)
	result := s.db.WithContext(ctx).
		Preload("Platform").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}

// ListAllAccounts 供每日快照任务遍历所有绑定关系
func (s *SocialAccountRepoImpl) ListAllAccounts(ctx context.Context) ([]*model.SocialAccount, error) {
	accounts := make([]*model.SocialAccount, 0)
	result := s.db.WithContext(ctx).
		Preload("Platform").
		Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}
	return accounts, nil
}

func (s *SocialAccountRepoImpl) CreateAccount(ctx context.Context, account *model.SocialAccount) error {
	return s.db.WithContext(ctx).Create(account).Error
}

func (s *SocialAccountRepoImpl) DeleteAccount(ctx context.Context, userID, platformID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND platform_id = ?", userID, platformID).
		Delete(&model.SocialAccount{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
