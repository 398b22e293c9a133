package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/mongo"
	"Pulseboard/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"
)

type AccountService interface {
	ListPlatforms(ctx context.Context, userID uint64) ([]*dto.PlatformDTO, error)
	CreatePlatform(ctx context.Context, dto *dto.CreatePlatformDTO) error
	ConnectAccount(ctx context.Context, userID uint64, platformName string, dto *dto.ConnectAccountDTO) error
	DisconnectAccount(ctx context.Context, userID uint64, platformName string) error
	ListAccounts(ctx context.Context, userID uint64) ([]*dto.SocialAccountDTO, error)
}

type AccountServiceImpl struct {
	platformRepo repository.PlatformRepo
	accountRepo  repository.SocialAccountRepo
	notifRepo    mongo.NotificationRepo
}

func NewAccountService(
	platformRepo repository.PlatformRepo,
	accountRepo repository.SocialAccountRepo,
	notifRepo mongo.NotificationRepo,
) AccountService {
	return &AccountServiceImpl{
		platformRepo: platformRepo,
		accountRepo:  accountRepo,
		notifRepo:    notifRepo,
	}
}

// ListPlatforms 平台列表为公开数据；请求携带有效身份时附带该用户的绑定状态
func (s *AccountServiceImpl) ListPlatforms(ctx context.Context, userID uint64) ([]*dto.PlatformDTO, error) {
	platforms, err := s.platformRepo.ListPlatforms(ctx)
	if err != nil {
		return nil, err
	}

	connected := make(map[uint64]bool)
	if userID != 0 {
		accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, account := range accounts {
			connected[account.PlatformID] = true
		}
	}

	list := make([]*dto.PlatformDTO, 0, len(platforms))
	for _, p := range platforms {
		item := &dto.PlatformDTO{
			ID:   p.ID,
			Name: p.Name,
		}
		if userID != 0 {
			isConnected := connected[p.ID]
			item.Connected = &isConnected
		}
		list = append(list, item)
	}
	return list, nil
}

func (s *AccountServiceImpl) CreatePlatform(ctx context.Context, createDTO *dto.CreatePlatformDTO) error {
	existing, err := s.platformRepo.GetPlatformByName(ctx, createDTO.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrPlatformExist
	}

	platform := &model.Platform{
		Name:      createDTO.Name,
		ApiKey:    createDTO.ApiKey,
		ApiSecret: createDTO.ApiSecret,
	}
	return s.platformRepo.CreatePlatform(ctx, platform)
}

func (s *AccountServiceImpl) ConnectAccount(ctx context.Context, userID uint64, platformName string, connectDTO *dto.ConnectAccountDTO) error {
	if userID == 0 {
		return ErrUnauthenticated
	}

	platform, err := s.platformRepo.GetPlatformByName(ctx, platformName)
	if err != nil {
		return err
	}
	if platform == nil {
		return ErrPlatformNotConfigured
	}

	existing, err := s.accountRepo.GetAccount(ctx, userID, platform.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrAccountAlreadyLinked
	}

	account := &model.SocialAccount{
		UserID:      userID,
		PlatformID:  platform.ID,
		AccountName: connectDTO.AccountName,
	}
	if err = s.accountRepo.CreateAccount(ctx, account); err != nil {
		return err
	}

	// 绑定成功后写入通知，失败只记日志
	if s.notifRepo != nil {
		notification := &mongo.NotificationModel{
			ReceiverID: userID,
			Type:       mongo.NotificationTypeAccountConnected,
			Message:    fmt.Sprintf("Connected your %s account", platform.Name),
			Payload:    map[string]any{"platform": platform.Name},
			IsRead:     false,
			CreatedAt:  time.Now(),
		}
		if err = s.notifRepo.CreateNotification(ctx, notification); err != nil {
			log.WarnContext(ctx, "failed to create connect notification", "user_id", userID, "err", err)
		}
	}

	return nil
}

func (s *AccountServiceImpl) DisconnectAccount(ctx context.Context, userID uint64, platformName string) error {
	if userID == 0 {
		return ErrUnauthenticated
	}

	platform, err := s.platformRepo.GetPlatformByName(ctx, platformName)
	if err != nil {
		return err
	}
	if platform == nil {
		return ErrPlatformNotConfigured
	}

	affected, err := s.accountRepo.DeleteAccount(ctx, userID, platform.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAccountNotConnected
	}
	return nil
}

func (s *AccountServiceImpl) ListAccounts(ctx context.Context, userID uint64) ([]*dto.SocialAccountDTO, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.SocialAccountDTO, 0, len(accounts))
	for _, account := range accounts {
		list = append(list, &dto.SocialAccountDTO{
			PlatformID:   account.PlatformID,
			PlatformName: account.Platform.Name,
			AccountName:  account.AccountName,
			CreatedAt:    account.CreatedAt,
		})
	}
	return list, nil
}
