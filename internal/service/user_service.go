package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/redis"
	"Pulseboard/internal/pkg/security"
	"Pulseboard/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, dto *dto.RegisterDTO) error
	Login(ctx context.Context, dto *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	UpdateUsername(ctx context.Context, id uint64, dto *dto.ChangeUsernameDTO) error
	ChangePassword(ctx context.Context, id uint64, dto *dto.ChangePasswordDTO) error
	CountUsers(ctx context.Context) (int64, error)
}

type UserServiceImpl struct {
	userRepo     repository.UserRepo
	analyticsSvc AnalyticsService
}

func NewUserService(userRepo repository.UserRepo, analyticsSvc AnalyticsService) UserService {
	return &UserServiceImpl{
		userRepo:     userRepo,
		analyticsSvc: analyticsSvc,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	existing, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return err
	}
	if existing == nil {
		existing, err = s.userRepo.GetUserByEmail(ctx, regDTO.Email)
		if err != nil {
			return err
		}
	}
	if existing != nil {
		return ErrUserExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username: regDTO.Username,
		Email:    regDTO.Email,
		Password: &passwordHash,
		Role:     consts.RoleUser,
	}

	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		return err
	}

	// 注册后初始化默认平台、绑定关系与首条快照；失败不阻断注册
	if err = s.analyticsSvc.SeedNewUser(ctx, user.ID); err != nil {
		log.WarnContext(ctx, "failed to seed analytics for new user", "user_id", user.ID, "err", err)
	}

	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, credDTO.Username)
	if err != nil {
		return "", err
	}
	if user == nil || user.IsDelete {
		return "", ErrUserNotFound
	}
	if user.Password == nil {
		return "", ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(credDTO.Password, *user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID, []string{user.Role})
	if err != nil {
		return "", err
	}
	return token, nil
}

func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.TokenDenyKey+signature, true, security.JWTExpirationTime)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	userDTO.UserID = user.ID
	createdAt := user.CreatedAt
	userDTO.CreatedAt = &createdAt
	return userDTO, nil
}

func (s *UserServiceImpl) UpdateUsername(ctx context.Context, id uint64, changeDTO *dto.ChangeUsernameDTO) error {
	existing, err := s.userRepo.GetUserByUsername(ctx, changeDTO.Username)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != id {
		return ErrUsernameExist
	}
	return s.userRepo.UpdateUsername(ctx, id, changeDTO.Username)
}

func (s *UserServiceImpl) ChangePassword(ctx context.Context, id uint64, changeDTO *dto.ChangePasswordDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Password == nil {
		return ErrPasswordIncorrect
	}
	if err = security.CheckPasswordHash(changeDTO.OldPassword, *user.Password); err != nil {
		return ErrPasswordIncorrect
	}

	passwordHash, err := security.HashPassword(changeDTO.NewPassword)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, id, passwordHash)
}

// CountUsers 公开的注册用户数，短暂缓存避免高频 COUNT
func (s *UserServiceImpl) CountUsers(ctx context.Context) (int64, error) {
	value, err := redis.GetValue(ctx, consts.UserCountKey)
	if err == nil && value != "" {
		if cached, parseErr := strconv.ParseInt(value, 10, 64); parseErr == nil {
			return cached, nil
		}
	}

	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return 0, err
	}

	_ = redis.SetWithExpiration(ctx, consts.UserCountKey, count, time.Minute*5)
	return count, nil
}
