package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  []*model.User
	nextID uint64
}

func (s *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	s.nextID++
	user.ID = s.nextID
	s.users = append(s.users, user)
	return nil
}

func (s *fakeUserRepo) UpdateUsername(_ context.Context, id uint64, username string) error {
	for _, u := range s.users {
		if u.ID == id {
			u.Username = username
		}
	}
	return nil
}

func (s *fakeUserRepo) UpdatePassword(_ context.Context, id uint64, passwordHash string) error {
	for _, u := range s.users {
		if u.ID == id {
			u.Password = &passwordHash
		}
	}
	return nil
}

func (s *fakeUserRepo) CountUsers(_ context.Context) (int64, error) {
	return int64(len(s.users)), nil
}

// seededAnalytics 记录被初始化过的用户
type seededAnalytics struct {
	AnalyticsService
	seeded []uint64
}

func (s *seededAnalytics) SeedNewUser(_ context.Context, userID uint64) error {
	s.seeded = append(s.seeded, userID)
	return nil
}

func newUserTestService() (UserService, *fakeUserRepo, *seededAnalytics) {
	userRepo := &fakeUserRepo{}
	analytics := &seededAnalytics{}
	return NewUserService(userRepo, analytics), userRepo, analytics
}

func TestRegisterCreatesUserAndSeeds(t *testing.T) {
	svc, repo, analytics := newUserTestService()

	err := svc.Register(context.Background(), &dto.RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret-pass",
	})
	require.NoError(t, err)

	user, err := repo.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user", user.Role)

	// 密码必须以哈希形式落库
	require.NotNil(t, user.Password)
	assert.True(t, strings.HasPrefix(*user.Password, "$2"))

	assert.Equal(t, []uint64{user.ID}, analytics.seeded)
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	svc, _, _ := newUserTestService()

	reg := &dto.RegisterDTO{Username: "bob", Email: "bob@example.com", Password: "secret-pass"}
	require.NoError(t, svc.Register(context.Background(), reg))

	err := svc.Register(context.Background(), &dto.RegisterDTO{
		Username: "bob", Email: "other@example.com", Password: "secret-pass",
	})
	assert.ErrorIs(t, err, ErrUserExist)

	err = svc.Register(context.Background(), &dto.RegisterDTO{
		Username: "bob2", Email: "bob@example.com", Password: "secret-pass",
	})
	assert.ErrorIs(t, err, ErrUserExist)
}

func TestLoginReturnsTokenOnValidCredentials(t *testing.T) {
	svc, _, _ := newUserTestService()

	require.NoError(t, svc.Register(context.Background(), &dto.RegisterDTO{
		Username: "carol", Email: "carol@example.com", Password: "secret-pass",
	}))

	token, err := svc.Login(context.Background(), &dto.CredentialDTO{
		Username: "carol", Password: "secret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login(context.Background(), &dto.CredentialDTO{
		Username: "carol", Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	_, err = svc.Login(context.Background(), &dto.CredentialDTO{
		Username: "nobody", Password: "secret-pass",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUsernameRejectsTakenName(t *testing.T) {
	svc, repo, _ := newUserTestService()

	require.NoError(t, svc.Register(context.Background(), &dto.RegisterDTO{
		Username: "dave", Email: "dave@example.com", Password: "secret-pass",
	}))
	require.NoError(t, svc.Register(context.Background(), &dto.RegisterDTO{
		Username: "erin", Email: "erin@example.com", Password: "secret-pass",
	}))

	dave, err := repo.GetUserByUsername(context.Background(), "dave")
	require.NoError(t, err)

	err = svc.UpdateUsername(context.Background(), dave.ID, &dto.ChangeUsernameDTO{Username: "erin"})
	assert.ErrorIs(t, err, ErrUsernameExist)

	// 改成自己的名字不算冲突
	err = svc.UpdateUsername(context.Background(), dave.ID, &dto.ChangeUsernameDTO{Username: "dave"})
	assert.NoError(t, err)
}

func TestChangePasswordVerifiesOldPassword(t *testing.T) {
	svc, repo, _ := newUserTestService()

	require.NoError(t, svc.Register(context.Background(), &dto.RegisterDTO{
		Username: "frank", Email: "frank@example.com", Password: "old-secret",
	}))
	frank, err := repo.GetUserByUsername(context.Background(), "frank")
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), frank.ID, &dto.ChangePasswordDTO{
		OldPassword: "wrong", NewPassword: "new-secret",
	})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	err = svc.ChangePassword(context.Background(), frank.ID, &dto.ChangePasswordDTO{
		OldPassword: "old-secret", NewPassword: "new-secret",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.CredentialDTO{
		Username: "frank", Password: "new-secret",
	})
	assert.NoError(t, err)
}
