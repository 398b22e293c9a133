package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountTestService() (AccountService, *fakePlatformRepo, *fakeAccountRepo) {
	platformRepo := &fakePlatformRepo{}
	accountRepo := &fakeAccountRepo{}
	return NewAccountService(platformRepo, accountRepo, nil), platformRepo, accountRepo
}

func TestListPlatformsAnonymousOmitsConnectedState(t *testing.T) {
	svc, platforms, _ := newAccountTestService()
	seedPlatform(t, platforms, "YouTube")
	seedPlatform(t, platforms, "Twitter")

	list, err := svc.ListPlatforms(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, list, 2)

	for _, p := range list {
		assert.Nil(t, p.Connected)
	}
}

func TestListPlatformsWithIdentityFlagsConnections(t *testing.T) {
	svc, platforms, accounts := newAccountTestService()
	youtube := seedPlatform(t, platforms, "YouTube")
	seedPlatform(t, platforms, "Twitter")

	require.NoError(t, accounts.CreateAccount(context.Background(), &model.SocialAccount{
		UserID: 1, PlatformID: youtube.ID,
	}))

	list, err := svc.ListPlatforms(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)

	byName := make(map[string]*dto.PlatformDTO)
	for _, p := range list {
		byName[p.Name] = p
	}

	require.NotNil(t, byName["YouTube"].Connected)
	assert.True(t, *byName["YouTube"].Connected)
	require.NotNil(t, byName["Twitter"].Connected)
	assert.False(t, *byName["Twitter"].Connected)
}

func TestConnectAccountUnknownPlatform(t *testing.T) {
	svc, _, _ := newAccountTestService()

	err := svc.ConnectAccount(context.Background(), 1, "myspace", &dto.ConnectAccountDTO{})
	assert.ErrorIs(t, err, ErrPlatformNotConfigured)
}

func TestConnectAccountRejectsDuplicateLink(t *testing.T) {
	svc, platforms, _ := newAccountTestService()
	seedPlatform(t, platforms, "YouTube")

	require.NoError(t, svc.ConnectAccount(context.Background(), 1, "youtube", &dto.ConnectAccountDTO{}))

	err := svc.ConnectAccount(context.Background(), 1, "youtube", &dto.ConnectAccountDTO{})
	assert.ErrorIs(t, err, ErrAccountAlreadyLinked)
}

func TestDisconnectAccountNotConnected(t *testing.T) {
	svc, platforms, _ := newAccountTestService()
	seedPlatform(t, platforms, "YouTube")

	err := svc.DisconnectAccount(context.Background(), 1, "youtube")
	assert.ErrorIs(t, err, ErrAccountNotConnected)

	require.NoError(t, svc.ConnectAccount(context.Background(), 1, "youtube", &dto.ConnectAccountDTO{}))
	require.NoError(t, svc.DisconnectAccount(context.Background(), 1, "youtube"))
}
