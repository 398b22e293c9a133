package service

import (
	"Pulseboard/internal/api/config"
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/mockstats"
	"context"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlatformRepo struct {
	platforms []*model.Platform
	nextID    uint64
}

func (s *fakePlatformRepo) GetPlatformByName(_ context.Context, name string) (*model.Platform, error) {
	for _, p := range s.platforms {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, nil
}

func (s *fakePlatformRepo) GetPlatformById(_ context.Context, id uint64) (*model.Platform, error) {
	for _, p := range s.platforms {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *fakePlatformRepo) ListPlatforms(_ context.Context) ([]*model.Platform, error) {
	return s.platforms, nil
}

func (s *fakePlatformRepo) CreatePlatform(_ context.Context, platform *model.Platform) error {
	s.nextID++
	platform.ID = s.nextID
	s.platforms = append(s.platforms, platform)
	return nil
}

type fakeAccountRepo struct {
	accounts []*model.SocialAccount
	nextID   uint64
}

func (s *fakeAccountRepo) GetAccount(_ context.Context, userID, platformID uint64) (*model.SocialAccount, error) {
	for _, a := range s.accounts {
		if a.UserID == userID && a.PlatformID == platformID {
			return a, nil
		}
	}
	return nil, nil
}

func (s *fakeAccountRepo) ListAccountsByUser(_ context.Context, userID uint64) ([]*model.SocialAccount, error) {
	out := make([]*model.SocialAccount, 0)
	for _, a := range s.accounts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *fakeAccountRepo) ListAllAccounts(_ context.Context) ([]*model.SocialAccount, error) {
	return s.accounts, nil
}

func (s *fakeAccountRepo) CreateAccount(_ context.Context, account *model.SocialAccount) error {
	s.nextID++
	account.ID = s.nextID
	s.accounts = append(s.accounts, account)
	return nil
}

func (s *fakeAccountRepo) DeleteAccount(_ context.Context, userID, platformID uint64) (int64, error) {
	for i, a := range s.accounts {
		if a.UserID == userID && a.PlatformID == platformID {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeAnalyticsRepo struct {
	snapshots []*model.AnalyticsSnapshot
	nextID    uint64
}

func (s *fakeAnalyticsRepo) GetLatestSnapshot(_ context.Context, userID, platformID uint64) (*model.AnalyticsSnapshot, error) {
	// 追加顺序即时间顺序，从尾部找最新
	for i := len(s.snapshots) - 1; i >= 0; i-- {
		snap := s.snapshots[i]
		if snap.UserID == userID && snap.PlatformID == platformID {
			return snap, nil
		}
	}
	return nil, nil
}

func (s *fakeAnalyticsRepo) GetRecentSnapshots(_ context.Context, userID uint64, limit int) ([]*model.AnalyticsSnapshot, error) {
	out := make([]*model.AnalyticsSnapshot, 0)
	for i := len(s.snapshots) - 1; i >= 0 && len(out) < limit; i-- {
		if s.snapshots[i].UserID == userID {
			out = append(out, s.snapshots[i])
		}
	}
	return out, nil
}

func (s *fakeAnalyticsRepo) CreateSnapshot(_ context.Context, snapshot *model.AnalyticsSnapshot) error {
	s.nextID++
	snapshot.ID = s.nextID
	s.snapshots = append(s.snapshots, snapshot)
	return nil
}

func newTestService(cfg config.AnalyticsConfig) (AnalyticsService, *fakePlatformRepo, *fakeAccountRepo, *fakeAnalyticsRepo) {
	platformRepo := &fakePlatformRepo{}
	accountRepo := &fakeAccountRepo{}
	analyticsRepo := &fakeAnalyticsRepo{}
	svc := NewAnalyticsService(analyticsRepo, platformRepo, accountRepo, nil, cfg)
	return svc, platformRepo, accountRepo, analyticsRepo
}

func seedPlatform(t *testing.T, repo *fakePlatformRepo, name string) *model.Platform {
	t.Helper()
	p := &model.Platform{Name: name}
	require.NoError(t, repo.CreatePlatform(context.Background(), p))
	return p
}

func TestGetPlatformAnalyticsUnauthenticated(t *testing.T) {
	svc, repo, _, _ := newTestService(config.AnalyticsConfig{})
	seedPlatform(t, repo, "YouTube")

	_, err := svc.GetPlatformAnalytics(context.Background(), 0, "youtube")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestGetPlatformAnalyticsUnknownPlatform(t *testing.T) {
	svc, _, _, _ := newTestService(config.AnalyticsConfig{})

	_, err := svc.GetPlatformAnalytics(context.Background(), 1, "myspace")
	assert.ErrorIs(t, err, ErrPlatformNotConfigured)
}

func TestGetPlatformAnalyticsCaseInsensitiveLookup(t *testing.T) {
	svc, repo, _, _ := newTestService(config.AnalyticsConfig{})
	seedPlatform(t, repo, "YouTube")

	result, err := svc.GetPlatformAnalytics(context.Background(), 1, "YOUTUBE")
	require.NoError(t, err)
	require.NotNil(t, result)
}

func TestGetPlatformAnalyticsNoSnapshotFallsBackToGenerated(t *testing.T) {
	svc, repo, _, _ := newTestService(config.AnalyticsConfig{})
	seedPlatform(t, repo, "YouTube")

	result, err := svc.GetPlatformAnalytics(context.Background(), 1, "youtube")
	require.NoError(t, err)

	assert.Equal(t, 25600, result.Stats.SubscriberCount)
	assert.Equal(t, 1850000, result.Stats.ViewCount)
	assert.Equal(t, 342, result.Stats.VideoCount)
	assert.Len(t, result.TimeSeriesData, mockstats.SeriesLen)
	require.Len(t, result.TrafficSources, 5)
	assert.Equal(t, "YouTube Search", result.TrafficSources[0].Name)
	assert.Equal(t, "#FF0000", result.TrafficSources[0].Color)
}

func TestGetPlatformAnalyticsRequiresConnectedAccount(t *testing.T) {
	svc, repo, accounts, _ := newTestService(config.AnalyticsConfig{RequireConnectedAccount: true})
	platform := seedPlatform(t, repo, "Twitter")

	_, err := svc.GetPlatformAnalytics(context.Background(), 1, "twitter")
	assert.ErrorIs(t, err, ErrAccountNotConnected)

	require.NoError(t, accounts.CreateAccount(context.Background(), &model.SocialAccount{
		UserID: 1, PlatformID: platform.ID,
	}))
	_, err = svc.GetPlatformAnalytics(context.Background(), 1, "twitter")
	assert.NoError(t, err)
}

func TestGetPlatformAnalyticsReturnsStoredSnapshot(t *testing.T) {
	svc, repo, _, snapshots := newTestService(config.AnalyticsConfig{})
	platform := seedPlatform(t, repo, "Instagram")

	// 存一条只有 5 个点的序列，返回时不得补齐到 7 个
	storedSeries := []dto.TimeSeriesPointDTO{
		{Name: "2026-08-25", Subscribers: 100, Views: 1000, Likes: 50},
		{Name: "2026-08-26", Subscribers: 110, Views: 1100, Likes: 55},
		{Name: "2026-08-27", Subscribers: 120, Views: 1200, Likes: 60},
		{Name: "2026-08-28", Subscribers: 130, Views: 1300, Likes: 65},
		{Name: "2026-08-29", Subscribers: 140, Views: 1400, Likes: 70},
	}
	seriesRaw, err := json.Marshal(storedSeries)
	require.NoError(t, err)
	sourcesRaw, err := json.Marshal([]dto.TrafficSourceDTO{
		{Name: "Stories", Value: 100, Color: "#FCAF45"},
	})
	require.NoError(t, err)

	require.NoError(t, snapshots.CreateSnapshot(context.Background(), &model.AnalyticsSnapshot{
		UserID:          1,
		PlatformID:      platform.ID,
		SubscriberCount: 9999,
		ViewCount:       88888,
		VideoCount:      77,
		TimeSeriesData:  seriesRaw,
		TrafficSources:  sourcesRaw,
	}))

	result, err := svc.GetPlatformAnalytics(context.Background(), 1, "instagram")
	require.NoError(t, err)

	assert.Equal(t, 9999, result.Stats.SubscriberCount)
	assert.Equal(t, 88888, result.Stats.ViewCount)
	assert.Equal(t, 77, result.Stats.VideoCount)
	assert.Equal(t, storedSeries, result.TimeSeriesData)
	require.Len(t, result.TrafficSources, 1)
	assert.Equal(t, "Stories", result.TrafficSources[0].Name)
}

func TestGetPlatformAnalyticsMalformedFieldsFallBack(t *testing.T) {
	svc, repo, _, snapshots := newTestService(config.AnalyticsConfig{})
	platform := seedPlatform(t, repo, "YouTube")

	require.NoError(t, snapshots.CreateSnapshot(context.Background(), &model.AnalyticsSnapshot{
		UserID:          1,
		PlatformID:      platform.ID,
		SubscriberCount: 123,
		TimeSeriesData:  []byte(`{"not":"an array"}`),
		TrafficSources:  []byte(`]]broken`),
	}))

	result, err := svc.GetPlatformAnalytics(context.Background(), 1, "youtube")
	require.NoError(t, err)

	// 指标来自快照列，损坏的半结构化字段降级为生成数据
	assert.Equal(t, 123, result.Stats.SubscriberCount)
	assert.Len(t, result.TimeSeriesData, mockstats.SeriesLen)
	assert.Len(t, result.TrafficSources, 5)
}

func TestGetPlatformAnalyticsPartialItemsCoerced(t *testing.T) {
	svc, repo, _, snapshots := newTestService(config.AnalyticsConfig{})
	platform := seedPlatform(t, repo, "Twitter")

	require.NoError(t, snapshots.CreateSnapshot(context.Background(), &model.AnalyticsSnapshot{
		UserID:         1,
		PlatformID:     platform.ID,
		TimeSeriesData: []byte(`[{"subscribers":42},{"name":"2026-08-30","views":"oops"}]`),
		TrafficSources: []byte(`[{"value":60},{"name":"Timeline","value":40,"color":"#1DA1F2"}]`),
	}))

	result, err := svc.GetPlatformAnalytics(context.Background(), 1, "twitter")
	require.NoError(t, err)

	require.Len(t, result.TimeSeriesData, 2)
	assert.Equal(t, "Unknown", result.TimeSeriesData[0].Name)
	assert.Equal(t, 42, result.TimeSeriesData[0].Subscribers)
	assert.Equal(t, "2026-08-30", result.TimeSeriesData[1].Name)
	assert.Equal(t, 0, result.TimeSeriesData[1].Views)

	require.Len(t, result.TrafficSources, 2)
	assert.Equal(t, "Unknown", result.TrafficSources[0].Name)
	assert.Equal(t, "#CCCCCC", result.TrafficSources[0].Color)
	assert.Equal(t, 60, result.TrafficSources[0].Value)
}

func TestGetOverallAnalyticsEmpty(t *testing.T) {
	svc, _, _, _ := newTestService(config.AnalyticsConfig{})

	result, err := svc.GetOverallAnalytics(context.Background(), 1)
	require.NoError(t, err)

	// 没有任何快照时返回全零，不走生成器
	assert.Equal(t, dto.StatsDTO{}, result.Stats)
	assert.Empty(t, result.TimeSeriesData)
	assert.Empty(t, result.PlatformDistribution)
}

func TestGetOverallAnalyticsUsesLatestSnapshot(t *testing.T) {
	svc, repo, _, snapshots := newTestService(config.AnalyticsConfig{SnapshotWindow: 7})
	platform := seedPlatform(t, repo, "YouTube")

	require.NoError(t, snapshots.CreateSnapshot(context.Background(), &model.AnalyticsSnapshot{
		UserID: 1, PlatformID: platform.ID, SubscriberCount: 100,
	}))
	require.NoError(t, snapshots.CreateSnapshot(context.Background(), &model.AnalyticsSnapshot{
		UserID: 1, PlatformID: platform.ID, SubscriberCount: 200,
	}))

	result, err := svc.GetOverallAnalytics(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 200, result.Stats.SubscriberCount)
}

func TestRecordSnapshotThenRead(t *testing.T) {
	svc, repo, _, _ := newTestService(config.AnalyticsConfig{})
	seedPlatform(t, repo, "YouTube")

	req := &dto.RecordSnapshotDTO{
		SubscriberCount: 30000,
		ViewCount:       2000000,
		VideoCount:      350,
		TimeSeriesData: []dto.TimeSeriesPointDTO{
			{Name: "2026-09-01", Subscribers: 30000, Views: 60000, Likes: 2500},
		},
		TrafficSources: []dto.TrafficSourceDTO{
			{Name: "YouTube Search", Value: 100, Color: "#FF0000"},
		},
	}
	require.NoError(t, svc.RecordSnapshot(context.Background(), 1, "youtube", req))

	result, err := svc.GetPlatformAnalytics(context.Background(), 1, "youtube")
	require.NoError(t, err)

	assert.Equal(t, 30000, result.Stats.SubscriberCount)
	assert.Equal(t, req.TimeSeriesData, result.TimeSeriesData)
	assert.Equal(t, req.TrafficSources, result.TrafficSources)
}

func TestRecordSnapshotCreatesPlaceholderPlatform(t *testing.T) {
	svc, repo, _, _ := newTestService(config.AnalyticsConfig{})

	require.NoError(t, svc.RecordSnapshot(context.Background(), 1, "TikTok", &dto.RecordSnapshotDTO{
		SubscriberCount: 10,
	}))

	platform, err := repo.GetPlatformByName(context.Background(), "tiktok")
	require.NoError(t, err)
	require.NotNil(t, platform)
	require.NotNil(t, platform.ApiKey)
	assert.Equal(t, "mock_tiktok_api_key", *platform.ApiKey)
}

func TestSeedNewUserCreatesDefaults(t *testing.T) {
	svc, repo, accounts, snapshots := newTestService(config.AnalyticsConfig{})

	require.NoError(t, svc.SeedNewUser(context.Background(), 7))

	platforms, err := repo.ListPlatforms(context.Background())
	require.NoError(t, err)
	assert.Len(t, platforms, 3)

	userAccounts, err := accounts.ListAccountsByUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, userAccounts, 3)

	assert.Len(t, snapshots.snapshots, 3)
}

func TestRefreshAllSnapshotsAppendsPerAccount(t *testing.T) {
	svc, repo, accounts, snapshots := newTestService(config.AnalyticsConfig{})
	platform := seedPlatform(t, repo, "YouTube")

	require.NoError(t, accounts.CreateAccount(context.Background(), &model.SocialAccount{
		UserID: 1, PlatformID: platform.ID, Platform: *platform,
	}))
	require.NoError(t, accounts.CreateAccount(context.Background(), &model.SocialAccount{
		UserID: 2, PlatformID: platform.ID, Platform: *platform,
	}))

	require.NoError(t, svc.RefreshAllSnapshots(context.Background()))
	assert.Len(t, snapshots.snapshots, 2)

	require.NoError(t, svc.RefreshAllSnapshots(context.Background()))
	assert.Len(t, snapshots.snapshots, 4)
}
