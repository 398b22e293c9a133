package service

import (
	"Pulseboard/internal/api/config"
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/model"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/mockstats"
	"Pulseboard/internal/pkg/mongo"
	"Pulseboard/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

type AnalyticsService interface {
	GetPlatformAnalytics(ctx context.Context, userID uint64, platform string) (*dto.PlatformAnalyticsDTO, error)
	GetOverallAnalytics(ctx context.Context, userID uint64) (*dto.OverallAnalyticsDTO, error)
	RecordSnapshot(ctx context.Context, userID uint64, platform string, req *dto.RecordSnapshotDTO) error
	SeedNewUser(ctx context.Context, userID uint64) error
	RefreshAllSnapshots(ctx context.Context) error
}

type analyticsServiceImpl struct {
	analyticsRepo repository.AnalyticsRepo
	platformRepo  repository.PlatformRepo
	accountRepo   repository.SocialAccountRepo
	notifRepo     mongo.NotificationRepo
	cfg           config.AnalyticsConfig
}

func NewAnalyticsService(
	analyticsRepo repository.AnalyticsRepo,
	platformRepo repository.PlatformRepo,
	accountRepo repository.SocialAccountRepo,
	notifRepo mongo.NotificationRepo,
	cfg config.AnalyticsConfig,
) AnalyticsService {
	if cfg.SnapshotWindow <= 0 {
		cfg.SnapshotWindow = mockstats.SeriesLen
	}
	return &analyticsServiceImpl{
		analyticsRepo: analyticsRepo,
		platformRepo:  platformRepo,
		accountRepo:   accountRepo,
		notifRepo:     notifRepo,
		cfg:           cfg,
	}
}

// GetPlatformAnalytics 返回用户在单个平台上的聚合数据
// 快照缺失或快照里的半结构化字段损坏时降级为生成数据，不报错
func (s *analyticsServiceImpl) GetPlatformAnalytics(ctx context.Context, userID uint64, platform string) (*dto.PlatformAnalyticsDTO, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	platformRecord, err := s.platformRepo.GetPlatformByName(ctx, platform)
	if err != nil {
		return nil, err
	}
	if platformRecord == nil {
		return nil, ErrPlatformNotConfigured
	}

	if s.cfg.RequireConnectedAccount {
		account, err := s.accountRepo.GetAccount(ctx, userID, platformRecord.ID)
		if err != nil {
			return nil, err
		}
		if account == nil {
			return nil, ErrAccountNotConnected
		}
	}

	snapshot, err := s.analyticsRepo.GetLatestSnapshot(ctx, userID, platformRecord.ID)
	if err != nil {
		return nil, err
	}

	if snapshot == nil {
		return &dto.PlatformAnalyticsDTO{
			Stats:          statsFromMock(platformRecord.Name),
			TimeSeriesData: seriesFromMock(platformRecord.Name),
			TrafficSources: sourcesFromMock(platformRecord.Name),
		}, nil
	}

	result := &dto.PlatformAnalyticsDTO{
		Stats: dto.StatsDTO{
			SubscriberCount: snapshot.SubscriberCount,
			ViewCount:       snapshot.ViewCount,
			VideoCount:      snapshot.VideoCount,
		},
	}

	series, ok := parseTimeSeries(snapshot.TimeSeriesData)
	if !ok || len(series) == 0 {
		log.WarnContext(ctx, "snapshot time series unusable, falling back to generated data",
			"user_id", userID, "platform", platformRecord.Name, "snapshot_id", snapshot.ID)
		series = seriesFromMock(platformRecord.Name)
	}
	result.TimeSeriesData = series

	sources, ok := parseTrafficSources(snapshot.TrafficSources)
	if !ok || len(sources) == 0 {
		log.WarnContext(ctx, "snapshot traffic sources unusable, falling back to generated data",
			"user_id", userID, "platform", platformRecord.Name, "snapshot_id", snapshot.ID)
		sources = sourcesFromMock(platformRecord.Name)
	}
	result.TrafficSources = sources

	return result, nil
}

// GetOverallAnalytics 跨平台聚合：取最近 N 条快照，指标来自最新一条
// 没有任何快照时返回全零指标与空序列，不走生成器
func (s *analyticsServiceImpl) GetOverallAnalytics(ctx context.Context, userID uint64) (*dto.OverallAnalyticsDTO, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	snapshots, err := s.analyticsRepo.GetRecentSnapshots(ctx, userID, s.cfg.SnapshotWindow)
	if err != nil {
		return nil, err
	}

	result := &dto.OverallAnalyticsDTO{
		TimeSeriesData:       make([]dto.TimeSeriesPointDTO, 0),
		PlatformDistribution: make([]dto.TrafficSourceDTO, 0),
	}

	if len(snapshots) == 0 {
		return result, nil
	}

	latest := snapshots[0]
	result.Stats = dto.StatsDTO{
		SubscriberCount: latest.SubscriberCount,
		ViewCount:       latest.ViewCount,
		VideoCount:      latest.VideoCount,
	}

	if series, ok := parseTimeSeries(latest.TimeSeriesData); ok {
		result.TimeSeriesData = series
	} else {
		log.WarnContext(ctx, "snapshot time series unusable, returning empty series",
			"user_id", userID, "snapshot_id", latest.ID)
	}

	if sources, ok := parseTrafficSources(latest.TrafficSources); ok {
		result.PlatformDistribution = sources
	} else {
		log.WarnContext(ctx, "snapshot traffic sources unusable, returning empty distribution",
			"user_id", userID, "snapshot_id", latest.ID)
	}

	return result, nil
}

// RecordSnapshot 追加一条新快照；平台不存在时先建一条占位平台记录
func (s *analyticsServiceImpl) RecordSnapshot(ctx context.Context, userID uint64, platform string, req *dto.RecordSnapshotDTO) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	if platform == "" {
		return ErrParamInvalid
	}

	platformRecord, err := s.platformRepo.GetPlatformByName(ctx, platform)
	if err != nil {
		return err
	}
	if platformRecord == nil {
		platformRecord = defaultPlatform(platform)
		if err = s.platformRepo.CreatePlatform(ctx, platformRecord); err != nil {
			return err
		}
	}

	snapshot := &model.AnalyticsSnapshot{
		UserID:          userID,
		PlatformID:      platformRecord.ID,
		SubscriberCount: req.SubscriberCount,
		ViewCount:       req.ViewCount,
		VideoCount:      req.VideoCount,
	}

	if len(req.TimeSeriesData) > 0 {
		if snapshot.TimeSeriesData, err = json.Marshal(req.TimeSeriesData); err != nil {
			return err
		}
	}
	if len(req.TrafficSources) > 0 {
		if snapshot.TrafficSources, err = json.Marshal(req.TrafficSources); err != nil {
			return err
		}
	}

	if err = s.analyticsRepo.CreateSnapshot(ctx, snapshot); err != nil {
		return err
	}

	s.notify(ctx, userID, mongo.NotificationTypeSnapshotRecorded,
		"Analytics snapshot recorded for "+platformRecord.Name,
		map[string]any{"platform": platformRecord.Name})

	return nil
}

// SeedNewUser 注册后初始化：补齐默认平台，绑定账号并写入首条生成快照
func (s *analyticsServiceImpl) SeedNewUser(ctx context.Context, userID uint64) error {
	for _, name := range consts.DefaultPlatforms {
		platformRecord, err := s.platformRepo.GetPlatformByName(ctx, name)
		if err != nil {
			return err
		}
		if platformRecord == nil {
			platformRecord = defaultPlatform(name)
			if err = s.platformRepo.CreatePlatform(ctx, platformRecord); err != nil {
				return err
			}
		}

		account, err := s.accountRepo.GetAccount(ctx, userID, platformRecord.ID)
		if err != nil {
			return err
		}
		if account == nil {
			err = s.accountRepo.CreateAccount(ctx, &model.SocialAccount{
				UserID:     userID,
				PlatformID: platformRecord.ID,
			})
			if err != nil {
				return err
			}
		}

		if err = s.appendGeneratedSnapshot(ctx, userID, platformRecord); err != nil {
			return err
		}
	}
	return nil
}

// RefreshAllSnapshots 为所有绑定关系各追加一条生成快照，由每日任务触发
// 单条失败只记日志，不影响其余账号
func (s *analyticsServiceImpl) RefreshAllSnapshots(ctx context.Context) error {
	accounts, err := s.accountRepo.ListAllAccounts(ctx)
	if err != nil {
		return err
	}

	for _, account := range accounts {
		if err = s.appendGeneratedSnapshot(ctx, account.UserID, &account.Platform); err != nil {
			log.WarnContext(ctx, "failed to refresh snapshot",
				"user_id", account.UserID,
				"platform_id", account.PlatformID,
				"err", err)
		}
	}
	return nil
}

// appendGeneratedSnapshot 用生成器产出一条快照并落库，供注册初始化与每日任务复用
func (s *analyticsServiceImpl) appendGeneratedSnapshot(ctx context.Context, userID uint64, platform *model.Platform) error {
	stats := mockstats.PlatformStats(platform.Name)

	seriesRaw, err := json.Marshal(seriesFromMock(platform.Name))
	if err != nil {
		return err
	}
	sourcesRaw, err := json.Marshal(sourcesFromMock(platform.Name))
	if err != nil {
		return err
	}

	return s.analyticsRepo.CreateSnapshot(ctx, &model.AnalyticsSnapshot{
		UserID:          userID,
		PlatformID:      platform.ID,
		SubscriberCount: stats.SubscriberCount,
		ViewCount:       stats.ViewCount,
		VideoCount:      stats.VideoCount,
		TimeSeriesData:  seriesRaw,
		TrafficSources:  sourcesRaw,
	})
}

func (s *analyticsServiceImpl) notify(ctx context.Context, userID uint64, notifType int8, message string, payload map[string]any) {
	if s.notifRepo == nil {
		return
	}
	err := s.notifRepo.CreateNotification(ctx, &mongo.NotificationModel{
		ReceiverID: userID,
		Type:       notifType,
		Message:    message,
		Payload:    payload,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		log.WarnContext(ctx, "failed to write notification", "user_id", userID, "err", err)
	}
}

func defaultPlatform(name string) *model.Platform {
	apiKey := "mock_" + strings.ToLower(name) + "_api_key"
	apiSecret := "mock_" + strings.ToLower(name) + "_api_secret"
	return &model.Platform{
		Name:      name,
		ApiKey:    &apiKey,
		ApiSecret: &apiSecret,
	}
}

func statsFromMock(platform string) dto.StatsDTO {
	stats := mockstats.PlatformStats(platform)
	return dto.StatsDTO{
		SubscriberCount: stats.SubscriberCount,
		ViewCount:       stats.ViewCount,
		VideoCount:      stats.VideoCount,
	}
}

func seriesFromMock(platform string) []dto.TimeSeriesPointDTO {
	points := mockstats.Series(platform)
	out := make([]dto.TimeSeriesPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.TimeSeriesPointDTO{
			Name:        p.Name,
			Subscribers: p.Subscribers,
			Views:       p.Views,
			Likes:       p.Likes,
		})
	}
	return out
}

func sourcesFromMock(platform string) []dto.TrafficSourceDTO {
	sources := mockstats.TrafficSources(platform)
	out := make([]dto.TrafficSourceDTO, 0, len(sources))
	for _, src := range sources {
		out = append(out, dto.TrafficSourceDTO{
			Name:  src.Name,
			Value: src.Value,
			Color: src.Color,
		})
	}
	return out
}
