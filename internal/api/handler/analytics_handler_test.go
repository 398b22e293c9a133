package handler

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalyticsService struct {
	platformResult *dto.PlatformAnalyticsDTO
	overallResult  *dto.OverallAnalyticsDTO
	err            error

	lastPlatform string
	overallCalls int
}

func (s *stubAnalyticsService) GetPlatformAnalytics(_ context.Context, _ uint64, platform string) (*dto.PlatformAnalyticsDTO, error) {
	s.lastPlatform = platform
	return s.platformResult, s.err
}

func (s *stubAnalyticsService) GetOverallAnalytics(_ context.Context, _ uint64) (*dto.OverallAnalyticsDTO, error) {
	s.overallCalls++
	return s.overallResult, s.err
}

func (s *stubAnalyticsService) RecordSnapshot(_ context.Context, _ uint64, _ string, _ *dto.RecordSnapshotDTO) error {
	return s.err
}

func (s *stubAnalyticsService) SeedNewUser(_ context.Context, _ uint64) error {
	return s.err
}

func (s *stubAnalyticsService) RefreshAllSnapshots(_ context.Context) error {
	return s.err
}

func setupAnalyticsRouter(svc *stubAnalyticsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uint64(1))
		c.Next()
	})

	h := NewAnalyticsHandler(svc)
	r.GET("/api/analytics", h.GetOverall)
	r.GET("/api/analytics/platform", h.GetLegacy)
	r.GET("/api/analytics/:platform", h.GetByPlatform)
	return r
}

func TestGetLegacyWrapsKeysByPlatform(t *testing.T) {
	svc := &stubAnalyticsService{
		platformResult: &dto.PlatformAnalyticsDTO{
			Stats:          dto.StatsDTO{SubscriberCount: 25600},
			TimeSeriesData: []dto.TimeSeriesPointDTO{{Name: "2026-09-01"}},
			TrafficSources: []dto.TrafficSourceDTO{{Name: "Direct", Value: 100, Color: "#900C3F"}},
		},
	}
	r := setupAnalyticsRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/platform?platform=YouTube", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "YouTube", svc.lastPlatform)

	var resp struct {
		Code int            `json:"code"`
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Code)

	// 键名统一小写前缀
	assert.Contains(t, resp.Data, "youtubeStats")
	assert.Contains(t, resp.Data, "youtubeTimeSeriesData")
	assert.Contains(t, resp.Data, "youtubeTrafficSources")
}

func TestGetLegacyMissingPlatformParam(t *testing.T) {
	r := setupAnalyticsRouter(&stubAnalyticsService{})

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/platform", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 400, resp.Code)
}

func TestGetByPlatformOverallDispatch(t *testing.T) {
	svc := &stubAnalyticsService{
		overallResult: &dto.OverallAnalyticsDTO{},
	}
	r := setupAnalyticsRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/Overall", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.overallCalls)
	assert.Empty(t, svc.lastPlatform)
}

func TestGetByPlatformErrorMapping(t *testing.T) {
	svc := &stubAnalyticsService{err: service.ErrPlatformNotConfigured}
	r := setupAnalyticsRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/myspace", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// 业务码在响应体里，HTTP 状态码恒为 200
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 404, resp.Code)
	assert.Equal(t, "platform not configured", resp.Message)
}
