package handler

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/response"
	"Pulseboard/internal/pkg/util"
	"Pulseboard/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// GetOverall 跨平台汇总视图
func (s *AnalyticsHandler) GetOverall(c *gin.Context) {
	userID := c.GetUint64("user_id")

	result, err := s.analyticsSvc.GetOverallAnalytics(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetByPlatform 单平台视图，platform 为 "overall" 时走汇总逻辑
func (s *AnalyticsHandler) GetByPlatform(c *gin.Context) {
	userID := c.GetUint64("user_id")
	platform := c.Param("platform")

	if strings.EqualFold(platform, consts.PlatformOverall) {
		s.GetOverall(c)
		return
	}

	result, err := s.analyticsSvc.GetPlatformAnalytics(c.Request.Context(), userID, platform)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetLegacy 旧版查询参数风格：?platform=youtube，返回按平台名加前缀的键
func (s *AnalyticsHandler) GetLegacy(c *gin.Context) {
	userID := c.GetUint64("user_id")
	platform := c.Query("platform")
	if platform == "" {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	result, err := s.analyticsSvc.GetPlatformAnalytics(c.Request.Context(), userID, platform)
	if err != nil {
		response.Error(c, err)
		return
	}

	// 旧前端按 <platform>Stats 等键读取，这里只做键名包装
	key := strings.ToLower(platform)
	response.Success(c, map[string]any{
		key + "Stats":          result.Stats,
		key + "TimeSeriesData": result.TimeSeriesData,
		key + "TrafficSources": result.TrafficSources,
	})
}

// RecordSnapshot 写入一条平台快照
func (s *AnalyticsHandler) RecordSnapshot(c *gin.Context) {
	userID := c.GetUint64("user_id")
	platform := c.Param("platform")

	var req dto.RecordSnapshotDTO
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.analyticsSvc.RecordSnapshot(c.Request.Context(), userID, platform, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
