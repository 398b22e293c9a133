package handler

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/pkg/response"
	"Pulseboard/internal/pkg/util"
	"Pulseboard/internal/service"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	accountSvc service.AccountService
}

func NewAccountHandler(accountSvc service.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

func (s *AccountHandler) ListPlatforms(c *gin.Context) {
	userID := c.GetUint64("user_id")

	list, err := s.accountSvc.ListPlatforms(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// CreatePlatform 管理端接口，新增受支持的平台
func (s *AccountHandler) CreatePlatform(c *gin.Context) {
	var createDTO dto.CreatePlatformDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.accountSvc.CreatePlatform(c.Request.Context(), &createDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AccountHandler) ConnectAccount(c *gin.Context) {
	userID := c.GetUint64("user_id")
	platform := c.Param("platform")

	// 账号名可选，空请求体视为默认绑定
	var connectDTO dto.ConnectAccountDTO
	_ = c.ShouldBind(&connectDTO)
	if err := util.ValidateDTO(&connectDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.accountSvc.ConnectAccount(c.Request.Context(), userID, platform, &connectDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AccountHandler) DisconnectAccount(c *gin.Context) {
	userID := c.GetUint64("user_id")
	platform := c.Param("platform")

	if err := s.accountSvc.DisconnectAccount(c.Request.Context(), userID, platform); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *AccountHandler) ListAccounts(c *gin.Context) {
	userID := c.GetUint64("user_id")

	list, err := s.accountSvc.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
