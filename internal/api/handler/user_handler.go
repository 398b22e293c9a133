package handler

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/pkg/response"
	"Pulseboard/internal/pkg/util"
	"Pulseboard/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	err := c.ShouldBind(&registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.userSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	err := c.ShouldBind(&loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]string{
		"token": token,
	})
}

func (s *UserHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")

	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) GetUserInfo(c *gin.Context) {
	userID := c.GetUint64("user_id")

	userDTO, err := s.userSvc.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, userDTO)
}

func (s *UserHandler) UpdateUsername(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var changeDTO dto.ChangeUsernameDTO
	if err := c.ShouldBind(&changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&changeDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.userSvc.UpdateUsername(c.Request.Context(), userID, &changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) ChangePassword(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var changeDTO dto.ChangePasswordDTO
	if err := c.ShouldBind(&changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&changeDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.userSvc.ChangePassword(c.Request.Context(), userID, &changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// CountUsers 公开接口，返回注册用户总数
func (s *UserHandler) CountUsers(c *gin.Context) {
	count, err := s.userSvc.CountUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{
		"count": count,
	})
}
