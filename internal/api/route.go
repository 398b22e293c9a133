package api

import (
	"Pulseboard/internal/api/middleware"
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		// 无需登录即可访问
		apiGroup.GET("/users/count", group.UserHandler.CountUsers)

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
				authGroup.PUT("/username", group.UserHandler.UpdateUsername)
				authGroup.PUT("/password", group.UserHandler.ChangePassword)
			}
		}

		analyticsGroup := apiGroup.Group("/analytics")
		analyticsGroup.Use(middleware.AuthMiddleware())
		{
			analyticsGroup.GET("", group.AnalyticsHandler.GetOverall)
			// 旧版查询参数风格保留，便于老前端过渡
			analyticsGroup.GET("/platform", group.AnalyticsHandler.GetLegacy)
			analyticsGroup.GET("/:platform", group.AnalyticsHandler.GetByPlatform)
			analyticsGroup.POST("/:platform", group.AnalyticsHandler.RecordSnapshot)
		}

		platformGroup := apiGroup.Group("/platforms")
		{
			// 公开接口；带 Token 访问时额外返回绑定状态
			platformGroup.GET("", middleware.AuthOptionalMiddleware(), group.AccountHandler.ListPlatforms)

			adminGroup := platformGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("", group.AccountHandler.CreatePlatform)
			}
		}

		accountGroup := apiGroup.Group("/accounts")
		accountGroup.Use(middleware.AuthMiddleware())
		{
			accountGroup.GET("", group.AccountHandler.ListAccounts)
			accountGroup.POST("/:platform", group.AccountHandler.ConnectAccount)
			accountGroup.DELETE("/:platform", group.AccountHandler.DisconnectAccount)
		}

		postGroup := apiGroup.Group("/posts")
		postGroup.Use(middleware.AuthMiddleware())
		{
			postGroup.POST("", group.PostHandler.CreatePost)
			postGroup.GET("", group.PostHandler.GetPostList)
			postGroup.DELETE("/:id", group.PostHandler.DeletePost)
		}

		notifGroup := apiGroup.Group("/notifications")
		notifGroup.Use(middleware.AuthMiddleware())
		{
			notifGroup.GET("", group.NotificationHandler.GetNotificationList)
			notifGroup.GET("/unread", group.NotificationHandler.GetUnreadCount)
			notifGroup.POST("/:id/read", group.NotificationHandler.MarkAsRead)
			notifGroup.POST("/read/all", group.NotificationHandler.MarkAllAsRead)
		}
	}

	return r
}
