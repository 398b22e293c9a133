package api

import "Pulseboard/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	AnalyticsHandler    *handler.AnalyticsHandler
	AccountHandler      *handler.AccountHandler
	PostHandler         *handler.PostHandler
	NotificationHandler *handler.NotificationHandler
}
