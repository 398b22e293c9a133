package wire

import (
	"Pulseboard/internal/api"
	"Pulseboard/internal/api/config"
	"Pulseboard/internal/api/handler"
	"Pulseboard/internal/job"
	"Pulseboard/internal/pkg/cron"
	pkgmongo "Pulseboard/internal/pkg/mongo"
	"Pulseboard/internal/repository"
	"Pulseboard/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	platformRepo := repository.NewPlatformRepo(db)
	accountRepo := repository.NewSocialAccountRepo(db)
	analyticsRepo := repository.NewAnalyticsRepo(db)
	postRepo := repository.NewPostRepo(db)
	notifRepo := pkgmongo.NewNotificationRepo(mongoDB)

	analyticsService := service.NewAnalyticsService(analyticsRepo, platformRepo, accountRepo, notifRepo, cfg.Analytics)
	userService := service.NewUserService(userRepo, analyticsService)
	accountService := service.NewAccountService(platformRepo, accountRepo, notifRepo)
	postService := service.NewPostService(postRepo, platformRepo)
	notificationService := service.NewNotificationService(notifRepo)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		AnalyticsHandler:    handler.NewAnalyticsHandler(analyticsService),
		AccountHandler:      handler.NewAccountHandler(accountService),
		PostHandler:         handler.NewPostHandler(postService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
	}

	router := api.SetupRouter(handlers)

	snapshotJob := job.NewSnapshotJob(analyticsService)
	cronMgr := cron.NewCronManager(snapshotJob)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
