package job

import (
	"Pulseboard/internal/pkg/consts"
	"Pulseboard/internal/pkg/logger"
	"Pulseboard/internal/pkg/redis"
	"Pulseboard/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// SnapshotJob 每日为所有绑定账号追加一条分析快照
type SnapshotJob struct {
	analyticsSvc service.AnalyticsService
}

func NewSnapshotJob(analyticsSvc service.AnalyticsService) *SnapshotJob {
	return &SnapshotJob{analyticsSvc: analyticsSvc}
}

func (s *SnapshotJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	// 多实例部署时只允许一个实例执行
	locked, err := redis.TryLock(ctx, consts.SnapshotJobLock, traceID, time.Minute*30, 1)
	if err != nil {
		log.ErrorContext(ctx, "acquire snapshot job lock error", "err", err)
		return
	}
	if !locked {
		log.InfoContext(ctx, "snapshot job already running elsewhere, skip")
		return
	}
	defer redis.UnLock(ctx, consts.SnapshotJobLock, traceID)

	start := time.Now()
	if err = s.analyticsSvc.RefreshAllSnapshots(ctx); err != nil {
		log.ErrorContext(ctx, "refresh snapshots error", "err", err)
		return
	}

	log.InfoContext(ctx, "daily snapshot job finished", "cost", time.Since(start))
}
