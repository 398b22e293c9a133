package cron

import (
	"Pulseboard/internal/job"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManagerRegisterAndStop(t *testing.T) {
	mgr := NewCronManager(job.NewSnapshotJob(nil))

	require.NoError(t, mgr.RegisterJobs())

	// @daily 不会在测试期间触发
	mgr.Start()
	mgr.Stop()
}
