package consts

const (
	TokenDenyKey = "token:deny:"
	UserCountKey = "user:count"
)

const (
	SnapshotJobLock = "lock:snapshot:daily"
)
