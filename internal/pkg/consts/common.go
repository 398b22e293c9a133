package consts

const (
	RoleUser  = "user"
	RoleAdmin = "ADMIN"
)

const (
	// PlatformOverall 平台选择器的哨兵值，表示跨平台聚合
	PlatformOverall = "overall"
)

// DefaultPlatforms 注册时自动初始化的平台列表
var DefaultPlatforms = []string{"YouTube", "Twitter", "Instagram"}
