package config

// Config 配置主体
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	DB        DBConfig        `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	Logstash  LogstashConfig  `mapstructure:"logstash"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// MongoConfig 通知收件箱使用的 MongoDB
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// LogstashConfig 远程日志上报
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// AnalyticsConfig 分析聚合策略
type AnalyticsConfig struct {
	// SnapshotWindow 全平台聚合时取最近几条快照，同时也是兜底时间序列的点数
	SnapshotWindow int `mapstructure:"snapshot_window"`
	// RequireConnectedAccount 查询单平台数据时是否要求已绑定账号
	RequireConnectedAccount bool `mapstructure:"require_connected_account"`
}
