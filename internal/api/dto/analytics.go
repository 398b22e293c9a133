package dto

// StatsDTO 三项核心指标，字段始终存在，未知时为 0
type StatsDTO struct {
	SubscriberCount int `json:"subscriberCount"`
	ViewCount       int `json:"viewCount"`
	VideoCount      int `json:"videoCount"`
}

// TimeSeriesPointDTO 单日数据点，name 为日期标签
type TimeSeriesPointDTO struct {
	Name        string `json:"name"`
	Subscribers int    `json:"subscribers"`
	Views       int    `json:"views"`
	Likes       int    `json:"likes"`
}

// TrafficSourceDTO 流量来源占比
type TrafficSourceDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// PlatformAnalyticsDTO 单平台聚合结果
type PlatformAnalyticsDTO struct {
	Stats          StatsDTO             `json:"stats"`
	TimeSeriesData []TimeSeriesPointDTO `json:"timeSeriesData"`
	TrafficSources []TrafficSourceDTO   `json:"trafficSources"`
}

// OverallAnalyticsDTO 跨平台聚合结果
type OverallAnalyticsDTO struct {
	Stats                StatsDTO             `json:"stats"`
	TimeSeriesData       []TimeSeriesPointDTO `json:"timeSeriesData"`
	PlatformDistribution []TrafficSourceDTO   `json:"platformDistribution"`
}

// RecordSnapshotDTO 写入一条新的分析快照
type RecordSnapshotDTO struct {
	SubscriberCount int                  `json:"subscriberCount" validate:"min=0"`
	ViewCount       int                  `json:"viewCount" validate:"min=0"`
	VideoCount      int                  `json:"videoCount" validate:"min=0"`
	TimeSeriesData  []TimeSeriesPointDTO `json:"timeSeriesData,omitempty"`
	TrafficSources  []TrafficSourceDTO   `json:"trafficSources,omitempty"`
}
