package mockstats

import (
	"math/rand"
	"strings"
	"time"
)

// SeriesLen 兜底时间序列固定为最近 7 天
const SeriesLen = 7

// Stats 三项核心指标
type Stats struct {
	SubscriberCount int
	ViewCount       int
	VideoCount      int
}

// SeriesPoint 单日数据点
type SeriesPoint struct {
	Name        string
	Subscribers int
	Views       int
	Likes       int
}

// TrafficSource 流量来源占比
type TrafficSource struct {
	Name  string
	Value int
	Color string
}

// baseline 每个平台的基准量级与随机衰减幅度
type baseline struct {
	stats       Stats
	dailyViews  int
	dailyLikes  int
	subOffset   int
	viewOffset  int
	likeOffset  int
	trafficSrcs []TrafficSource
}

var baselines = map[string]baseline{
	"youtube": {
		stats:      Stats{SubscriberCount: 25600, ViewCount: 1850000, VideoCount: 342},
		dailyViews: 52000, dailyLikes: 2400,
		subOffset: 120, viewOffset: 3000, likeOffset: 150,
		trafficSrcs: []TrafficSource{
			{Name: "YouTube Search", Value: 45, Color: "#FF0000"},
			{Name: "Suggested Videos", Value: 30, Color: "#FF5733"},
			{Name: "Browse Features", Value: 12, Color: "#FFC300"},
			{Name: "External", Value: 8, Color: "#DAF7A6"},
			{Name: "Direct", Value: 5, Color: "#900C3F"},
		},
	},
	"twitter": {
		stats:      Stats{SubscriberCount: 8750, ViewCount: 245000, VideoCount: 180},
		dailyViews: 35000, dailyLikes: 1200,
		subOffset: 50, viewOffset: 2000, likeOffset: 100,
		trafficSrcs: []TrafficSource{
			{Name: "Timeline", Value: 40, Color: "#1DA1F2"},
			{Name: "Profile", Value: 25, Color: "#14171A"},
			{Name: "Search", Value: 20, Color: "#657786"},
			{Name: "Lists", Value: 15, Color: "#AAB8C2"},
		},
	},
	"instagram": {
		stats:      Stats{SubscriberCount: 5420, ViewCount: 128500, VideoCount: 245},
		dailyViews: 18500, dailyLikes: 850,
		subOffset: 100, viewOffset: 1000, likeOffset: 50,
		trafficSrcs: []TrafficSource{
			{Name: "Profile Visits", Value: 45, Color: "#E1306C"},
			{Name: "Hashtags", Value: 30, Color: "#F56040"},
			{Name: "Explore Page", Value: 15, Color: "#833AB4"},
			{Name: "Stories", Value: 10, Color: "#FCAF45"},
		},
	},
}

var genericBaseline = baseline{
	stats:      Stats{SubscriberCount: 1200, ViewCount: 48000, VideoCount: 60},
	dailyViews: 6500, dailyLikes: 320,
	subOffset: 40, viewOffset: 800, likeOffset: 40,
	trafficSrcs: []TrafficSource{
		{Name: "Search", Value: 40, Color: "#4285F4"},
		{Name: "Direct", Value: 30, Color: "#34A853"},
		{Name: "Referral", Value: 20, Color: "#FBBC05"},
		{Name: "Other", Value: 10, Color: "#EA4335"},
	},
}

func baselineFor(platform string) baseline {
	if b, ok := baselines[strings.ToLower(platform)]; ok {
		return b
	}
	return genericBaseline
}

// PlatformStats 返回平台基准指标
func PlatformStats(platform string) Stats {
	return baselineFor(platform).stats
}

// Series 生成最近 7 天的兜底时间序列，按时间升序排列
// 距今越远随机衰减越大，极端情况下可能出现负数，与线上旧行为保持一致，不做截断
func Series(platform string) []SeriesPoint {
	b := baselineFor(platform)

	points := make([]SeriesPoint, 0, SeriesLen)
	for i := 0; i < SeriesLen; i++ {
		date := time.Now().AddDate(0, 0, -i)
		points = append(points, SeriesPoint{
			Name:        date.Format("2006-01-02"),
			Subscribers: b.stats.SubscriberCount - rand.Intn(b.subOffset)*i,
			Views:       b.dailyViews - rand.Intn(b.viewOffset)*i,
			Likes:       b.dailyLikes - rand.Intn(b.likeOffset)*i,
		})
	}

	// 生成时从今天往回推，返回前反转为 oldest -> newest
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points
}

// TrafficSources 返回平台固定的流量来源分布
func TrafficSources(platform string) []TrafficSource {
	src := baselineFor(platform).trafficSrcs
	out := make([]TrafficSource, len(src))
	copy(out, src)
	return out
}
