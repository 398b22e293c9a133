package service

import (
	"Pulseboard/internal/api/dto"

	"github.com/goccy/go-json"
)

// 快照里的 TimeSeriesData / TrafficSources 是原样存储的 JSON，
// 内容可能缺字段、类型不对甚至根本不是数组。
// 解析策略：整体不是数组 -> 解析失败；单个点缺字段 -> 按零值/"Unknown" 补齐。

func parseTimeSeries(raw []byte) ([]dto.TimeSeriesPointDTO, bool) {
	if len(raw) == 0 {
		return nil, false
	}

	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}

	points := make([]dto.TimeSeriesPointDTO, 0, len(items))
	for _, item := range items {
		points = append(points, dto.TimeSeriesPointDTO{
			Name:        stringField(item, "name", "Unknown"),
			Subscribers: intField(item, "subscribers"),
			Views:       intField(item, "views"),
			Likes:       intField(item, "likes"),
		})
	}
	return points, true
}

func parseTrafficSources(raw []byte) ([]dto.TrafficSourceDTO, bool) {
	if len(raw) == 0 {
		return nil, false
	}

	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}

	sources := make([]dto.TrafficSourceDTO, 0, len(items))
	for _, item := range items {
		sources = append(sources, dto.TrafficSourceDTO{
			Name:  stringField(item, "name", "Unknown"),
			Value: intField(item, "value"),
			Color: stringField(item, "color", "#CCCCCC"),
		})
	}
	return sources, true
}

func stringField(item map[string]any, key, fallback string) string {
	if v, ok := item[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func intField(item map[string]any, key string) int {
	switch v := item[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
	}
	return 0
}
