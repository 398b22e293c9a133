package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NotificationTypeSystem           int8 = 0
	NotificationTypeAccountConnected int8 = 1
	NotificationTypeSnapshotRecorded int8 = 2
	NotificationTypeEngagement       int8 = 3
)

// NotificationModel 用户通知模型
type NotificationModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReceiverID uint64             `bson:"receiver_id" json:"receiverId"` // 消息接收者ID
	Type       int8               `bson:"type" json:"type"`              // 通知类型: 0-系统, 1-账号绑定, 2-快照写入, 3-互动提醒
	Message    string             `bson:"message" json:"message"`        // 通知文案
	Payload    map[string]any     `bson:"payload" json:"payload"`        // 额外元数据 (可选，如平台名)
	IsRead     bool               `bson:"is_read" json:"isRead"`         // 是否已读
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`   // 创建时间
}
