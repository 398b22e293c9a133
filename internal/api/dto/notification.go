package dto

// NotificationDTO 通知收件箱条目
type NotificationDTO struct {
	ID        string         `json:"id"`
	Type      int8           `json:"type"`
	Message   string         `json:"message"`
	Payload   map[string]any `json:"payload,omitempty"`
	IsRead    bool           `json:"is_read"`
	CreatedAt string         `json:"created_at"`
}

// NotificationUnreadDTO 未读数
type NotificationUnreadDTO struct {
	UnreadCount int64 `json:"unread_count"`
}
