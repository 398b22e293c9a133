package service

import (
	"Pulseboard/internal/api/dto"
	"Pulseboard/internal/pkg/mongo"
	"context"
	"errors"
	"time"

	driver "go.mongodb.org/mongo-driver/mongo"
)

type NotificationService interface {
	GetNotificationList(ctx context.Context, userID uint64, limit, offset int64) ([]*dto.NotificationDTO, error)
	GetUnreadCount(ctx context.Context, userID uint64) (*dto.NotificationUnreadDTO, error)
	MarkAsRead(ctx context.Context, userID uint64, msgID string) error
	MarkAllAsRead(ctx context.Context, userID uint64) error
}

type NotificationServiceImpl struct {
	notifRepo mongo.NotificationRepo
}

func NewNotificationService(notifRepo mongo.NotificationRepo) NotificationService {
	return &NotificationServiceImpl{notifRepo: notifRepo}
}

func (s *NotificationServiceImpl) GetNotificationList(ctx context.Context, userID uint64, limit, offset int64) ([]*dto.NotificationDTO, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	list, err := s.notifRepo.GetNotificationList(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NotificationDTO, 0, len(list))
	for _, msg := range list {
		result = append(result, &dto.NotificationDTO{
			ID:        msg.ID.Hex(),
			Type:      msg.Type,
			Message:   msg.Message,
			Payload:   msg.Payload,
			IsRead:    msg.IsRead,
			CreatedAt: msg.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

func (s *NotificationServiceImpl) GetUnreadCount(ctx context.Context, userID uint64) (*dto.NotificationUnreadDTO, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	count, err := s.notifRepo.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &dto.NotificationUnreadDTO{UnreadCount: count}, nil
}

func (s *NotificationServiceImpl) MarkAsRead(ctx context.Context, userID uint64, msgID string) error {
	if userID == 0 {
		return ErrUnauthenticated
	}

	err := s.notifRepo.MarkAsRead(ctx, userID, msgID)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) || errors.Is(err, driver.ErrInvalidIndexValue) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllAsRead(ctx context.Context, userID uint64) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	return s.notifRepo.MarkAllAsRead(ctx, userID)
}
