package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"music-library/internal/entity"
	"music-library/internal/policy"
	"music-library/internal/repo/persistent"
	"music-library/pkg/logger"
	"music-library/pkg/queue"

	"github.com/redis/go-redis/v9"
)

const (
	broadcastFeedKey = "notifications:feed"
	broadcastChannel = "notifications"
	broadcastTTL     = 30 * 24 * time.Hour
)

type NotificationUseCase interface {
	Create(actor entity.Actor, message string) (*entity.Notification, error)
	Get(actor entity.Actor, notificationID string) (*entity.Notification, error)
	List(actor entity.Actor) ([]*entity.Notification, error)
	Update(actor entity.Actor, notificationID, message string) (*entity.Notification, error)
	Delete(actor entity.Actor, notificationID string) error
	HandleBroadcastTask(task map[string]interface{}) error
}

type notificationUseCase struct {
	notificationRepo persistent.NotificationRepository
	redisClient      *redis.Client
	queueClient      *queue.Client
	logger           *logger.Logger
}

func NewNotificationUseCase(
	notificationRepo persistent.NotificationRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) NotificationUseCase {
	return &notificationUseCase{
		notificationRepo: notificationRepo,
		redisClient:      redisClient,
		queueClient:      queueClient,
		logger:           logger,
	}
}

// Create stores the broadcast and enqueues its delivery. The store write is
// the source of truth; a queue outage only costs the live push.
func (uc *notificationUseCase) Create(actor entity.Actor, message string) (*entity.Notification, error) {
	if d := policy.CanManageNotifications(actor); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}

	notification := &entity.Notification{
		Message: message,
		SentBy:  actor.ID,
	}

	if err := uc.notificationRepo.Create(notification); err != nil {
		uc.logger.Error("Failed to create notification: %v", err)
		return nil, Internal("Failed to create notification")
	}

	if uc.queueClient != nil {
		task := map[string]interface{}{
			"notification_id": notification.ID,
			"message":         notification.Message,
			"sent_by":         notification.SentBy,
			"created_at":      notification.CreatedAt.UTC().Format(time.RFC3339),
		}
		go func() {
			if err := uc.queueClient.PublishBroadcastTask(task); err != nil {
				uc.logger.Error("Failed to publish broadcast task for notification %s: %v", notification.ID, err)
			}
		}()
	}

	return notification, nil
}

func (uc *notificationUseCase) Get(actor entity.Actor, notificationID string) (*entity.Notification, error) {
	notification, err := uc.notificationRepo.GetByID(notificationID)
	if err != nil {
		return nil, NotFound("Notification not found")
	}
	return notification, nil
}

func (uc *notificationUseCase) List(actor entity.Actor) ([]*entity.Notification, error) {
	notifications, err := uc.notificationRepo.List()
	if err != nil {
		uc.logger.Error("Failed to fetch notifications: %v", err)
		return nil, Internal("Failed to fetch notifications")
	}
	return notifications, nil
}

func (uc *notificationUseCase) Update(actor entity.Actor, notificationID, message string) (*entity.Notification, error) {
	if d := policy.CanManageNotifications(actor); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}

	notification, err := uc.notificationRepo.GetByID(notificationID)
	if err != nil {
		return nil, NotFound("Notification not found")
	}

	notification.Message = message
	if err := uc.notificationRepo.Update(notification); err != nil {
		uc.logger.Error("Failed to update notification %s: %v", notificationID, err)
		return nil, Internal("Failed to update notification")
	}

	return notification, nil
}

func (uc *notificationUseCase) Delete(actor entity.Actor, notificationID string) error {
	if d := policy.CanManageNotifications(actor); !d.Allowed {
		return Forbidden(d.Reason)
	}

	if _, err := uc.notificationRepo.GetByID(notificationID); err != nil {
		return NotFound("Notification not found")
	}

	if err := uc.notificationRepo.Delete(notificationID); err != nil {
		uc.logger.Error("Failed to delete notification %s: %v", notificationID, err)
		return Internal("Failed to delete notification")
	}

	return nil
}

// HandleBroadcastTask fans a queued broadcast out to Redis: onto the shared
// feed list for catch-up reads and over pub/sub for live listeners.
func (uc *notificationUseCase) HandleBroadcastTask(task map[string]interface{}) error {
	if uc.redisClient == nil {
		uc.logger.Warn("Redis unavailable, dropping broadcast delivery")
		return nil
	}

	payload, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal broadcast payload: %w", err)
	}

	ctx := context.Background()
	if err := uc.redisClient.LPush(ctx, broadcastFeedKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to push broadcast to feed: %w", err)
	}
	if err := uc.redisClient.Expire(ctx, broadcastFeedKey, broadcastTTL).Err(); err != nil {
		uc.logger.Warn("Failed to set broadcast feed expiration: %v", err)
	}
	if err := uc.redisClient.Publish(ctx, broadcastChannel, payload).Err(); err != nil {
		uc.logger.Warn("Failed to publish broadcast to channel: %v", err)
	}

	return nil
}
