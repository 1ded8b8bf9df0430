package persistent

import (
	"music-library/internal/entity"
	"music-library/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	List() ([]*entity.Notification, error)
	Update(notification *entity.Notification) error
	Delete(id string) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *entity.Notification) error {
	notificationModel := ToNotificationModel(notification)
	if notificationModel.ID == "" {
		notificationModel.ID = uuid.New().String()
	}
	if err := r.db.Create(notificationModel).Error; err != nil {
		return err
	}
	*notification = *ToNotificationEntity(notificationModel)
	return nil
}

func (r *notificationRepository) GetByID(id string) (*entity.Notification, error) {
	var notificationModel model.NotificationModel
	if err := r.db.Preload("Sender").Where("id = ?", id).First(&notificationModel).Error; err != nil {
		return nil, err
	}
	return ToNotificationEntity(&notificationModel), nil
}

func (r *notificationRepository) List() ([]*entity.Notification, error) {
	var notificationModels []model.NotificationModel
	if err := r.db.Preload("Sender").Order("created_at DESC").Find(&notificationModels).Error; err != nil {
		return nil, err
	}

	notifications := make([]*entity.Notification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = ToNotificationEntity(&notificationModels[i])
	}
	return notifications, nil
}

func (r *notificationRepository) Update(notification *entity.Notification) error {
	return r.db.Model(&model.NotificationModel{}).
		Where("id = ?", notification.ID).
		Update("message", notification.Message).Error
}

func (r *notificationRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.NotificationModel{}).Error
}
