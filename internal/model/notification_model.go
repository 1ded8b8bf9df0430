package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationModel struct {
	ID        string     `gorm:"type:uuid;primary_key" json:"id"`
	Message   string     `gorm:"not null" json:"message"`
	SentBy    string     `gorm:"type:uuid;index" json:"sent_by"`
	Sender    *UserModel `gorm:"foreignKey:SentBy" json:"sender,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (n *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
