package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SongModel struct {
	ID            string    `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `gorm:"not null;index" json:"name"`
	Singer        string    `gorm:"not null" json:"singer"`
	MusicDirector string    `gorm:"not null" json:"music_director"`
	ReleaseDate   time.Time `gorm:"not null" json:"release_date"`
	Album         string    `gorm:"not null" json:"album"`
	Image         string    `gorm:"type:varchar(500)" json:"image"`
	Visibility    bool      `gorm:"default:true" json:"visibility"`
	CreatorID     string    `gorm:"type:uuid;not null;index" json:"creator_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (SongModel) TableName() string {
	return "songs"
}

func (s *SongModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
