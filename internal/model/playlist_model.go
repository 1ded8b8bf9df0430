package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PlaylistModel keeps the ordered song-reference sequence in a single array
// column, so every mutation is an atomic one-row read-modify-write.
type PlaylistModel struct {
	ID        string         `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	UserID    string         `gorm:"type:uuid;not null;index" json:"user_id"`
	SongIDs   pq.StringArray `gorm:"type:text[]" json:"song_ids"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (PlaylistModel) TableName() string {
	return "playlists"
}

func (p *PlaylistModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
