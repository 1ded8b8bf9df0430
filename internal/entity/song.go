package entity

import "time"

type Song struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Singer        string    `json:"singer"`
	MusicDirector string    `json:"musicDirector"`
	ReleaseDate   time.Time `json:"releaseDate"`
	Album         string    `json:"album"`
	Image         string    `json:"image,omitempty"`
	Visibility    bool      `json:"visibility"`
	CreatorID     string    `json:"creatorId"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SongSearchField selects which catalog column a substring search runs
// against.
type SongSearchField string

const (
	SearchByName          SongSearchField = "name"
	SearchByAlbum         SongSearchField = "album"
	SearchByMusicDirector SongSearchField = "music_director"
	SearchBySinger        SongSearchField = "singer"
)
