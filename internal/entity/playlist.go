package entity

import "time"

// Playlist holds an ordered sequence of song references. SongIDs preserves
// insertion order; the add path keeps it duplicate-free, a raw update may
// not.
type Playlist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	SongIDs   []string  `json:"songIds"`
	Songs     []*Song   `json:"songs,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RepeatMode selects playback repetition: a single song or the whole list.
type RepeatMode string

const (
	RepeatOne RepeatMode = "one"
	RepeatAll RepeatMode = "all"
)
