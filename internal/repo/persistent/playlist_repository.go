package persistent

import (
	"music-library/internal/entity"
	"music-library/internal/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type PlaylistRepository interface {
	Create(playlist *entity.Playlist) error
	GetByID(id string) (*entity.Playlist, error)
	ListAll() ([]*entity.Playlist, error)
	ListByOwner(ownerID string) ([]*entity.Playlist, error)
	Update(playlist *entity.Playlist) error
	Delete(id string) error
	FindContainingSongs(songIDs []string, ownerID string) ([]*entity.Playlist, error)
}

type playlistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(playlist *entity.Playlist) error {
	playlistModel := ToPlaylistModel(playlist)
	if playlistModel.ID == "" {
		playlistModel.ID = uuid.New().String()
	}
	if err := r.db.Create(playlistModel).Error; err != nil {
		return err
	}
	*playlist = *ToPlaylistEntity(playlistModel)
	return nil
}

func (r *playlistRepository) GetByID(id string) (*entity.Playlist, error) {
	var playlistModel model.PlaylistModel
	if err := r.db.Where("id = ?", id).First(&playlistModel).Error; err != nil {
		return nil, err
	}
	return ToPlaylistEntity(&playlistModel), nil
}

func (r *playlistRepository) ListAll() ([]*entity.Playlist, error) {
	var playlistModels []model.PlaylistModel
	if err := r.db.Find(&playlistModels).Error; err != nil {
		return nil, err
	}
	return toPlaylistEntities(playlistModels), nil
}

func (r *playlistRepository) ListByOwner(ownerID string) ([]*entity.Playlist, error) {
	var playlistModels []model.PlaylistModel
	if err := r.db.Where("user_id = ?", ownerID).Find(&playlistModels).Error; err != nil {
		return nil, err
	}
	return toPlaylistEntities(playlistModels), nil
}

// Update persists the whole playlist row, including the song-id array, in a
// single write. Last write wins; there is no optimistic concurrency token.
func (r *playlistRepository) Update(playlist *entity.Playlist) error {
	playlistModel := ToPlaylistModel(playlist)
	return r.db.Save(playlistModel).Error
}

func (r *playlistRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.PlaylistModel{}).Error
}

// FindContainingSongs returns playlists whose song array overlaps songIDs,
// optionally restricted to a single owner. An empty ownerID means no owner
// restriction.
func (r *playlistRepository) FindContainingSongs(songIDs []string, ownerID string) ([]*entity.Playlist, error) {
	query := r.db.Where("song_ids && ?", pq.StringArray(songIDs))
	if ownerID != "" {
		query = query.Where("user_id = ?", ownerID)
	}

	var playlistModels []model.PlaylistModel
	if err := query.Find(&playlistModels).Error; err != nil {
		return nil, err
	}
	return toPlaylistEntities(playlistModels), nil
}

func toPlaylistEntities(playlistModels []model.PlaylistModel) []*entity.Playlist {
	playlists := make([]*entity.Playlist, len(playlistModels))
	for i := range playlistModels {
		playlists[i] = ToPlaylistEntity(&playlistModels[i])
	}
	return playlists
}
