package persistent

import (
	"fmt"

	"music-library/internal/entity"
	"music-library/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SongRepository interface {
	Create(song *entity.Song) error
	GetByID(id string) (*entity.Song, error)
	GetByIDs(ids []string) ([]*entity.Song, error)
	List(visibleOnly bool) ([]*entity.Song, error)
	Search(field entity.SongSearchField, term string, visibleOnly bool) ([]*entity.Song, error)
	Update(song *entity.Song) error
	Delete(id string) error
}

type songRepository struct {
	db *gorm.DB
}

func NewSongRepository(db *gorm.DB) SongRepository {
	return &songRepository{db: db}
}

func (r *songRepository) Create(song *entity.Song) error {
	songModel := ToSongModel(song)
	if songModel.ID == "" {
		songModel.ID = uuid.New().String()
	}
	if err := r.db.Create(songModel).Error; err != nil {
		return err
	}
	*song = *ToSongEntity(songModel)
	return nil
}

func (r *songRepository) GetByID(id string) (*entity.Song, error) {
	var songModel model.SongModel
	if err := r.db.Where("id = ?", id).First(&songModel).Error; err != nil {
		return nil, err
	}
	return ToSongEntity(&songModel), nil
}

func (r *songRepository) GetByIDs(ids []string) ([]*entity.Song, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var songModels []model.SongModel
	if err := r.db.Where("id IN ?", ids).Find(&songModels).Error; err != nil {
		return nil, err
	}
	return toSongEntities(songModels), nil
}

func (r *songRepository) List(visibleOnly bool) ([]*entity.Song, error) {
	query := r.db.Model(&model.SongModel{})
	if visibleOnly {
		query = query.Where("visibility = ?", true)
	}

	var songModels []model.SongModel
	if err := query.Find(&songModels).Error; err != nil {
		return nil, err
	}
	return toSongEntities(songModels), nil
}

// Search runs a case-insensitive substring match against a single catalog
// column, scoped by visibility for non-admin actors.
func (r *songRepository) Search(field entity.SongSearchField, term string, visibleOnly bool) ([]*entity.Song, error) {
	query := r.db.Model(&model.SongModel{}).
		Where(fmt.Sprintf("%s ILIKE ?", field), "%"+term+"%")
	if visibleOnly {
		query = query.Where("visibility = ?", true)
	}

	var songModels []model.SongModel
	if err := query.Find(&songModels).Error; err != nil {
		return nil, err
	}
	return toSongEntities(songModels), nil
}

func (r *songRepository) Update(song *entity.Song) error {
	songModel := ToSongModel(song)
	return r.db.Save(songModel).Error
}

func (r *songRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.SongModel{}).Error
}

func toSongEntities(songModels []model.SongModel) []*entity.Song {
	songs := make([]*entity.Song, len(songModels))
	for i := range songModels {
		songs[i] = ToSongEntity(&songModels[i])
	}
	return songs
}
