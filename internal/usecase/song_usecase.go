package usecase

import (
	"io"
	"time"

	"music-library/internal/entity"
	"music-library/internal/policy"
	"music-library/internal/repo/persistent"
	"music-library/pkg/logger"
	"music-library/pkg/s3"
)

type SongInput struct {
	Name          string
	Singer        string
	MusicDirector string
	ReleaseDate   time.Time
	Album         string
	Image         string
	Visibility    *bool
}

type SongUseCase interface {
	Create(actor entity.Actor, input SongInput) (*entity.Song, error)
	Get(actor entity.Actor, songID string) (*entity.Song, error)
	List(actor entity.Actor) ([]*entity.Song, error)
	Search(actor entity.Actor, field entity.SongSearchField, term string) ([]*entity.Song, error)
	Update(actor entity.Actor, songID string, input SongInput) (*entity.Song, error)
	Delete(actor entity.Actor, songID string) error
	SetVisibility(actor entity.Actor, songID string, visibility bool) (*entity.Song, error)
	UploadImage(actor entity.Actor, songID string, file io.Reader, fileKey, contentType string) (*entity.Song, error)
}

type songUseCase struct {
	songRepo persistent.SongRepository
	s3Client *s3.Client
	logger   *logger.Logger
}

func NewSongUseCase(songRepo persistent.SongRepository, s3Client *s3.Client, logger *logger.Logger) SongUseCase {
	return &songUseCase{
		songRepo: songRepo,
		s3Client: s3Client,
		logger:   logger,
	}
}

func (uc *songUseCase) Create(actor entity.Actor, input SongInput) (*entity.Song, error) {
	if d := policy.CanManageSongs(actor); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}

	visibility := true
	if input.Visibility != nil {
		visibility = *input.Visibility
	}

	song := &entity.Song{
		Name:          input.Name,
		Singer:        input.Singer,
		MusicDirector: input.MusicDirector,
		ReleaseDate:   input.ReleaseDate,
		Album:         input.Album,
		Image:         input.Image,
		Visibility:    visibility,
		CreatorID:     actor.ID,
	}

	if err := uc.songRepo.Create(song); err != nil {
		uc.logger.Error("Failed to create song: %v", err)
		return nil, Internal("Server error")
	}

	return song, nil
}

func (uc *songUseCase) Get(actor entity.Actor, songID string) (*entity.Song, error) {
	song, err := uc.songRepo.GetByID(songID)
	if err != nil {
		return nil, NotFound("Song not found")
	}

	if d := policy.CanViewSong(actor, song.Visibility); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}

	return song, nil
}

func (uc *songUseCase) List(actor entity.Actor) ([]*entity.Song, error) {
	songs, err := uc.songRepo.List(policy.SongListingScope(actor))
	if err != nil {
		uc.logger.Error("Failed to list songs: %v", err)
		return nil, Internal("Server error")
	}
	if len(songs) == 0 {
		return nil, NotFound("No songs found")
	}
	return songs, nil
}

// emptySearchMessage preserves the per-field wording of the empty-result
// responses, which are 404s rather than empty lists.
func emptySearchMessage(field entity.SongSearchField) string {
	switch field {
	case entity.SearchByAlbum:
		return "No songs found for this album"
	case entity.SearchByMusicDirector:
		return "No songs found by this music director"
	case entity.SearchBySinger:
		return "No songs found by this singer"
	default:
		return "No songs found with this name"
	}
}

func (uc *songUseCase) Search(actor entity.Actor, field entity.SongSearchField, term string) ([]*entity.Song, error) {
	songs, err := uc.songRepo.Search(field, term, policy.SongListingScope(actor))
	if err != nil {
		uc.logger.Error("Failed to search songs by %s: %v", field, err)
		return nil, Internal("Server error")
	}
	if len(songs) == 0 {
		return nil, NotFound(emptySearchMessage(field))
	}
	return songs, nil
}

func (uc *songUseCase) Update(actor entity.Actor, songID string, input SongInput) (*entity.Song, error) {
	if d := policy.CanManageSongs(actor); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}

	song, err := uc.songRepo.GetByID(songID)
	if err != nil {
		return nil, NotFound("Song not found")
	}

	if d := policy.CanUpdateSong(actor, song.CreatorID); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}

	if input.Name != "" {
		song.Name = input.Name
	}
	if input.Singer != "" {
		song.Singer = input.Singer
	}
	if input.MusicDirector != "" {
		song.MusicDirector = input.MusicDirector
	}
	if !input.ReleaseDate.IsZero() {
		song.ReleaseDate = input.ReleaseDate
	}
	if input.Album != "" {
		song.Album = input.Album
	}
	if input.Image != "" {
		song.Image = input.Image
	}
	if input.Visibility != nil {
		song.Visibility = *input.Visibility
	}

	if err := uc.songRepo.Update(song); err != nil {
		uc.logger.Error("Failed to update song %s: %v", songID, err)
		return nil, Internal("Server error")
	}

	return song, nil
}

// Delete checks the role only; unlike Update it does not re-check the
// creator.
func (uc *songUseCase) Delete(actor entity.Actor, songID string) error {
	if d := policy.CanManageSongs(actor); !d.Allowed {
		return Forbidden(d.Reason)
	}

	if _, err := uc.songRepo.GetByID(songID); err != nil {
		return NotFound("Song not found")
	}

	if err := uc.songRepo.Delete(songID); err != nil {
		uc.logger.Error("Failed to delete song %s: %v", songID, err)
		return Internal("Server error")
	}

	return nil
}

func (uc *songUseCase) SetVisibility(actor entity.Actor, songID string, visibility bool) (*entity.Song, error) {
	if d := policy.CanManageSongs(actor); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}

	song, err := uc.songRepo.GetByID(songID)
	if err != nil {
		return nil, NotFound("Song not found")
	}

	song.Visibility = visibility
	if err := uc.songRepo.Update(song); err != nil {
		uc.logger.Error("Failed to update song visibility %s: %v", songID, err)
		return nil, Internal("Server error")
	}

	return song, nil
}

func (uc *songUseCase) UploadImage(actor entity.Actor, songID string, file io.Reader, fileKey, contentType string) (*entity.Song, error) {
	if d := policy.CanManageSongs(actor); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}

	song, err := uc.songRepo.GetByID(songID)
	if err != nil {
		return nil, NotFound("Song not found")
	}

	imageURL, err := uc.s3Client.UploadFile(fileKey, file, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload song image: %v", err)
		return nil, Internal("Server error")
	}

	song.Image = imageURL
	if err := uc.songRepo.Update(song); err != nil {
		uc.logger.Error("Failed to save song image URL %s: %v", songID, err)
		return nil, Internal("Server error")
	}

	return song, nil
}
