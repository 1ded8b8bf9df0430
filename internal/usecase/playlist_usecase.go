package usecase

import (
	"fmt"
	"math/rand"

	"music-library/internal/entity"
	"music-library/internal/policy"
	"music-library/internal/repo/persistent"
	"music-library/pkg/logger"
)

type PlaylistInput struct {
	Name    *string
	SongIDs *[]string
}

// AddSongsResult reports the outcome of an add operation: which ids were
// appended and which were skipped as duplicates.
type AddSongsResult struct {
	Playlist          *entity.Playlist
	Added             []string
	AlreadyInPlaylist []string
}

type PlaylistUseCase interface {
	Create(actor entity.Actor, name string, songIDs []string) (*entity.Playlist, error)
	Get(actor entity.Actor, playlistID string) (*entity.Playlist, error)
	List(actor entity.Actor) ([]*entity.Playlist, error)
	Update(actor entity.Actor, playlistID string, input PlaylistInput) (*entity.Playlist, error)
	Delete(actor entity.Actor, playlistID string) error
	AddSongs(actor entity.Actor, playlistID string, songIDs []string) (*AddSongsResult, error)
	RemoveSong(actor entity.Actor, playlistID, songID string) (*entity.Playlist, error)
	SearchBySongName(actor entity.Actor, name string) ([]*entity.Playlist, error)
	Play(actor entity.Actor, playlistID string) (string, error)
	Stop(actor entity.Actor, playlistID string) (string, error)
	Shuffle(actor entity.Actor, playlistID string) ([]*entity.Song, error)
	Repeat(actor entity.Actor, playlistID string, mode entity.RepeatMode) (string, error)
}

type playlistUseCase struct {
	playlistRepo persistent.PlaylistRepository
	songRepo     persistent.SongRepository
	logger       *logger.Logger
}

func NewPlaylistUseCase(playlistRepo persistent.PlaylistRepository, songRepo persistent.SongRepository, logger *logger.Logger) PlaylistUseCase {
	return &playlistUseCase{
		playlistRepo: playlistRepo,
		songRepo:     songRepo,
		logger:       logger,
	}
}

func (uc *playlistUseCase) Create(actor entity.Actor, name string, songIDs []string) (*entity.Playlist, error) {
	if d := policy.CanCreatePlaylist(actor); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}

	if songIDs == nil {
		songIDs = []string{}
	}

	playlist := &entity.Playlist{
		Name:    name,
		UserID:  actor.ID,
		SongIDs: songIDs,
	}

	if err := uc.playlistRepo.Create(playlist); err != nil {
		uc.logger.Error("Failed to create playlist: %v", err)
		return nil, Internal("Server error")
	}

	return playlist, nil
}

func (uc *playlistUseCase) Get(actor entity.Actor, playlistID string) (*entity.Playlist, error) {
	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return nil, NotFound("Playlist not found")
	}

	if d := policy.CanViewPlaylist(actor, playlist.UserID); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}

	if err := uc.populateSongs(playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (uc *playlistUseCase) List(actor entity.Actor) ([]*entity.Playlist, error) {
	var (
		playlists []*entity.Playlist
		err       error
	)
	if actor.IsAdmin() {
		playlists, err = uc.playlistRepo.ListAll()
	} else {
		playlists, err = uc.playlistRepo.ListByOwner(actor.ID)
	}
	if err != nil {
		uc.logger.Error("Failed to list playlists: %v", err)
		return nil, Internal("Server error")
	}
	if len(playlists) == 0 {
		return nil, NotFound("No playlists found")
	}

	for _, playlist := range playlists {
		if err := uc.populateSongs(playlist); err != nil {
			return nil, err
		}
	}
	return playlists, nil
}

// Update applies a raw replacement of name and song list. The owner never
// changes, and a raw song-list update may introduce duplicates; only the
// add path enforces uniqueness.
func (uc *playlistUseCase) Update(actor entity.Actor, playlistID string, input PlaylistInput) (*entity.Playlist, error) {
	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return nil, NotFound("Playlist not found")
	}

	if d := policy.CanUpdatePlaylist(actor, playlist.UserID); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}

	if input.Name != nil {
		playlist.Name = *input.Name
	}
	if input.SongIDs != nil {
		playlist.SongIDs = *input.SongIDs
	}

	if err := uc.playlistRepo.Update(playlist); err != nil {
		uc.logger.Error("Failed to update playlist %s: %v", playlistID, err)
		return nil, Internal("Server error")
	}

	return playlist, nil
}

func (uc *playlistUseCase) Delete(actor entity.Actor, playlistID string) error {
	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return NotFound("Playlist not found")
	}

	if d := policy.CanDeletePlaylist(actor, playlist.UserID); !d.Allowed {
		return Forbidden(d.Reason)
	}

	if err := uc.playlistRepo.Delete(playlistID); err != nil {
		uc.logger.Error("Failed to delete playlist %s: %v", playlistID, err)
		return Internal("Server error")
	}

	return nil
}

// AddSongs validates every requested id before touching the playlist: one
// missing song fails the whole call and nothing is added. Valid ids are
// partitioned into already-present and new; new ids are appended in request
// order and persisted in a single write.
func (uc *playlistUseCase) AddSongs(actor entity.Actor, playlistID string, songIDs []string) (*AddSongsResult, error) {
	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return nil, NotFound("Playlist not found")
	}

	if d := policy.CanModifyPlaylistSongs(actor, playlist.UserID); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}

	songs, err := uc.songRepo.GetByIDs(songIDs)
	if err != nil {
		uc.logger.Error("Failed to look up songs: %v", err)
		return nil, Internal("Server error")
	}
	known := make(map[string]bool, len(songs))
	for _, song := range songs {
		known[song.ID] = true
	}
	for _, songID := range songIDs {
		if !known[songID] {
			return nil, NotFound(fmt.Sprintf("Song with ID %s not found", songID))
		}
	}

	present := make(map[string]bool, len(playlist.SongIDs))
	for _, songID := range playlist.SongIDs {
		present[songID] = true
	}

	result := &AddSongsResult{Playlist: playlist}
	for _, songID := range songIDs {
		if present[songID] {
			result.AlreadyInPlaylist = append(result.AlreadyInPlaylist, songID)
			continue
		}
		present[songID] = true
		result.Added = append(result.Added, songID)
	}

	if len(result.Added) > 0 {
		playlist.SongIDs = append(playlist.SongIDs, result.Added...)
		if err := uc.playlistRepo.Update(playlist); err != nil {
			uc.logger.Error("Failed to update playlist %s: %v", playlistID, err)
			return nil, Internal("Server error")
		}
	}

	if err := uc.populateSongs(playlist); err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveSong filters out every occurrence of songID. Removing an absent id
// is a no-op, not an error.
func (uc *playlistUseCase) RemoveSong(actor entity.Actor, playlistID, songID string) (*entity.Playlist, error) {
	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return nil, NotFound("Playlist not found")
	}

	if d := policy.CanModifyPlaylistSongs(actor, playlist.UserID); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}

	remaining := make([]string, 0, len(playlist.SongIDs))
	for _, id := range playlist.SongIDs {
		if id != songID {
			remaining = append(remaining, id)
		}
	}
	playlist.SongIDs = remaining

	if err := uc.playlistRepo.Update(playlist); err != nil {
		uc.logger.Error("Failed to update playlist %s: %v", playlistID, err)
		return nil, Internal("Server error")
	}

	if err := uc.populateSongs(playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// SearchBySongName finds the actor's playlists (all playlists for admins)
// containing songs whose name matches the case-insensitive substring.
func (uc *playlistUseCase) SearchBySongName(actor entity.Actor, name string) ([]*entity.Playlist, error) {
	songs, err := uc.songRepo.Search(entity.SearchByName, name, policy.SongListingScope(actor))
	if err != nil {
		uc.logger.Error("Failed to search songs: %v", err)
		return nil, Internal("Server error")
	}
	if len(songs) == 0 {
		return nil, NotFound("No songs found matching your search criteria")
	}

	songIDs := make([]string, len(songs))
	for i, song := range songs {
		songIDs[i] = song.ID
	}

	ownerID := ""
	if !actor.IsAdmin() {
		ownerID = actor.ID
	}
	playlists, err := uc.playlistRepo.FindContainingSongs(songIDs, ownerID)
	if err != nil {
		uc.logger.Error("Failed to search playlists: %v", err)
		return nil, Internal("Server error")
	}
	if len(playlists) == 0 {
		return nil, NotFound("No playlists contain the searched songs")
	}

	for _, playlist := range playlists {
		if err := uc.populateSongs(playlist); err != nil {
			return nil, err
		}
	}
	return playlists, nil
}

// Play names the first song in stored order. An empty playlist is a
// not-found condition, never a fault.
func (uc *playlistUseCase) Play(actor entity.Actor, playlistID string) (string, error) {
	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return "", NotFound("Playlist not found")
	}

	if d := policy.CanControlPlayback(actor, playlist.UserID); !d.Allowed {
		return "", Forbidden(d.Reason)
	}

	if len(playlist.SongIDs) == 0 {
		return "", NotFound("No songs in this playlist")
	}

	song, err := uc.songRepo.GetByID(playlist.SongIDs[0])
	if err != nil {
		return "", NotFound("Song not found")
	}

	return fmt.Sprintf("Playing song: %s", song.Name), nil
}

// Stop is a stateless acknowledgement. It only requires an authenticated
// actor and an existing playlist; there is no ownership check here.
func (uc *playlistUseCase) Stop(actor entity.Actor, playlistID string) (string, error) {
	if _, err := uc.playlistRepo.GetByID(playlistID); err != nil {
		return "", NotFound("Playlist not found")
	}
	return "Playback stopped", nil
}

// Shuffle returns a uniform Fisher-Yates permutation of the populated song
// list for display only. The stored order is never touched.
func (uc *playlistUseCase) Shuffle(actor entity.Actor, playlistID string) ([]*entity.Song, error) {
	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return nil, NotFound("Playlist not found")
	}

	if d := policy.CanControlPlayback(actor, playlist.UserID); !d.Allowed {
		return nil, Forbidden(d.Reason)
	}

	if err := uc.populateSongs(playlist); err != nil {
		return nil, err
	}

	shuffled := make([]*entity.Song, len(playlist.Songs))
	copy(shuffled, playlist.Songs)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled, nil
}

func (uc *playlistUseCase) Repeat(actor entity.Actor, playlistID string, mode entity.RepeatMode) (string, error) {
	playlist, err := uc.playlistRepo.GetByID(playlistID)
	if err != nil {
		return "", NotFound("Playlist not found")
	}

	if d := policy.CanControlPlayback(actor, playlist.UserID); !d.Allowed {
		return "", Forbidden(d.Reason)
	}

	if mode == entity.RepeatOne {
		if len(playlist.SongIDs) == 0 {
			return "", NotFound("No songs in this playlist")
		}
		song, err := uc.songRepo.GetByID(playlist.SongIDs[0])
		if err != nil {
			return "", NotFound("Song not found")
		}
		return fmt.Sprintf("Repeating song: %s", song.Name), nil
	}

	return "Repeating entire playlist", nil
}

// populateSongs resolves the id sequence into song records, preserving the
// stored order. Dangling references are skipped.
func (uc *playlistUseCase) populateSongs(playlist *entity.Playlist) error {
	if len(playlist.SongIDs) == 0 {
		playlist.Songs = []*entity.Song{}
		return nil
	}

	songs, err := uc.songRepo.GetByIDs(playlist.SongIDs)
	if err != nil {
		uc.logger.Error("Failed to load playlist songs: %v", err)
		return Internal("Server error")
	}

	byID := make(map[string]*entity.Song, len(songs))
	for _, song := range songs {
		byID[song.ID] = song
	}

	ordered := make([]*entity.Song, 0, len(playlist.SongIDs))
	for _, songID := range playlist.SongIDs {
		if song, ok := byID[songID]; ok {
			ordered = append(ordered, song)
		}
	}
	playlist.Songs = ordered
	return nil
}
