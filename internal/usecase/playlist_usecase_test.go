package usecase

import (
	"testing"

	"music-library/internal/entity"
	"music-library/pkg/logger"

	"github.com/stretchr/testify/assert"
)

func testActor() entity.Actor {
	return entity.Actor{ID: "user-123", Role: entity.RoleUser}
}

func adminActor() entity.Actor {
	return entity.Actor{ID: "admin-123", Role: entity.RoleAdmin}
}

func TestCreatePlaylist_Success(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	playlistRepo.On("Create", &entity.Playlist{
		Name:    "Road Trip",
		UserID:  "user-123",
		SongIDs: []string{"song-1"},
	}).Return(nil)

	playlist, err := uc.Create(testActor(), "Road Trip", []string{"song-1"})

	assert.NoError(t, err)
	assert.Equal(t, "Road Trip", playlist.Name)
	assert.Equal(t, "user-123", playlist.UserID)
	playlistRepo.AssertExpectations(t)
}

func TestCreatePlaylist_AdminDenied(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	_, err := uc.Create(adminActor(), "Road Trip", nil)

	kind, ok := errKind(err)
	assert.True(t, ok)
	assert.Equal(t, KindForbidden, kind)
	playlistRepo.AssertNotCalled(t, "Create")
}

func TestCreatePlaylist_NilSongsBecomeEmpty(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	playlistRepo.On("Create", &entity.Playlist{
		Name:    "Empty",
		UserID:  "user-123",
		SongIDs: []string{},
	}).Return(nil)

	playlist, err := uc.Create(testActor(), "Empty", nil)

	assert.NoError(t, err)
	assert.NotNil(t, playlist.SongIDs)
	assert.Len(t, playlist.SongIDs, 0)
}

func TestGetPlaylist_OtherUserForbidden(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	playlistRepo.On("GetByID", "pl-1").Return(&entity.Playlist{
		ID:     "pl-1",
		UserID: "someone-else",
	}, nil)

	_, err := uc.Get(testActor(), "pl-1")

	kind, ok := errKind(err)
	assert.True(t, ok)
	assert.Equal(t, KindForbidden, kind)
}

func TestGetPlaylist_AdminSeesAny(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	playlistRepo.On("GetByID", "pl-1").Return(&entity.Playlist{
		ID:      "pl-1",
		UserID:  "someone-else",
		SongIDs: []string{},
	}, nil)

	playlist, err := uc.Get(adminActor(), "pl-1")

	assert.NoError(t, err)
	assert.Equal(t, "pl-1", playlist.ID)
}

func TestUpdatePlaylist_AdminDeniedOnOthers(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	playlistRepo.On("GetByID", "pl-1").Return(&entity.Playlist{
		ID:     "pl-1",
		UserID: "user-123",
	}, nil)

	name := "Renamed"
	_, err := uc.Update(adminActor(), "pl-1", PlaylistInput{Name: &name})

	kind, ok := errKind(err)
	assert.True(t, ok)
	assert.Equal(t, KindForbidden, kind)
	playlistRepo.AssertNotCalled(t, "Update")
}

func TestUpdatePlaylist_OwnerSuccess(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	stored := &entity.Playlist{ID: "pl-1", UserID: "user-123", Name: "Old", SongIDs: []string{"song-1"}}
	playlistRepo.On("GetByID", "pl-1").Return(stored, nil)
	playlistRepo.On("Update", stored).Return(nil)

	name := "New"
	playlist, err := uc.Update(testActor(), "pl-1", PlaylistInput{Name: &name})

	assert.NoError(t, err)
	assert.Equal(t, "New", playlist.Name)
	assert.Equal(t, []string{"song-1"}, playlist.SongIDs)
	playlistRepo.AssertExpectations(t)
}

func TestDeletePlaylist_AdminDeniedOnOthers(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	playlistRepo.On("GetByID", "pl-1").Return(&entity.Playlist{
		ID:     "pl-1",
		UserID: "user-123",
	}, nil)

	err := uc.Delete(adminActor(), "pl-1")

	kind, ok := errKind(err)
	assert.True(t, ok)
	assert.Equal(t, KindForbidden, kind)
	playlistRepo.AssertNotCalled(t, "Delete")
}

func TestAddSongs_AppendsInRequestOrder(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	stored := &entity.Playlist{ID: "pl-1", UserID: "user-123", SongIDs: []string{"song-1"}}
	playlistRepo.On("GetByID", "pl-1").Return(stored, nil)
	songRepo.On("GetByIDs", []string{"song-2", "song-3"}).Return([]*entity.Song{
		{ID: "song-3", Name: "Three"},
		{ID: "song-2", Name: "Two"},
	}, nil)
	playlistRepo.On("Update", stored).Return(nil)
	songRepo.On("GetByIDs", []string{"song-1", "song-2", "song-3"}).Return([]*entity.Song{
		{ID: "song-1", Name: "One"},
		{ID: "song-2", Name: "Two"},
		{ID: "song-3", Name: "Three"},
	}, nil)

	result, err := uc.AddSongs(testActor(), "pl-1", []string{"song-2", "song-3"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"song-2", "song-3"}, result.Added)
	assert.Empty(t, result.AlreadyInPlaylist)
	assert.Equal(t, []string{"song-1", "song-2", "song-3"}, result.Playlist.SongIDs)
	playlistRepo.AssertExpectations(t)
	songRepo.AssertExpectations(t)
}

func TestAddSongs_ReAddIsIdempotent(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	stored := &entity.Playlist{ID: "pl-1", UserID: "user-123", SongIDs: []string{"song-1"}}
	playlistRepo.On("GetByID", "pl-1").Return(stored, nil)
	songRepo.On("GetByIDs", []string{"song-1"}).Return([]*entity.Song{
		{ID: "song-1", Name: "One"},
	}, nil)

	result, err := uc.AddSongs(testActor(), "pl-1", []string{"song-1"})

	assert.NoError(t, err)
	assert.Empty(t, result.Added)
	assert.Equal(t, []string{"song-1"}, result.AlreadyInPlaylist)
	assert.Len(t, result.Playlist.SongIDs, 1)
	playlistRepo.AssertNotCalled(t, "Update")
}

func TestAddSongs_DedupesWithinRequest(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	stored := &entity.Playlist{ID: "pl-1", UserID: "user-123", SongIDs: []string{}}
	playlistRepo.On("GetByID", "pl-1").Return(stored, nil)
	songRepo.On("GetByIDs", []string{"song-1", "song-1"}).Return([]*entity.Song{
		{ID: "song-1", Name: "One"},
	}, nil)
	playlistRepo.On("Update", stored).Return(nil)
	songRepo.On("GetByIDs", []string{"song-1"}).Return([]*entity.Song{
		{ID: "song-1", Name: "One"},
	}, nil)

	result, err := uc.AddSongs(testActor(), "pl-1", []string{"song-1", "song-1"})

	assert.NoError(t, err)
	assert.Equal(t, []string{"song-1"}, result.Added)
	assert.Equal(t, []string{"song-1"}, result.AlreadyInPlaylist)
	assert.Equal(t, []string{"song-1"}, result.Playlist.SongIDs)
}

func TestAddSongs_UnknownSongAbortsWholeRequest(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	stored := &entity.Playlist{ID: "pl-1", UserID: "user-123", SongIDs: []string{}}
	playlistRepo.On("GetByID", "pl-1").Return(stored, nil)
	songRepo.On("GetByIDs", []string{"song-1", "song-missing"}).Return([]*entity.Song{
		{ID: "song-1", Name: "One"},
	}, nil)

	_, err := uc.AddSongs(testActor(), "pl-1", []string{"song-1", "song-missing"})

	kind, ok := errKind(err)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
	assert.Equal(t, "Song with ID song-missing not found", err.Error())
	assert.Empty(t, stored.SongIDs)
	playlistRepo.AssertNotCalled(t, "Update")
}

func TestRemoveSong_RemovesEveryOccurrence(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	stored := &entity.Playlist{ID: "pl-1", UserID: "user-123", SongIDs: []string{"song-1", "song-2", "song-1"}}
	playlistRepo.On("GetByID", "pl-1").Return(stored, nil)
	playlistRepo.On("Update", stored).Return(nil)
	songRepo.On("GetByIDs", []string{"song-2"}).Return([]*entity.Song{
		{ID: "song-2", Name: "Two"},
	}, nil)

	playlist, err := uc.RemoveSong(testActor(), "pl-1", "song-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"song-2"}, playlist.SongIDs)
	playlistRepo.AssertExpectations(t)
}

func TestRemoveSong_AbsentIDIsNoOp(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	stored := &entity.Playlist{ID: "pl-1", UserID: "user-123", SongIDs: []string{"song-1"}}
	playlistRepo.On("GetByID", "pl-1").Return(stored, nil)
	playlistRepo.On("Update", stored).Return(nil)
	songRepo.On("GetByIDs", []string{"song-1"}).Return([]*entity.Song{
		{ID: "song-1", Name: "One"},
	}, nil)

	playlist, err := uc.RemoveSong(testActor(), "pl-1", "song-ghost")

	assert.NoError(t, err)
	assert.Equal(t, []string{"song-1"}, playlist.SongIDs)
}

func TestPlay_EmptyPlaylist(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	playlistRepo.On("GetByID", "pl-1").Return(&entity.Playlist{
		ID:      "pl-1",
		UserID:  "user-123",
		SongIDs: []string{},
	}, nil)

	_, err := uc.Play(testActor(), "pl-1")

	kind, ok := errKind(err)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
	assert.Equal(t, "No songs in this playlist", err.Error())
}

func TestPlay_FirstSongInStoredOrder(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	playlistRepo.On("GetByID", "pl-1").Return(&entity.Playlist{
		ID:      "pl-1",
		UserID:  "user-123",
		SongIDs: []string{"song-2", "song-1"},
	}, nil)
	songRepo.On("GetByID", "song-2").Return(&entity.Song{ID: "song-2", Name: "Midnight Rain"}, nil)

	message, err := uc.Play(testActor(), "pl-1")

	assert.NoError(t, err)
	assert.Equal(t, "Playing song: Midnight Rain", message)
}

func TestPlay_OtherUserForbidden(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	playlistRepo.On("GetByID", "pl-1").Return(&entity.Playlist{
		ID:      "pl-1",
		UserID:  "someone-else",
		SongIDs: []string{"song-1"},
	}, nil)

	_, err := uc.Play(testActor(), "pl-1")

	kind, ok := errKind(err)
	assert.True(t, ok)
	assert.Equal(t, KindForbidden, kind)
}

func TestStop_NoOwnershipCheck(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	playlistRepo.On("GetByID", "pl-1").Return(&entity.Playlist{
		ID:     "pl-1",
		UserID: "someone-else",
	}, nil)

	message, err := uc.Stop(testActor(), "pl-1")

	assert.NoError(t, err)
	assert.Equal(t, "Playback stopped", message)
}

func TestStop_MissingPlaylist(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	playlistRepo.On("GetByID", "pl-missing").Return(nil, assert.AnError)

	_, err := uc.Stop(testActor(), "pl-missing")

	kind, ok := errKind(err)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
}

func TestShuffle_NeverMutatesStoredOrder(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	stored := &entity.Playlist{ID: "pl-1", UserID: "user-123", SongIDs: []string{"song-1", "song-2", "song-3"}}
	songs := []*entity.Song{
		{ID: "song-1", Name: "One"},
		{ID: "song-2", Name: "Two"},
		{ID: "song-3", Name: "Three"},
	}
	playlistRepo.On("GetByID", "pl-1").Return(stored, nil)
	songRepo.On("GetByIDs", []string{"song-1", "song-2", "song-3"}).Return(songs, nil)

	shuffled, err := uc.Shuffle(testActor(), "pl-1")

	assert.NoError(t, err)
	assert.Len(t, shuffled, 3)
	assert.ElementsMatch(t, songs, shuffled)
	assert.Equal(t, []string{"song-1", "song-2", "song-3"}, stored.SongIDs)
	playlistRepo.AssertNotCalled(t, "Update")
}

func TestRepeat_One(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	playlistRepo.On("GetByID", "pl-1").Return(&entity.Playlist{
		ID:      "pl-1",
		UserID:  "user-123",
		SongIDs: []string{"song-1"},
	}, nil)
	songRepo.On("GetByID", "song-1").Return(&entity.Song{ID: "song-1", Name: "One"}, nil)

	message, err := uc.Repeat(testActor(), "pl-1", entity.RepeatOne)

	assert.NoError(t, err)
	assert.Equal(t, "Repeating song: One", message)
}

func TestRepeat_OneOnEmptyPlaylist(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	playlistRepo.On("GetByID", "pl-1").Return(&entity.Playlist{
		ID:      "pl-1",
		UserID:  "user-123",
		SongIDs: []string{},
	}, nil)

	_, err := uc.Repeat(testActor(), "pl-1", entity.RepeatOne)

	kind, ok := errKind(err)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
	assert.Equal(t, "No songs in this playlist", err.Error())
}

func TestRepeat_All(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	playlistRepo.On("GetByID", "pl-1").Return(&entity.Playlist{
		ID:      "pl-1",
		UserID:  "user-123",
		SongIDs: []string{},
	}, nil)

	message, err := uc.Repeat(testActor(), "pl-1", entity.RepeatAll)

	assert.NoError(t, err)
	assert.Equal(t, "Repeating entire playlist", message)
	songRepo.AssertNotCalled(t, "GetByID")
}

func TestSearchBySongName_NoMatchingSongs(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	songRepo.On("Search", entity.SearchByName, "nothing", true).Return([]*entity.Song{}, nil)

	_, err := uc.SearchBySongName(testActor(), "nothing")

	kind, ok := errKind(err)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
	assert.Equal(t, "No songs found matching your search criteria", err.Error())
	playlistRepo.AssertNotCalled(t, "FindContainingSongs")
}

func TestSearchBySongName_ScopesToOwner(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	songRepo.On("Search", entity.SearchByName, "rain", true).Return([]*entity.Song{
		{ID: "song-1", Name: "Midnight Rain"},
	}, nil)
	playlistRepo.On("FindContainingSongs", []string{"song-1"}, "user-123").Return([]*entity.Playlist{
		{ID: "pl-1", UserID: "user-123", SongIDs: []string{"song-1"}},
	}, nil)
	songRepo.On("GetByIDs", []string{"song-1"}).Return([]*entity.Song{
		{ID: "song-1", Name: "Midnight Rain"},
	}, nil)

	playlists, err := uc.SearchBySongName(testActor(), "rain")

	assert.NoError(t, err)
	assert.Len(t, playlists, 1)
	playlistRepo.AssertExpectations(t)
}

func TestSearchBySongName_AdminSearchesAllPlaylists(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	songRepo.On("Search", entity.SearchByName, "rain", false).Return([]*entity.Song{
		{ID: "song-1", Name: "Midnight Rain"},
	}, nil)
	playlistRepo.On("FindContainingSongs", []string{"song-1"}, "").Return([]*entity.Playlist{}, nil)

	_, err := uc.SearchBySongName(adminActor(), "rain")

	kind, ok := errKind(err)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
	assert.Equal(t, "No playlists contain the searched songs", err.Error())
}

func TestListPlaylists_EmptyIsNotFound(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	playlistRepo.On("ListByOwner", "user-123").Return([]*entity.Playlist{}, nil)

	_, err := uc.List(testActor())

	kind, ok := errKind(err)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, kind)
	assert.Equal(t, "No playlists found", err.Error())
}

func TestListPlaylists_AdminSeesAll(t *testing.T) {
	playlistRepo := new(MockPlaylistRepository)
	songRepo := new(MockSongRepository)
	uc := NewPlaylistUseCase(playlistRepo, songRepo, logger.New())

	playlistRepo.On("ListAll").Return([]*entity.Playlist{
		{ID: "pl-1", UserID: "someone-else", SongIDs: []string{}},
	}, nil)

	playlists, err := uc.List(adminActor())

	assert.NoError(t, err)
	assert.Len(t, playlists, 1)
	playlistRepo.AssertNotCalled(t, "ListByOwner")
}
