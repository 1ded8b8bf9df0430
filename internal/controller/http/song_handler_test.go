package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"music-library/internal/entity"
	"music-library/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSongUseCase is a mock implementation of SongUseCase
type MockSongUseCase struct {
	mock.Mock
}

func (m *MockSongUseCase) Create(actor entity.Actor, input usecase.SongInput) (*entity.Song, error) {
	args := m.Called(actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Song), args.Error(1)
}

func (m *MockSongUseCase) Get(actor entity.Actor, songID string) (*entity.Song, error) {
	args := m.Called(actor, songID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Song), args.Error(1)
}

func (m *MockSongUseCase) List(actor entity.Actor) ([]*entity.Song, error) {
	args := m.Called(actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Song), args.Error(1)
}

func (m *MockSongUseCase) Search(actor entity.Actor, field entity.SongSearchField, term string) ([]*entity.Song, error) {
	args := m.Called(actor, field, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Song), args.Error(1)
}

func (m *MockSongUseCase) Update(actor entity.Actor, songID string, input usecase.SongInput) (*entity.Song, error) {
	args := m.Called(actor, songID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Song), args.Error(1)
}

func (m *MockSongUseCase) Delete(actor entity.Actor, songID string) error {
	args := m.Called(actor, songID)
	return args.Error(0)
}

func (m *MockSongUseCase) SetVisibility(actor entity.Actor, songID string, visibility bool) (*entity.Song, error) {
	args := m.Called(actor, songID, visibility)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Song), args.Error(1)
}

func (m *MockSongUseCase) UploadImage(actor entity.Actor, songID string, file io.Reader, fileKey, contentType string) (*entity.Song, error) {
	args := m.Called(actor, songID, file, fileKey, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Song), args.Error(1)
}

var _ usecase.SongUseCase = (*MockSongUseCase)(nil)

func TestListSongs_BareArray(t *testing.T) {
	mockUseCase := new(MockSongUseCase)
	handler := NewSongHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/songs", asActor("user-123", entity.RoleUser, handler.List))

	actor := entity.Actor{ID: "user-123", Role: entity.RoleUser}
	mockUseCase.On("List", actor).Return([]*entity.Song{
		{ID: "song-1", Name: "Alpha", Visibility: true},
		{ID: "song-2", Name: "Midnight Rain", Visibility: true},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/songs", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 2, len(response))
	mockUseCase.AssertExpectations(t)
}

func TestListSongs_EmptyIs404(t *testing.T) {
	mockUseCase := new(MockSongUseCase)
	handler := NewSongHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/songs", asActor("user-123", entity.RoleUser, handler.List))

	actor := entity.Actor{ID: "user-123", Role: entity.RoleUser}
	mockUseCase.On("List", actor).Return(nil, usecase.NotFound("No songs found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/songs", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "No songs found", response["message"])
}

func TestGetSong_HiddenForbidden(t *testing.T) {
	mockUseCase := new(MockSongUseCase)
	handler := NewSongHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/songs/:id", asActor("user-123", entity.RoleUser, handler.Get))

	actor := entity.Actor{ID: "user-123", Role: entity.RoleUser}
	mockUseCase.On("Get", actor, "song-1").Return(nil, usecase.Forbidden("This song is not available"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/songs/song-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateSong_UserForbidden(t *testing.T) {
	mockUseCase := new(MockSongUseCase)
	handler := NewSongHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/songs", asActor("user-123", entity.RoleUser, handler.Create))

	mockUseCase.On("Create", mock.Anything, mock.Anything).Return(nil, usecase.Forbidden("Admins only"))

	body := `{"name":"Alpha","singer":"Nova","musicDirector":"Lee","releaseDate":"2024-01-01T00:00:00Z","album":"Dawn"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/songs", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSearchByName_NoMatches(t *testing.T) {
	mockUseCase := new(MockSongUseCase)
	handler := NewSongHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/songs/name/:name", asActor("user-123", entity.RoleUser, handler.SearchByName()))

	actor := entity.Actor{ID: "user-123", Role: entity.RoleUser}
	mockUseCase.On("Search", actor, entity.SearchByName, "zzz").
		Return(nil, usecase.NotFound("No songs found with this name"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/songs/name/zzz", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "No songs found with this name", response["message"])
}

func TestSearchBySinger_Success(t *testing.T) {
	mockUseCase := new(MockSongUseCase)
	handler := NewSongHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/songs/singer/:singer", asActor("user-123", entity.RoleUser, handler.SearchBySinger()))

	actor := entity.Actor{ID: "user-123", Role: entity.RoleUser}
	mockUseCase.On("Search", actor, entity.SearchBySinger, "nova").Return([]*entity.Song{
		{ID: "song-1", Singer: "Nova", Visibility: true},
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/songs/singer/nova", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, 1, len(response))
}

func TestSetVisibility_MissingFlag(t *testing.T) {
	mockUseCase := new(MockSongUseCase)
	handler := NewSongHandler(mockUseCase)

	router := setupTestRouter()
	router.PUT("/songs/visibility/:id", asActor("admin-123", entity.RoleAdmin, handler.SetVisibility))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/songs/visibility/song-1", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Invalid visibility value", response["message"])
	mockUseCase.AssertNotCalled(t, "SetVisibility")
}

func TestSetVisibility_Success(t *testing.T) {
	mockUseCase := new(MockSongUseCase)
	handler := NewSongHandler(mockUseCase)

	router := setupTestRouter()
	router.PUT("/songs/visibility/:id", asActor("admin-123", entity.RoleAdmin, handler.SetVisibility))

	actor := entity.Actor{ID: "admin-123", Role: entity.RoleAdmin}
	mockUseCase.On("SetVisibility", actor, "song-1", false).Return(&entity.Song{
		ID:         "song-1",
		Name:       "Alpha",
		Visibility: false,
	}, nil)

	body := `{"visibility":false}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/songs/visibility/song-1", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Song visibility updated", response["message"])
	mockUseCase.AssertExpectations(t)
}

func TestDeleteSong_Success(t *testing.T) {
	mockUseCase := new(MockSongUseCase)
	handler := NewSongHandler(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/songs/:id", asActor("admin-123", entity.RoleAdmin, handler.Delete))

	actor := entity.Actor{ID: "admin-123", Role: entity.RoleAdmin}
	mockUseCase.On("Delete", actor, "song-1").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/songs/song-1", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Song deleted", response["message"])
}

func TestUploadImage_InvalidExtension(t *testing.T) {
	mockUseCase := new(MockSongUseCase)
	handler := NewSongHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/songs/:id/image", asActor("admin-123", entity.RoleAdmin, handler.UploadImage))

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, _ := writer.CreateFormFile("image", "cover.txt")
	part.Write([]byte("not an image"))
	writer.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/songs/song-1/image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Invalid image format. Only jpg, jpeg, png, gif are allowed", response["message"])
	mockUseCase.AssertNotCalled(t, "UploadImage")
}

func TestUploadImage_MissingFile(t *testing.T) {
	mockUseCase := new(MockSongUseCase)
	handler := NewSongHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/songs/:id/image", asActor("admin-123", entity.RoleAdmin, handler.UploadImage))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/songs/song-1/image", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Image file is required", response["message"])
}
