package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"music-library/internal/entity"
	"music-library/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SongHandler struct {
	songUseCase usecase.SongUseCase
}

func NewSongHandler(songUseCase usecase.SongUseCase) *SongHandler {
	return &SongHandler{songUseCase: songUseCase}
}

type SongRequest struct {
	Name          string    `json:"name" binding:"required"`
	Singer        string    `json:"singer" binding:"required"`
	MusicDirector string    `json:"musicDirector" binding:"required"`
	ReleaseDate   time.Time `json:"releaseDate" binding:"required"`
	Album         string    `json:"album" binding:"required"`
	Image         string    `json:"image"`
	Visibility    *bool     `json:"visibility"`
}

type UpdateSongRequest struct {
	Name          string    `json:"name"`
	Singer        string    `json:"singer"`
	MusicDirector string    `json:"musicDirector"`
	ReleaseDate   time.Time `json:"releaseDate"`
	Album         string    `json:"album"`
	Image         string    `json:"image"`
	Visibility    *bool     `json:"visibility"`
}

type VisibilityRequest struct {
	Visibility *bool `json:"visibility"`
}

// Create godoc
// @Summary      Create a song
// @Tags         songs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SongRequest true "Song data"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /songs [post]
func (h *SongHandler) Create(c *gin.Context) {
	var req SongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	song, err := h.songUseCase.Create(actorFromContext(c), usecase.SongInput{
		Name:          req.Name,
		Singer:        req.Singer,
		MusicDirector: req.MusicDirector,
		ReleaseDate:   req.ReleaseDate,
		Album:         req.Album,
		Image:         req.Image,
		Visibility:    req.Visibility,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Song created", "song": song})
}

// List godoc
// @Summary      List songs
// @Description  Admins see every song, users only visible ones
// @Tags         songs
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Song
// @Failure      404  {object}  map[string]string
// @Router       /songs [get]
func (h *SongHandler) List(c *gin.Context) {
	songs, err := h.songUseCase.List(actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, songs)
}

// Get godoc
// @Summary      Get a song by id
// @Tags         songs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Song ID"
// @Success      200  {object}  entity.Song
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /songs/{id} [get]
func (h *SongHandler) Get(c *gin.Context) {
	song, err := h.songUseCase.Get(actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, song)
}

// search returns a handler matching one catalog column against the path
// value as a case-insensitive substring.
func (h *SongHandler) search(field entity.SongSearchField, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		songs, err := h.songUseCase.Search(actorFromContext(c), field, c.Param(param))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, songs)
	}
}

func (h *SongHandler) SearchByName() gin.HandlerFunc {
	return h.search(entity.SearchByName, "name")
}

func (h *SongHandler) SearchByAlbum() gin.HandlerFunc {
	return h.search(entity.SearchByAlbum, "album")
}

func (h *SongHandler) SearchByMusicDirector() gin.HandlerFunc {
	return h.search(entity.SearchByMusicDirector, "musicDirector")
}

func (h *SongHandler) SearchBySinger() gin.HandlerFunc {
	return h.search(entity.SearchBySinger, "singer")
}

// Update godoc
// @Summary      Update a song
// @Tags         songs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Song ID"
// @Param        request body UpdateSongRequest true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /songs/{id} [put]
func (h *SongHandler) Update(c *gin.Context) {
	var req UpdateSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	song, err := h.songUseCase.Update(actorFromContext(c), c.Param("id"), usecase.SongInput{
		Name:          req.Name,
		Singer:        req.Singer,
		MusicDirector: req.MusicDirector,
		ReleaseDate:   req.ReleaseDate,
		Album:         req.Album,
		Image:         req.Image,
		Visibility:    req.Visibility,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Song updated", "song": song})
}

// Delete godoc
// @Summary      Delete a song
// @Tags         songs
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Song ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /songs/{id} [delete]
func (h *SongHandler) Delete(c *gin.Context) {
	if err := h.songUseCase.Delete(actorFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Song deleted"})
}

// SetVisibility godoc
// @Summary      Toggle a song's visibility flag
// @Tags         songs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Song ID"
// @Param        request body VisibilityRequest true "Visibility flag"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /songs/visibility/{id} [put]
func (h *SongHandler) SetVisibility(c *gin.Context) {
	var req VisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Visibility == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid visibility value"})
		return
	}

	song, err := h.songUseCase.SetVisibility(actorFromContext(c), c.Param("id"), *req.Visibility)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Song visibility updated", "song": song})
}

// UploadImage godoc
// @Summary      Upload a cover image for a song
// @Tags         songs
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Song ID"
// @Param        image formData file true "Cover image file"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /songs/{id}/image [post]
func (h *SongHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Image file is required"})
		return
	}

	ext := filepath.Ext(file.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".gif" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid image format. Only jpg, jpeg, png, gif are allowed"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process file"})
		return
	}
	defer src.Close()

	fileKey := fmt.Sprintf("covers/%s/%s%s", c.Param("id"), uuid.New().String(), ext)
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	song, err := h.songUseCase.UploadImage(actorFromContext(c), c.Param("id"), src, fileKey, contentType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Song image updated", "song": song})
}
