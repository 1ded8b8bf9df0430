package http

import (
	"net/http"

	"music-library/internal/entity"
	"music-library/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PlaylistHandler struct {
	playlistUseCase usecase.PlaylistUseCase
}

func NewPlaylistHandler(playlistUseCase usecase.PlaylistUseCase) *PlaylistHandler {
	return &PlaylistHandler{playlistUseCase: playlistUseCase}
}

type CreatePlaylistRequest struct {
	Name    string   `json:"name" binding:"required"`
	SongIDs []string `json:"songs"`
}

type UpdatePlaylistRequest struct {
	Name    *string   `json:"name"`
	SongIDs *[]string `json:"songs"`
}

type AddSongsRequest struct {
	SongIDs []string `json:"songIds"`
}

type RemoveSongRequest struct {
	SongID string `json:"songId" binding:"required"`
}

type SearchPlaylistsRequest struct {
	Name string `json:"name"`
}

type RepeatRequest struct {
	RepeatMode string `json:"repeatMode"`
}

// Create godoc
// @Summary      Create a playlist
// @Description  Playlists belong to users; admins cannot create one
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePlaylistRequest true "Playlist data"
// @Success      201  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Router       /playlists [post]
func (h *PlaylistHandler) Create(c *gin.Context) {
	var req CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	playlist, err := h.playlistUseCase.Create(actorFromContext(c), req.Name, req.SongIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Playlist created", "playlist": playlist})
}

// List godoc
// @Summary      List playlists
// @Description  Admins see all playlists, users only their own
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Playlist
// @Failure      404  {object}  map[string]string
// @Router       /playlists [get]
func (h *PlaylistHandler) List(c *gin.Context) {
	playlists, err := h.playlistUseCase.List(actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, playlists)
}

// Get godoc
// @Summary      Get a playlist by id
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Success      200  {object}  entity.Playlist
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id} [get]
func (h *PlaylistHandler) Get(c *gin.Context) {
	playlist, err := h.playlistUseCase.Get(actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, playlist)
}

// Update godoc
// @Summary      Update a playlist
// @Description  Only the owning user may update; admins are denied
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        request body UpdatePlaylistRequest true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id} [put]
func (h *PlaylistHandler) Update(c *gin.Context) {
	var req UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	playlist, err := h.playlistUseCase.Update(actorFromContext(c), c.Param("id"), usecase.PlaylistInput{
		Name:    req.Name,
		SongIDs: req.SongIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Playlist updated", "playlist": playlist})
}

// Delete godoc
// @Summary      Delete a playlist
// @Description  Only the owning user may delete; admins are denied
// @Tags         playlists
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id} [delete]
func (h *PlaylistHandler) Delete(c *gin.Context) {
	if err := h.playlistUseCase.Delete(actorFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Playlist deleted"})
}

// AddSongs godoc
// @Summary      Add songs to a playlist
// @Description  All ids must exist or nothing is added; duplicates are reported, not re-added
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        request body AddSongsRequest true "Song ids to add"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id}/songs [post]
func (h *PlaylistHandler) AddSongs(c *gin.Context) {
	var req AddSongsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SongIDs == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid data format"})
		return
	}

	result, err := h.playlistUseCase.AddSongs(actorFromContext(c), c.Param("id"), req.SongIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Songs added to playlist"
	if len(result.AlreadyInPlaylist) > 0 {
		message = "Some songs were already in the playlist"
	}

	c.JSON(http.StatusOK, gin.H{
		"message":                message,
		"playlist":               result.Playlist,
		"added":                  result.Added,
		"songsAlreadyInPlaylist": result.AlreadyInPlaylist,
	})
}

// RemoveSong godoc
// @Summary      Remove a song from a playlist
// @Description  Removes every occurrence; an absent id is a no-op
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Playlist ID"
// @Param        request body RemoveSongRequest true "Song id to remove"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/{id}/songs [delete]
func (h *PlaylistHandler) RemoveSong(c *gin.Context) {
	var req RemoveSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body", "error": err.Error()})
		return
	}

	playlist, err := h.playlistUseCase.RemoveSong(actorFromContext(c), c.Param("id"), req.SongID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Song removed from playlist", "playlist": playlist})
}

// Search godoc
// @Summary      Search playlists by song name
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SearchPlaylistsRequest true "Song name to search for"
// @Success      200  {array}   entity.Playlist
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /playlists/search [post]
func (h *PlaylistHandler) Search(c *gin.Context) {
	var req SearchPlaylistsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Song name is required"})
		return
	}

	playlists, err := h.playlistUseCase.SearchBySongName(actorFromContext(c), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, playlists)
}

// Play names the first song in stored order.
func (h *PlaylistHandler) Play(c *gin.Context) {
	message, err := h.playlistUseCase.Play(actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Stop acknowledges without touching playback state.
func (h *PlaylistHandler) Stop(c *gin.Context) {
	message, err := h.playlistUseCase.Stop(actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Shuffle returns a display-only permutation; the stored order is untouched.
func (h *PlaylistHandler) Shuffle(c *gin.Context) {
	shuffled, err := h.playlistUseCase.Shuffle(actorFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Playlist shuffled", "shuffledSongs": shuffled})
}

// Repeat acknowledges repeat mode "one" or "all" (the default).
func (h *PlaylistHandler) Repeat(c *gin.Context) {
	var req RepeatRequest
	_ = c.ShouldBindJSON(&req)

	mode := entity.RepeatAll
	if req.RepeatMode == string(entity.RepeatOne) {
		mode = entity.RepeatOne
	}

	message, err := h.playlistUseCase.Repeat(actorFromContext(c), c.Param("id"), mode)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
