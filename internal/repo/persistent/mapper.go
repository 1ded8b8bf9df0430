package persistent

import (
	"music-library/internal/entity"
	"music-library/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:          m.ID,
		Username:    m.Username,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		Password:    m.Password,
		Role:        entity.UserRole(m.Role),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:          e.ID,
		Username:    e.Username,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		Password:    e.Password,
		Role:        string(e.Role),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToSongEntity(m *model.SongModel) *entity.Song {
	if m == nil {
		return nil
	}

	return &entity.Song{
		ID:            m.ID,
		Name:          m.Name,
		Singer:        m.Singer,
		MusicDirector: m.MusicDirector,
		ReleaseDate:   m.ReleaseDate,
		Album:         m.Album,
		Image:         m.Image,
		Visibility:    m.Visibility,
		CreatorID:     m.CreatorID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToSongModel(e *entity.Song) *model.SongModel {
	if e == nil {
		return nil
	}

	return &model.SongModel{
		ID:            e.ID,
		Name:          e.Name,
		Singer:        e.Singer,
		MusicDirector: e.MusicDirector,
		ReleaseDate:   e.ReleaseDate,
		Album:         e.Album,
		Image:         e.Image,
		Visibility:    e.Visibility,
		CreatorID:     e.CreatorID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToPlaylistEntity(m *model.PlaylistModel) *entity.Playlist {
	if m == nil {
		return nil
	}

	songIDs := make([]string, len(m.SongIDs))
	copy(songIDs, m.SongIDs)

	return &entity.Playlist{
		ID:        m.ID,
		Name:      m.Name,
		UserID:    m.UserID,
		SongIDs:   songIDs,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToPlaylistModel(e *entity.Playlist) *model.PlaylistModel {
	if e == nil {
		return nil
	}

	songIDs := make([]string, len(e.SongIDs))
	copy(songIDs, e.SongIDs)

	return &model.PlaylistModel{
		ID:        e.ID,
		Name:      e.Name,
		UserID:    e.UserID,
		SongIDs:   songIDs,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToNotificationEntity(m *model.NotificationModel) *entity.Notification {
	if m == nil {
		return nil
	}

	n := &entity.Notification{
		ID:        m.ID,
		Message:   m.Message,
		SentBy:    m.SentBy,
		CreatedAt: m.CreatedAt,
	}
	if m.Sender != nil {
		n.SenderName = m.Sender.Username
	}
	return n
}

func ToNotificationModel(e *entity.Notification) *model.NotificationModel {
	if e == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:        e.ID,
		Message:   e.Message,
		SentBy:    e.SentBy,
		CreatedAt: e.CreatedAt,
	}
}
