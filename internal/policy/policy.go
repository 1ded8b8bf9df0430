// Package policy is the authorization core: pure functions deciding, per
// actor and resource, whether an operation is allowed. Handlers consume
// Decision values uniformly instead of scattering role checks.
package policy

import "music-library/internal/entity"

type Decision struct {
	Allowed bool
	Reason  string
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func Deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// CanManageSongs covers song create, delete and visibility changes: admin
// role only. Delete deliberately does not re-check the creator.
func CanManageSongs(actor entity.Actor) Decision {
	if !actor.IsAdmin() {
		return Deny("Admins only")
	}
	return Allow()
}

// CanUpdateSong requires the admin role plus the creator-or-admin check the
// API has always had. The second clause cannot fail for an admin, but the
// rule is part of the contract and stays.
func CanUpdateSong(actor entity.Actor, creatorID string) Decision {
	if !actor.IsAdmin() {
		return Deny("Admins only")
	}
	if actor.ID != creatorID && !actor.IsAdmin() {
		return Deny("You are not authorized to update this song")
	}
	return Allow()
}

// CanViewSong gates single-song reads: hidden songs are admin-only.
func CanViewSong(actor entity.Actor, visible bool) Decision {
	if !actor.IsAdmin() && !visible {
		return Deny("You are not authorized to view this song")
	}
	return Allow()
}

// SongListingScope reports whether listings and searches for this actor must
// be restricted to visible songs.
func SongListingScope(actor entity.Actor) (visibleOnly bool) {
	return !actor.IsAdmin()
}

// CanCreatePlaylist: playlists belong to users; admins are forbidden from
// owning one.
func CanCreatePlaylist(actor entity.Actor) Decision {
	if actor.IsAdmin() {
		return Deny("Admins cannot create playlists")
	}
	return Allow()
}

// CanViewPlaylist: admins see every playlist, users only their own.
func CanViewPlaylist(actor entity.Actor, ownerID string) Decision {
	if !actor.IsAdmin() && actor.ID != ownerID {
		return Deny("You are not authorized to view this playlist")
	}
	return Allow()
}

// CanUpdatePlaylist allows only the exact non-admin owner. Admins are
// excluded from the allow set even though they can read any playlist.
func CanUpdatePlaylist(actor entity.Actor, ownerID string) Decision {
	if actor.IsAdmin() || actor.ID != ownerID {
		return Deny("You are not authorized to update this playlist")
	}
	return Allow()
}

// CanDeletePlaylist mirrors CanUpdatePlaylist: exact non-admin owner only.
func CanDeletePlaylist(actor entity.Actor, ownerID string) Decision {
	if actor.IsAdmin() || actor.ID != ownerID {
		return Deny("You are not authorized to delete this playlist")
	}
	return Allow()
}

// CanModifyPlaylistSongs covers add/remove song: owner only. Admins never
// pass because a playlist owner is never an admin.
func CanModifyPlaylistSongs(actor entity.Actor, ownerID string) Decision {
	if actor.ID != ownerID {
		return Deny("You are not authorized to modify this playlist")
	}
	return Allow()
}

// CanControlPlayback covers play, shuffle and repeat: admin or owner.
// Stop intentionally skips this check and only requires authentication.
func CanControlPlayback(actor entity.Actor, ownerID string) Decision {
	if !actor.IsAdmin() && actor.ID != ownerID {
		return Deny("You are not authorized to play this playlist")
	}
	return Allow()
}

// CanManageNotifications covers notification create, update and delete.
// Reads are open to any authenticated actor.
func CanManageNotifications(actor entity.Actor) Decision {
	if !actor.IsAdmin() {
		return Deny("Admins only")
	}
	return Allow()
}
