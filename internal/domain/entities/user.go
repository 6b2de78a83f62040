package entities

import (
	apperrors "github.com/HackathonFIAPX/hackathon-fiapx-admin/pkg/errors"
)

// User owns its video collection. Videos never exist outside a user and are
// referenced only by id inside that collection.
type User struct {
	ID       string  `json:"id"`
	ClientID string  `json:"client_id"`
	Name     string  `json:"name"`
	Videos   []Video `json:"videos"`
}

// NewUser builds a user with an empty video collection. The id is assigned by
// the repository on first save and never changes afterwards.
func NewUser(clientID, name string) *User {
	return &User{
		ClientID: clientID,
		Name:     name,
		Videos:   []Video{},
	}
}

// AddVideo appends to the collection. No de-duplication by video id happens
// here; callers guarantee id uniqueness.
func (u *User) AddVideo(video Video) {
	u.Videos = append(u.Videos, video)
}

// FindVideo returns a pointer into the collection so callers can mutate the
// element in place. A nil collection counts as empty, not as an error.
func (u *User) FindVideo(videoID string) (*Video, error) {
	for i := range u.Videos {
		if u.Videos[i].ID == videoID {
			return &u.Videos[i], nil
		}
	}
	return nil, &apperrors.VideoNotFoundError{ClientID: u.ClientID, VideoID: videoID}
}

// ReplaceVideo swaps the single element matching updated.ID, leaving siblings
// untouched and the original ordering intact.
func (u *User) ReplaceVideo(updated Video) error {
	for i := range u.Videos {
		if u.Videos[i].ID == updated.ID {
			u.Videos[i] = updated
			return nil
		}
	}
	return &apperrors.VideoNotFoundError{ClientID: u.ClientID, VideoID: updated.ID}
}
