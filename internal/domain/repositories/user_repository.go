package repositories

import (
	"context"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/entities"
)

// UserRepository is the persistence gateway for the user aggregate.
//
// Both mutating operations read the user first and then write with no version
// check, so concurrent updates to the same user's videos can race and the
// loser is silently overwritten. That lost-update hazard is a known,
// documented trade-off of this design.
type UserRepository interface {
	// Save writes the full user row. An existing row for the same clientId
	// keeps its id; a new user gets a freshly generated one. Returns the
	// persisted user including the resolved id.
	Save(ctx context.Context, user *entities.User) (*entities.User, error)

	// FindByClientId queries the client_id secondary index and returns at
	// most one match. A miss returns (nil, nil), never an error.
	FindByClientId(ctx context.Context, clientID string) (*entities.User, error)

	// AddVideoToUser appends video to the user's collection with a store-level
	// atomic append keyed by the user's id. Returns the caller's in-memory
	// view with the video appended, not a re-read of the store.
	AddVideoToUser(ctx context.Context, clientID string, video entities.Video) (*entities.User, error)

	// UpdateVideo replaces the matching video by id and writes the entire
	// videos array back in a single update keyed by the user's id.
	UpdateVideo(ctx context.Context, clientID string, video entities.Video) (*entities.Video, error)
}
