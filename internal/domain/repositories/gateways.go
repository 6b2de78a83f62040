package repositories

import (
	"context"
	"time"
)

// TokenUse tells the verifier which Cognito token kind to expect.
type TokenUse string

const (
	TokenUseID     TokenUse = "id"
	TokenUseAccess TokenUse = "access"
)

// TokenClaims is the verified payload of a Cognito token. ClientID carries the
// business identity key downstream (the username claim for access tokens).
type TokenClaims struct {
	ClientID string
	Username string
	Raw      map[string]any
}

type TokenVerifier interface {
	Validate(ctx context.Context, token string, use TokenUse) (*TokenClaims, error)
}

// IdentityProvider covers the Cognito account operations.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
}

type UploadParams struct {
	UploadType    string
	FileName      string
	FileType      string
	ContentLength int64
	ExpiresIn     time.Duration
}

type PresignedUpload struct {
	URL string
	Key string
}

// Presigner issues time-limited URLs for direct client access to object
// storage.
type Presigner interface {
	PresignedUploadURL(ctx context.Context, params UploadParams) (*PresignedUpload, error)
	PresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)
}

// MessagePublisher pushes processing notifications onto the queue.
type MessagePublisher interface {
	Publish(ctx context.Context, messageType string, data any) error
}
