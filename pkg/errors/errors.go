package errors

import "fmt"

// InvalidTransitionError is returned when a video status change does not
// follow the allowed lifecycle path.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change status from %s to %s", e.From, e.To)
}

type UserNotFoundError struct {
	ClientID string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user with clientId %s not found", e.ClientID)
}

type VideoNotFoundError struct {
	ClientID string
	VideoID  string
}

func (e *VideoNotFoundError) Error() string {
	return fmt.Sprintf("video %s not found for clientId %s", e.VideoID, e.ClientID)
}

type DuplicateClientError struct {
	ClientID string
}

func (e *DuplicateClientError) Error() string {
	return fmt.Sprintf("user with clientId %s already exists", e.ClientID)
}

// StorageError wraps a store-level failure (timeout, throttling, connectivity).
// The repository never retries; that decision belongs to the caller.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error on %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

type UnauthorizedError struct {
	Reason string
}

func (e *UnauthorizedError) Error() string {
	if e.Reason == "" {
		return "unauthorized"
	}
	return e.Reason
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
