package usecases

import "errors"

// Sentinel errors handlers translate into HTTP statuses.
var (
	ErrUserExists        = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrNotFound          = errors.New("record not found")
	ErrMissingFields     = errors.New("please fill in all the required fields")
)

// ActivityRecorder receives a notification after each successful
// mutation. A nil recorder disables recording.
type ActivityRecorder interface {
	Record(userID, action, resource, resourceID string)
}
