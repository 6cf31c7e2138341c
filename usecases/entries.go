package usecases

import (
	"errors"
	"net/url"
	"time"
	"tracker-server/entities"
	"tracker-server/repositories"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type EntryUseCase struct {
	Entries  repositories.EntryRepository
	recorder ActivityRecorder
}

func NewEntryUseCase(entries repositories.EntryRepository, recorder ActivityRecorder) *EntryUseCase {
	return &EntryUseCase{Entries: entries, recorder: recorder}
}

// EntryUpdate carries the mutable entry fields. Pointer members
// distinguish "leave as is" from an explicit zero value; the owning user
// is not among them.
type EntryUpdate struct {
	Date      *time.Time `json:"date"`
	Completed []string   `json:"completed"`
	Struggles []string   `json:"struggles"`
	NextSteps []string   `json:"nextSteps"`
	Mood      *string    `json:"mood"`
	Tags      []string   `json:"tags"`
	IsPublic  *bool      `json:"isPublic"`
}

// CreateEntry persists a new entry owned by userID. The required
// completed list is enforced by the storage layer. Identity and
// timestamps are never client-supplied.
func (uc *EntryUseCase) CreateEntry(userID string, entry *entities.Entry) error {
	entry.ID = ""
	entry.UserID = userID
	entry.CreatedAt = time.Time{}
	entry.UpdatedAt = time.Time{}
	if err := uc.Entries.Create(entry); err != nil {
		return err
	}
	uc.record(userID, entities.ActionCreated, entry.ID)
	return nil
}

// ListEntries returns the user's entries, newest first.
func (uc *EntryUseCase) ListEntries(userID string) ([]entities.Entry, error) {
	return uc.Entries.GetByUserID(userID)
}

// FilterEntries narrows the user's entries by the raw query parameters.
func (uc *EntryUseCase) FilterEntries(userID string, query url.Values) ([]entities.Entry, error) {
	return uc.Entries.GetFiltered(userID, repositories.ParseEntryFilter(query))
}

// GetEntry returns the entry only when it is owned by userID. A foreign
// id is reported exactly like a missing one.
func (uc *EntryUseCase) GetEntry(userID, id string) (*entities.Entry, error) {
	entry, err := uc.Entries.GetByID(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return entry, nil
}

// UpdateEntry applies the provided fields to the user's entry, rerunning
// the storage validators. Ownership never moves.
func (uc *EntryUseCase) UpdateEntry(userID, id string, update EntryUpdate) (*entities.Entry, error) {
	entry, err := uc.GetEntry(userID, id)
	if err != nil {
		return nil, err
	}

	if update.Date != nil {
		entry.Date = *update.Date
	}
	if update.Completed != nil {
		entry.Completed = pq.StringArray(update.Completed)
	}
	if update.Struggles != nil {
		entry.Struggles = pq.StringArray(update.Struggles)
	}
	if update.NextSteps != nil {
		entry.NextSteps = pq.StringArray(update.NextSteps)
	}
	if update.Mood != nil {
		entry.Mood = *update.Mood
	}
	if update.Tags != nil {
		entry.Tags = pq.StringArray(update.Tags)
	}
	if update.IsPublic != nil {
		entry.IsPublic = *update.IsPublic
	}

	if err := uc.Entries.Update(entry); err != nil {
		return nil, err
	}
	uc.record(userID, entities.ActionUpdated, entry.ID)
	return entry, nil
}

// DeleteEntry removes the user's entry and returns its prior state.
func (uc *EntryUseCase) DeleteEntry(userID, id string) (*entities.Entry, error) {
	entry, err := uc.Entries.Delete(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	uc.record(userID, entities.ActionDeleted, entry.ID)
	return entry, nil
}

func (uc *EntryUseCase) record(userID, action, entryID string) {
	if uc.recorder != nil {
		uc.recorder.Record(userID, action, entities.ResourceEntry, entryID)
	}
}
