package repositories

import (
	"time"
	"tracker-server/entities"
)

type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id string) (*entities.User, error)
	GetByEmail(email string) (*entities.User, error)
}

// EntryRepository is owner-scoped: every read and mutation matches on the
// owning user id as well as the record id, so a foreign record behaves
// exactly like a missing one.
type EntryRepository interface {
	Create(entry *entities.Entry) error
	GetByUserID(userID string) ([]entities.Entry, error)
	GetFiltered(userID string, filter EntryFilter) ([]entities.Entry, error)
	GetByID(userID, id string) (*entities.Entry, error)
	Update(entry *entities.Entry) error
	Delete(userID, id string) (*entities.Entry, error)
}

type GoalRepository interface {
	Create(goal *entities.Goal) error
	GetAll() ([]entities.Goal, error)
	GetByID(id string) (*entities.Goal, error)
	Update(goal *entities.Goal) error
	Delete(id string) (*entities.Goal, error)
	GetByUserID(userID string) ([]entities.Goal, error)
	GetByUserAndDate(userID string, date time.Time) (*entities.Goal, error)
}
