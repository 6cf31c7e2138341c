package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	MoodHappy      = "happy"
	MoodNeutral    = "neutral"
	MoodTired      = "tired"
	MoodStressed   = "stressed"
	MoodProductive = "productive"
	MoodCalm       = "calm"
)

// ErrCompletedRequired is the storage-level constraint on entries: every
// entry records at least one completed item.
var ErrCompletedRequired = errors.New("please list what you completed")

type Entry struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	UserID    string         `gorm:"index;not null" json:"user_id"`
	Date      time.Time      `json:"date"`
	Completed pq.StringArray `gorm:"type:text[];not null" json:"completed"`
	Struggles pq.StringArray `gorm:"type:text[]" json:"struggles"`
	NextSteps pq.StringArray `gorm:"type:text[]" json:"nextSteps"`
	Mood      string         `gorm:"default:neutral" json:"mood"`
	Tags      pq.StringArray `gorm:"type:text[]" json:"tags"`
	IsPublic  bool           `gorm:"default:false" json:"isPublic"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (e *Entry) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Date.IsZero() {
		e.Date = time.Now().UTC()
	}
	if e.Mood == "" {
		e.Mood = MoodNeutral
	}
	if e.Struggles == nil {
		e.Struggles = pq.StringArray{}
	}
	if e.NextSteps == nil {
		e.NextSteps = pq.StringArray{}
	}
	if e.Tags == nil {
		e.Tags = pq.StringArray{}
	}
	return
}

func (e *Entry) BeforeSave(tx *gorm.DB) (err error) {
	if len(e.Completed) == 0 {
		return ErrCompletedRequired
	}
	return
}
