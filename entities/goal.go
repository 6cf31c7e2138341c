package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryHealth    = "Health"
	CategoryCareer    = "Career"
	CategoryFinance   = "Finance"
	CategoryEducation = "Education"
	CategoryPersonal  = "Personal"
	CategoryOther     = "Other"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"

	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

type Goal struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"index;not null" json:"user_id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Category    string     `gorm:"default:Other" json:"category"`
	Priority    string     `gorm:"default:Medium" json:"priority"`
	Status      string     `gorm:"default:Pending" json:"status"`
	StartDate   time.Time  `json:"startDate"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Progress    int        `gorm:"default:0" json:"progress"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.StartDate.IsZero() {
		g.StartDate = time.Now().UTC()
	}
	if g.Category == "" {
		g.Category = CategoryOther
	}
	if g.Priority == "" {
		g.Priority = PriorityMedium
	}
	if g.Status == "" {
		g.Status = StatusPending
	}
	return
}
