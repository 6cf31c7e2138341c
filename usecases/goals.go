package usecases

import (
	"errors"
	"strings"
	"time"
	"tracker-server/entities"
	"tracker-server/repositories"

	"gorm.io/gorm"
)

type GoalUseCase struct {
	Goals    repositories.GoalRepository
	recorder ActivityRecorder
}

func NewGoalUseCase(goals repositories.GoalRepository, recorder ActivityRecorder) *GoalUseCase {
	return &GoalUseCase{Goals: goals, recorder: recorder}
}

// GoalInput carries the goal fields a caller may set. Every field is
// required on create and update; Progress and DueDate are pointers so an
// absent value can be told apart from zero.
type GoalInput struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	StartDate   time.Time  `json:"startDate"`
	DueDate     *time.Time `json:"dueDate"`
	Progress    *int       `json:"progress"`
}

func (in GoalInput) incomplete() bool {
	return in.Title == "" || in.Description == "" || in.Category == "" ||
		in.Priority == "" || in.Status == "" || in.StartDate.IsZero() ||
		in.DueDate == nil || in.Progress == nil
}

// CreateGoal persists a new goal owned by userID. Progress outside
// [0,100] is clamped to the bound rather than rejected.
func (uc *GoalUseCase) CreateGoal(userID string, input GoalInput) (*entities.Goal, error) {
	if input.incomplete() {
		return nil, ErrMissingFields
	}

	goal := &entities.Goal{
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Priority:    input.Priority,
		Status:      input.Status,
		StartDate:   input.StartDate,
		DueDate:     input.DueDate,
		Progress:    clampProgress(*input.Progress),
	}
	if err := uc.Goals.Create(goal); err != nil {
		return nil, err
	}
	uc.record(userID, entities.ActionCreated, goal.ID)
	return goal, nil
}

// GetGoals returns every goal in the system. Listing is not scoped to
// the caller; only the by-user reads below are.
func (uc *GoalUseCase) GetGoals() ([]entities.Goal, error) {
	return uc.Goals.GetAll()
}

// GetGoal looks a goal up by record id alone.
func (uc *GoalUseCase) GetGoal(id string) (*entities.Goal, error) {
	return uc.Goals.GetByID(id)
}

// UpdateGoal replaces every caller-settable field of the goal, matched by
// record id alone. Progress is clamped to [0,100].
func (uc *GoalUseCase) UpdateGoal(id string, input GoalInput) (*entities.Goal, error) {
	if input.incomplete() {
		return nil, ErrMissingFields
	}

	goal, err := uc.Goals.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	goal.Title = strings.TrimSpace(input.Title)
	goal.Description = strings.TrimSpace(input.Description)
	goal.Category = input.Category
	goal.Priority = input.Priority
	goal.Status = input.Status
	goal.StartDate = input.StartDate
	goal.DueDate = input.DueDate
	goal.Progress = clampProgress(*input.Progress)

	if err := uc.Goals.Update(goal); err != nil {
		return nil, err
	}
	uc.record(goal.UserID, entities.ActionUpdated, goal.ID)
	return goal, nil
}

// DeleteGoal removes a goal by record id alone. Deleting a missing id is
// not an error; the returned goal is nil.
func (uc *GoalUseCase) DeleteGoal(id string) (*entities.Goal, error) {
	goal, err := uc.Goals.Delete(id)
	if err != nil {
		return nil, err
	}
	if goal != nil {
		uc.record(goal.UserID, entities.ActionDeleted, goal.ID)
	}
	return goal, nil
}

// GetGoalsByUser returns the goals owned by userID, newest first.
func (uc *GoalUseCase) GetGoalsByUser(userID string) ([]entities.Goal, error) {
	return uc.Goals.GetByUserID(userID)
}

// GetGoalByUserAndDate returns the user's goal whose start date equals
// the given value exactly, or nil when nothing matches (an unparseable
// date matches nothing).
func (uc *GoalUseCase) GetGoalByUserAndDate(userID, rawDate string) (*entities.Goal, error) {
	var date time.Time
	var parsed bool
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if d, err := time.Parse(layout, rawDate); err == nil {
			date = d
			parsed = true
			break
		}
	}
	if !parsed {
		return nil, nil
	}
	return uc.Goals.GetByUserAndDate(userID, date)
}

func (uc *GoalUseCase) record(userID, action, goalID string) {
	if uc.recorder != nil {
		uc.recorder.Record(userID, action, entities.ResourceGoal, goalID)
	}
}

func clampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
