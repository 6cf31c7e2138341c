package repositories

import (
	"errors"
	"time"
	"tracker-server/db"
	"tracker-server/entities"

	"gorm.io/gorm"
)

type goalPgRepository struct {
	db db.Database
}

func NewGoalPgRepository(database db.Database) GoalRepository {
	return &goalPgRepository{db: database}
}

func (r *goalPgRepository) Create(goal *entities.Goal) error {
	return r.db.GetDB().Create(goal).Error
}

func (r *goalPgRepository) GetAll() ([]entities.Goal, error) {
	goals := []entities.Goal{}
	err := r.db.GetDB().Find(&goals).Error
	return goals, err
}

func (r *goalPgRepository) GetByID(id string) (*entities.Goal, error) {
	var goal entities.Goal
	err := r.db.GetDB().Where("id = ?", id).First(&goal).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *goalPgRepository) Update(goal *entities.Goal) error {
	return r.db.GetDB().Save(goal).Error
}

// Delete removes a goal by id alone and returns its prior state. A
// missing id is not an error; it yields a nil goal.
func (r *goalPgRepository) Delete(id string) (*entities.Goal, error) {
	goal, err := r.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.db.GetDB().Where("id = ?", id).Delete(&entities.Goal{}).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

func (r *goalPgRepository) GetByUserID(userID string) ([]entities.Goal, error) {
	goals := []entities.Goal{}
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&goals).Error
	return goals, err
}

func (r *goalPgRepository) GetByUserAndDate(userID string, date time.Time) (*entities.Goal, error) {
	var goal entities.Goal
	err := r.db.GetDB().Where("user_id = ? AND start_date = ?", userID, date).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &goal, nil
}
