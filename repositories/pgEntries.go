package repositories

import (
	"tracker-server/db"
	"tracker-server/entities"
)

type entryPgRepository struct {
	db db.Database
}

func NewEntryPgRepository(database db.Database) EntryRepository {
	return &entryPgRepository{db: database}
}

func (r *entryPgRepository) Create(entry *entities.Entry) error {
	return r.db.GetDB().Create(entry).Error
}

func (r *entryPgRepository) GetByUserID(userID string) ([]entities.Entry, error) {
	entries := []entities.Entry{}
	err := r.db.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *entryPgRepository) GetFiltered(userID string, filter EntryFilter) ([]entities.Entry, error) {
	entries := []entities.Entry{}
	tx := r.db.GetDB().Where("user_id = ?", userID)
	err := filter.Scope(tx).Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *entryPgRepository) GetByID(userID, id string) (*entities.Entry, error) {
	var entry entities.Entry
	err := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *entryPgRepository) Update(entry *entities.Entry) error {
	return r.db.GetDB().Save(entry).Error
}

func (r *entryPgRepository) Delete(userID, id string) (*entities.Entry, error) {
	entry, err := r.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.GetDB().Where("id = ? AND user_id = ?", id, userID).Delete(&entities.Entry{}).Error; err != nil {
		return nil, err
	}
	return entry, nil
}
