package services

import (
	"encoding/json"
	"log"
	"time"
	"tracker-server/cache"
	"tracker-server/db"
	"tracker-server/entities"
	"tracker-server/ws"
)

// ActivityService buffers mutation events in memory, pushes them to the
// owner's live socket, and flushes the buffer into the activities table
// on an interval.
type ActivityService struct {
	buffer   *cache.ActivityBuffer
	database db.Database
	manager  *ws.Manager
	interval time.Duration
}

func NewActivityService(database db.Database, manager *ws.Manager) *ActivityService {
	return &ActivityService{
		buffer:   cache.NewActivityBuffer(),
		database: database,
		manager:  manager,
		interval: 5 * time.Minute,
	}
}

func (s *ActivityService) Start() {
	ticker := time.NewTicker(s.interval)
	go func() {
		for range ticker.C {
			s.Flush()
		}
	}()
}

// Record buffers one event and notifies the owner's socket if connected.
func (s *ActivityService) Record(userID, action, resource, resourceID string) {
	event := entities.Activity{
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		CreatedAt:  time.Now().UTC(),
	}
	s.buffer.Add(event)

	if s.manager != nil {
		payload, _ := json.Marshal(map[string]string{
			"type":        "activity",
			"action":      action,
			"resource":    resource,
			"resource_id": resourceID,
			"timestamp":   event.CreatedAt.Format(time.RFC3339),
		})
		// best effort; the user may simply not be connected
		_ = s.manager.SendToUser(userID, payload)
	}
}

// Flush drains the buffer and bulk-inserts the drained events. The drain
// is atomic, so events recorded while the insert runs stay buffered for
// the next flush. On insert failure the drained batch goes back into the
// buffer instead of being dropped.
func (s *ActivityService) Flush() {
	grouped := s.buffer.Drain()
	var all []entities.Activity
	for _, events := range grouped {
		all = append(all, events...)
	}
	if len(all) == 0 {
		return
	}
	if err := s.database.GetDB().Create(&all).Error; err != nil {
		log.Printf("Error bulk inserting %d activity events: %v", len(all), err)
		for _, event := range all {
			s.buffer.Add(event)
		}
		return
	}
	log.Printf("Inserted %d buffered activity events", len(all))
}

// Recent returns the newest buffered events for one user.
func (s *ActivityService) Recent(userID string, limit int) []entities.Activity {
	return s.buffer.Recent(userID, limit)
}

// Stats returns statistics about the current buffer.
func (s *ActivityService) Stats() map[string]interface{} {
	return s.buffer.Stats()
}
