package httpHandler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"
	"tracker-server/entities"
	"tracker-server/repositories"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// asUser mimics the auth middleware, storing the caller id under the key
// the handlers read it from.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func jsonRequest(t *testing.T, app *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

type memUserRepo struct {
	users map[string]*entities.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entities.User)}
}

func (r *memUserRepo) Create(user *entities.User) error {
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	r.users[user.Email] = user
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entities.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) GetByEmail(email string) (*entities.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

type memEntryRepo struct {
	entries map[string]*entities.Entry
	nextID  int
}

func newMemEntryRepo() *memEntryRepo {
	return &memEntryRepo{entries: make(map[string]*entities.Entry)}
}

func (r *memEntryRepo) Create(entry *entities.Entry) error {
	if len(entry.Completed) == 0 {
		return entities.ErrCompletedRequired
	}
	if entry.ID == "" {
		r.nextID++
		entry.ID = fmt.Sprintf("entry-%d", r.nextID)
	}
	stored := *entry
	r.entries[entry.ID] = &stored
	return nil
}

func (r *memEntryRepo) GetByUserID(userID string) ([]entities.Entry, error) {
	out := []entities.Entry{}
	for _, entry := range r.entries {
		if entry.UserID == userID {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func (r *memEntryRepo) GetFiltered(userID string, filter repositories.EntryFilter) ([]entities.Entry, error) {
	out := []entities.Entry{}
	for _, entry := range r.entries {
		if entry.UserID != userID {
			continue
		}
		if filter.Mood != "" && entry.Mood != filter.Mood {
			continue
		}
		out = append(out, *entry)
	}
	return out, nil
}

func (r *memEntryRepo) GetByID(userID, id string) (*entities.Entry, error) {
	entry, ok := r.entries[id]
	if !ok || entry.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	found := *entry
	return &found, nil
}

func (r *memEntryRepo) Update(entry *entities.Entry) error {
	if len(entry.Completed) == 0 {
		return entities.ErrCompletedRequired
	}
	stored := *entry
	r.entries[entry.ID] = &stored
	return nil
}

func (r *memEntryRepo) Delete(userID, id string) (*entities.Entry, error) {
	entry, err := r.GetByID(userID, id)
	if err != nil {
		return nil, err
	}
	delete(r.entries, id)
	return entry, nil
}

type memGoalRepo struct {
	goals  map[string]*entities.Goal
	nextID int
}

func newMemGoalRepo() *memGoalRepo {
	return &memGoalRepo{goals: make(map[string]*entities.Goal)}
}

func (r *memGoalRepo) Create(goal *entities.Goal) error {
	if goal.ID == "" {
		r.nextID++
		goal.ID = fmt.Sprintf("goal-%d", r.nextID)
	}
	stored := *goal
	r.goals[goal.ID] = &stored
	return nil
}

func (r *memGoalRepo) GetAll() ([]entities.Goal, error) {
	out := []entities.Goal{}
	for _, goal := range r.goals {
		out = append(out, *goal)
	}
	return out, nil
}

func (r *memGoalRepo) GetByID(id string) (*entities.Goal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *goal
	return &found, nil
}

func (r *memGoalRepo) Update(goal *entities.Goal) error {
	stored := *goal
	r.goals[goal.ID] = &stored
	return nil
}

func (r *memGoalRepo) Delete(id string) (*entities.Goal, error) {
	goal, ok := r.goals[id]
	if !ok {
		return nil, nil
	}
	delete(r.goals, id)
	found := *goal
	return &found, nil
}

func (r *memGoalRepo) GetByUserID(userID string) ([]entities.Goal, error) {
	out := []entities.Goal{}
	for _, goal := range r.goals {
		if goal.UserID == userID {
			out = append(out, *goal)
		}
	}
	return out, nil
}

func (r *memGoalRepo) GetByUserAndDate(userID string, date time.Time) (*entities.Goal, error) {
	for _, goal := range r.goals {
		if goal.UserID == userID && goal.StartDate.Equal(date) {
			found := *goal
			return &found, nil
		}
	}
	return nil, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}
