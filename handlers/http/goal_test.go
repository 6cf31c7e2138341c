package httpHandler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"
	"tracker-server/entities"
	"tracker-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goalRouter(repo *memGoalRepo, userID string) *gin.Engine {
	uc := usecases.NewGoalUseCase(repo, nil)
	handler := NewGoalHandler(uc)

	app := gin.New()
	goals := app.Group("/api/goals", asUser(userID))
	goals.GET("", handler.GetGoals)
	goals.POST("", handler.CreateGoal)
	goals.GET("/:id", handler.GetGoalByID)
	goals.PUT("/:id", handler.UpdateGoal)
	goals.DELETE("/:id", handler.DeleteGoal)
	goals.GET("/user/:id", handler.GetGoalsByUser)
	goals.GET("/user/:id/:date", handler.GetGoalByUserAndDate)
	return app
}

func goalPayload() gin.H {
	return gin.H{
		"title":       "Read twelve books",
		"description": "One per month",
		"category":    entities.CategoryPersonal,
		"priority":    entities.PriorityMedium,
		"status":      entities.StatusPending,
		"startDate":   "2026-09-01T00:00:00Z",
		"dueDate":     "2026-12-31T00:00:00Z",
		"progress":    25,
	}
}

func seedGoal(t *testing.T, repo *memGoalRepo, userID string) *entities.Goal {
	t.Helper()
	due := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	goal := &entities.Goal{
		UserID:      userID,
		Title:       "Read twelve books",
		Description: "One per month",
		Category:    entities.CategoryPersonal,
		Priority:    entities.PriorityMedium,
		Status:      entities.StatusPending,
		StartDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		DueDate:     &due,
		Progress:    25,
	}
	require.NoError(t, repo.Create(goal))
	return goal
}

func TestCreateGoalHTTP(t *testing.T) {
	repo := newMemGoalRepo()
	app := goalRouter(repo, "alice")

	w := jsonRequest(t, app, http.MethodPost, "/api/goals", goalPayload())

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "alice", body["user_id"])
	assert.Equal(t, "Read twelve books", body["title"])
}

func TestCreateGoalHTTPMissingFields(t *testing.T) {
	app := goalRouter(newMemGoalRepo(), "alice")

	payload := goalPayload()
	delete(payload, "progress")
	w := jsonRequest(t, app, http.MethodPost, "/api/goals", payload)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please fill in all the required fields", decodeBody(t, w)["message"])
}

// Goal routes match by record id alone; a different authenticated caller
// can read, update, and delete another user's goal.
func TestGoalRoutesAreNotOwnerScoped(t *testing.T) {
	repo := newMemGoalRepo()
	goal := seedGoal(t, repo, "alice")
	asBob := goalRouter(repo, "bob")

	w := jsonRequest(t, asBob, http.MethodGet, "/api/goals/"+goal.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", decodeBody(t, w)["user_id"])

	w = jsonRequest(t, asBob, http.MethodPut, "/api/goals/"+goal.ID, goalPayload())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", decodeBody(t, w)["user_id"])

	w = jsonRequest(t, asBob, http.MethodDelete, "/api/goals/"+goal.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteGoalHTTPMissingIsNull(t *testing.T) {
	app := goalRouter(newMemGoalRepo(), "alice")

	w := jsonRequest(t, app, http.MethodDelete, "/api/goals/missing", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestGetGoalHTTPMissingIsServerError(t *testing.T) {
	app := goalRouter(newMemGoalRepo(), "alice")

	w := jsonRequest(t, app, http.MethodGet, "/api/goals/missing", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Error retrieving goal", decodeBody(t, w)["message"])
}

func TestUpdateGoalHTTPMissingIs404(t *testing.T) {
	app := goalRouter(newMemGoalRepo(), "alice")

	w := jsonRequest(t, app, http.MethodPut, "/api/goals/missing", goalPayload())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Goal not found", decodeBody(t, w)["message"])
}

func TestGetGoalsByUserHTTP(t *testing.T) {
	repo := newMemGoalRepo()
	seedGoal(t, repo, "alice")
	seedGoal(t, repo, "bob")
	app := goalRouter(repo, "alice")

	w := jsonRequest(t, app, http.MethodGet, "/api/goals/user/alice", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var goals []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &goals))
	require.Len(t, goals, 1)
	assert.Equal(t, "alice", goals[0]["user_id"])
}

func TestGetGoalByUserAndDateHTTP(t *testing.T) {
	repo := newMemGoalRepo()
	goal := seedGoal(t, repo, "alice")
	app := goalRouter(repo, "alice")

	w := jsonRequest(t, app, http.MethodGet, "/api/goals/user/alice/2026-09-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, goal.ID, decodeBody(t, w)["id"])

	w = jsonRequest(t, app, http.MethodGet, "/api/goals/user/alice/garbage", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}
