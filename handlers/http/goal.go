package httpHandler

import (
	"errors"
	"log"
	"net/http"
	"tracker-server/middleware"
	"tracker-server/usecases"

	"github.com/gin-gonic/gin"
)

// GoalHandler exposes the goal routes. Listing and id lookups are not
// scoped to the caller; only the /user reads filter by owner.
type GoalHandler struct {
	useCase *usecases.GoalUseCase
}

func NewGoalHandler(useCase *usecases.GoalUseCase) *GoalHandler {
	return &GoalHandler{useCase: useCase}
}

// CreateGoal handles POST /api/goals
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var input usecases.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill in all the required fields"})
		return
	}

	goal, err := h.useCase.CreateGoal(userID, input)
	if err != nil {
		if errors.Is(err, usecases.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill in all the required fields"})
			return
		}
		log.Printf("Error creating goal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating goal"})
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// GetGoals handles GET /api/goals
func (h *GoalHandler) GetGoals(c *gin.Context) {
	goals, err := h.useCase.GetGoals()
	if err != nil {
		log.Printf("Error retrieving goals: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving goals"})
		return
	}
	c.JSON(http.StatusOK, goals)
}

// GetGoalByID handles GET /api/goals/:id. A missing id surfaces as a
// retrieval failure, not a 404.
func (h *GoalHandler) GetGoalByID(c *gin.Context) {
	goal, err := h.useCase.GetGoal(c.Param("id"))
	if err != nil {
		log.Printf("Error retrieving goal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving goal"})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// UpdateGoal handles PUT /api/goals/:id
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	var input usecases.GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill in all the required fields"})
		return
	}

	goal, err := h.useCase.UpdateGoal(c.Param("id"), input)
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill in all the required fields"})
		case errors.Is(err, usecases.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Goal not found"})
		default:
			log.Printf("Error updating goal: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating goal"})
		}
		return
	}

	c.JSON(http.StatusOK, goal)
}

// DeleteGoal handles DELETE /api/goals/:id. Deleting a missing goal
// still returns 200, with a null body.
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	goal, err := h.useCase.DeleteGoal(c.Param("id"))
	if err != nil {
		log.Printf("Error deleting goal: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting goal"})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// GetGoalsByUser handles GET /api/goals/user/:id
func (h *GoalHandler) GetGoalsByUser(c *gin.Context) {
	goals, err := h.useCase.GetGoalsByUser(c.Param("id"))
	if err != nil {
		log.Printf("Error retrieving goals by user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving goal by user"})
		return
	}
	c.JSON(http.StatusOK, goals)
}

// GetGoalByUserAndDate handles GET /api/goals/user/:id/:date
func (h *GoalHandler) GetGoalByUserAndDate(c *gin.Context) {
	goal, err := h.useCase.GetGoalByUserAndDate(c.Param("id"), c.Param("date"))
	if err != nil {
		log.Printf("Error retrieving goal by user and date: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving goal by user and date"})
		return
	}
	c.JSON(http.StatusOK, goal)
}
