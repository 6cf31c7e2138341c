package httpHandler

import (
	"errors"
	"log"
	"net/http"
	"tracker-server/entities"
	"tracker-server/middleware"
	"tracker-server/usecases"

	"github.com/gin-gonic/gin"
)

type EntryHandler struct {
	useCase *usecases.EntryUseCase
}

func NewEntryHandler(useCase *usecases.EntryUseCase) *EntryHandler {
	return &EntryHandler{useCase: useCase}
}

// CreateEntry handles POST /api/entries. A missing completed list is a
// storage constraint, surfaced like any other storage failure.
func (h *EntryHandler) CreateEntry(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var entry entities.Entry
	if err := c.ShouldBindJSON(&entry); err != nil {
		log.Printf("Error creating entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating entry"})
		return
	}

	if err := h.useCase.CreateEntry(userID, &entry); err != nil {
		log.Printf("Error creating entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error creating entry"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Entry created successfully",
		"entry":   entry,
	})
}

// GetEntries handles GET /api/entries
func (h *EntryHandler) GetEntries(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	entries, err := h.useCase.ListEntries(userID)
	if err != nil {
		log.Printf("Error retrieving entries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Entries retrieved successfully",
		"entries": entries,
	})
}

// GetEntriesByFilter handles GET /api/entries/filter
func (h *EntryHandler) GetEntriesByFilter(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	entries, err := h.useCase.FilterEntries(userID, c.Request.URL.Query())
	if err != nil {
		log.Printf("Error retrieving entries with filters: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Entries retrieved successfully",
		"entries": entries,
	})
}

// GetEntryByID handles GET /api/entries/:id. An entry owned by someone
// else is reported exactly like a missing one.
func (h *EntryHandler) GetEntryByID(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	entry, err := h.useCase.GetEntry(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Entry not found"})
			return
		}
		log.Printf("Error retrieving entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Entry retrieved successfully",
		"entry":   entry,
	})
}

// UpdateEntry handles PUT /api/entries/:id
func (h *EntryHandler) UpdateEntry(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var update usecases.EntryUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		log.Printf("Error updating entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating entry"})
		return
	}

	entry, err := h.useCase.UpdateEntry(userID, c.Param("id"), update)
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Entry not found"})
			return
		}
		log.Printf("Error updating entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Entry updated successfully",
		"entry":   entry,
	})
}

// DeleteEntry handles DELETE /api/entries/:id
func (h *EntryHandler) DeleteEntry(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	entry, err := h.useCase.DeleteEntry(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, usecases.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Entry not found"})
			return
		}
		log.Printf("Error deleting entry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting entry"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Entry deleted successfully",
		"entry":   entry,
	})
}
