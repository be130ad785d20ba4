package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifeline-app/lifeline-api/internal/access"
	"github.com/lifeline-app/lifeline-api/internal/models"
)

// GetOccupation returns the caller's occupation, or 404 if none is on
// file yet.
func (h *Handler) GetOccupation(c *gin.Context, ac access.Context) {
	occ, err := h.Store.FindOccupationByUser(c.Request.Context(), ac.User.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve occupation"})
		return
	}
	if occ == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No occupation on file"})
		return
	}
	c.JSON(http.StatusOK, occ)
}

// SetOccupation creates or replaces the caller's occupation. Only
// professional accounts carry one.
func (h *Handler) SetOccupation(c *gin.Context, ac access.Context) {
	if ac.User.AccountType != models.AccountProfessional {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only professional accounts have an occupation"})
		return
	}

	var req struct {
		Title string `json:"title" binding:"required"`
		Years int    `json:"years" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	occ := models.Occupation{
		UserID: ac.User.ID,
		Title:  req.Title,
		Years:  req.Years,
	}
	if err := h.Store.UpsertOccupation(c.Request.Context(), &occ); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save occupation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Occupation saved successfully"})
}
