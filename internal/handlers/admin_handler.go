package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lifeline-app/lifeline-api/internal/access"
)

// GetStats returns the dashboard snapshot. Admin-only; the access
// wrapper has already enforced the role.
func (h *Handler) GetStats(c *gin.Context, ac access.Context) {
	snap, err := h.StatsSvc.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// DeleteUser removes a user account and its todos and occupation.
func (h *Handler) DeleteUser(c *gin.Context, ac access.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if userID == ac.User.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Admins cannot delete their own account"})
		return
	}

	err = h.Store.DeleteUser(c.Request.Context(), userID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
