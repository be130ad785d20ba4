package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lifeline-app/lifeline-api/internal/access"
)

// GetMe returns the profile of the currently authenticated user. The
// access wrapper has already resolved it; no further lookup needed.
func (h *Handler) GetMe(c *gin.Context, ac access.Context) {
	c.JSON(http.StatusOK, ac.User)
}

// UpdateMe lets a user change their own profile fields.
func (h *Handler) UpdateMe(c *gin.Context, ac access.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	fields := bson.M{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No update fields provided"})
		return
	}

	err := h.Store.UpdateUserProfile(c.Request.Context(), ac.User.ID, fields)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
