package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lifeline-app/lifeline-api/internal/access"
	"github.com/lifeline-app/lifeline-api/internal/models"
)

// ListTodos returns the caller's todos, newest first.
func (h *Handler) ListTodos(c *gin.Context, ac access.Context) {
	todos, err := h.Store.ListTodos(c.Request.Context(), ac.User.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve todos"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

func (h *Handler) CreateTodo(c *gin.Context, ac access.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	todo := models.Todo{
		ID:     primitive.NewObjectID(),
		UserID: ac.User.ID,
		Text:   req.Text,
	}
	if err := h.Store.InsertTodo(c.Request.Context(), &todo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// CompleteTodo marks one of the caller's todos done (or not done, via
// the optional completed field).
func (h *Handler) CompleteTodo(c *gin.Context, ac access.Context) {
	todoID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo ID"})
		return
	}

	completed := true
	var req struct {
		Completed *bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&req); err == nil && req.Completed != nil {
		completed = *req.Completed
	}

	err = h.Store.SetTodoCompleted(c.Request.Context(), todoID, ac.User.ID, completed)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Todo updated successfully"})
}

func (h *Handler) DeleteTodo(c *gin.Context, ac access.Context) {
	todoID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo ID"})
		return
	}

	err = h.Store.DeleteTodo(c.Request.Context(), todoID, ac.User.ID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}
