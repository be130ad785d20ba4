package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lifeline-app/lifeline-api/internal/auth"
	"github.com/lifeline-app/lifeline-api/internal/models"
	"github.com/lifeline-app/lifeline-api/internal/store"
)

type RegisterUserRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	AccountType string `json:"accountType"`
}

// RegisterUser creates a user record and assigns it the token
// identifier that every later lookup keys on.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accountType := models.AccountType(req.AccountType)
	if req.AccountType == "" {
		accountType = models.AccountClient
	}
	if !accountType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accountType must be client or professional"})
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		ID:              primitive.NewObjectID(),
		Name:            req.Name,
		Email:           req.Email,
		Password:        hashedPassword,
		TokenIdentifier: "lifeline|" + primitive.NewObjectID().Hex(),
		AccountType:     accountType,
		Role:            models.RoleUser, // admins are promoted out of band
	}

	if err := h.Store.InsertUser(c.Request.Context(), &user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
			return
		}
		log.Printf("RegisterUser: insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login checks credentials and issues an identity token carrying the
// user's token identifier.
func (h *Handler) Login(c *gin.Context) {
	var loginReq struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	user, err := h.Store.FindUserByEmail(c.Request.Context(), loginReq.Email)
	if err != nil {
		log.Printf("Login: user lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if user == nil || !auth.CheckPasswordHash(loginReq.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.Verifier.Issue(user.TokenIdentifier)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
