package handlers

import (
	"errors"
	"net/http"

	"todolist_api/internal/repository"
	"todolist_api/internal/service"

	"github.com/gin-gonic/gin"
)

// cookieMaxAge matches the session TTL (24h), in seconds.
const cookieMaxAge = 86400

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new user with a unique username and email.
func (h *Handler) Register(c *gin.Context) {
	var req service.RegisterInput
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "bad request"})
		return
	}

	user, err := h.Auth.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUser):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email or Username already exists"})
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "could not create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login authenticates by email and password and starts a session.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "bad request"})
		return
	}

	user, token, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "login failed"})
		}
		return
	}

	c.SetCookie(h.Cookie.Name, token, cookieMaxAge, "/", "", h.Cookie.Secure, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}

// Logout destroys the current session and clears the cookie. Calling
// it without a session still clears the cookie and succeeds.
func (h *Handler) Logout(c *gin.Context) {
	token, err := c.Cookie(h.Cookie.Name)
	if err == nil && token != "" {
		if err := h.Auth.Logout(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Logout Failed"})
			return
		}
	}

	c.SetCookie(h.Cookie.Name, "", -1, "/", "", h.Cookie.Secure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout Successful"})
}
