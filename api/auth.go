package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahatoankit/flightbook/internal/auth"
)

type AuthHandler struct {
	sessions *auth.Service
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token      string `json:"token"`
	CustomerID int64  `json:"customer_id,omitempty"`
	Admin      bool   `json:"admin"`
}

func NewAuthHandler(sessions *auth.Service) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/auth/login", h.login)
	router.POST("/auth/logout", h.logout)
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := h.sessions.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loginResponse{
		Token:      session.Token,
		CustomerID: session.CustomerID,
		Admin:      session.Admin,
	})
}

func (h *AuthHandler) logout(c *gin.Context) {
	if session, ok := sessionFromRequest(c, h.sessions); ok {
		h.sessions.Logout(session.Token)
	}
	c.Status(http.StatusNoContent)
}
