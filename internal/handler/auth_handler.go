package handler

import (
	"net/http"

	"quickchat/internal/services"
	"quickchat/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req httpdto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	err := h.service.Register(c.Request.Context(), services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.String(http.StatusOK, httpdto.MsgUserRegistered)
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req httpdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	method, err := h.service.Login(c.Request.Context(), services.LoginInput{
		Email:       req.Email,
		Password:    req.Password,
		GoogleToken: req.GoogleToken,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	if method == services.LoginWithGoogle {
		c.String(http.StatusOK, httpdto.MsgLoggedInWithGoogle)
		return
	}
	c.String(http.StatusOK, httpdto.MsgLoggedIn)
}
