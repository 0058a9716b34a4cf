package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tgo/atrium/apiserver/internal/apperr"
	"github.com/tgo/atrium/apiserver/internal/middleware"
	"github.com/tgo/atrium/apiserver/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest

	// Accept OAuth2-style form posts (username carries the email) as
	// well as JSON.
	contentType := c.ContentType()
	if contentType == "application/x-www-form-urlencoded" || contentType == "multipart/form-data" {
		req.Email = c.PostForm("username")
		req.Password = c.PostForm("password")
		if req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}

	resp, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		fail(c, apperr.ErrUnauthenticated)
		return
	}
	resp, err := h.svc.Profile(c.Request.Context(), principal)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		fail(c, apperr.ErrUnauthenticated)
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), principal)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout is a server-side no-op; tokens stay valid until expiry and the
// client discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "successfully logged out"})
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		fail(c, apperr.ErrUnauthenticated)
		return
	}
	var req struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.svc.ChangePassword(c.Request.Context(), principal, req.CurrentPassword, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated successfully"})
}
