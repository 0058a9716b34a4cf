package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tgo/atrium/apiserver/internal/middleware"
	"github.com/tgo/atrium/apiserver/internal/service"
)

type EnterpriseUserHandler struct {
	svc *service.EnterpriseUserService
}

func NewEnterpriseUserHandler(svc *service.EnterpriseUserService) *EnterpriseUserHandler {
	return &EnterpriseUserHandler{svc: svc}
}

func (h *EnterpriseUserHandler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context(), c.Query("enterprise_client_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *EnterpriseUserHandler) Get(c *gin.Context) {
	user, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *EnterpriseUserHandler) Create(c *gin.Context) {
	var req service.EnterpriseUserCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	var createdBy string
	if principal, ok := middleware.PrincipalFrom(c); ok {
		createdBy = principal.PrincipalID()
	}
	user, err := h.svc.Create(c.Request.Context(), &req, createdBy)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *EnterpriseUserHandler) Update(c *gin.Context) {
	var req service.EnterpriseUserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	user, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *EnterpriseUserHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "enterprise user deleted successfully"})
}

func (h *EnterpriseUserHandler) Activate(c *gin.Context) {
	user, err := h.svc.SetActive(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *EnterpriseUserHandler) Deactivate(c *gin.Context) {
	user, err := h.svc.SetActive(c.Request.Context(), c.Param("id"), false)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
