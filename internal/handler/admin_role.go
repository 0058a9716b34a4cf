package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tgo/atrium/apiserver/internal/service"
)

type AdminRoleHandler struct {
	svc *service.AdminRoleService
}

func NewAdminRoleHandler(svc *service.AdminRoleService) *AdminRoleHandler {
	return &AdminRoleHandler{svc: svc}
}

func (h *AdminRoleHandler) List(c *gin.Context) {
	roles, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (h *AdminRoleHandler) Get(c *gin.Context) {
	role, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *AdminRoleHandler) Create(c *gin.Context) {
	var req service.AdminRoleCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	role, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, role)
}

func (h *AdminRoleHandler) Update(c *gin.Context) {
	var req service.AdminRoleUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	role, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *AdminRoleHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "role deleted successfully"})
}
