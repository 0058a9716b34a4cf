package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tgo/atrium/apiserver/internal/service"
)

type EnterpriseRoleHandler struct {
	svc *service.EnterpriseRoleService
}

func NewEnterpriseRoleHandler(svc *service.EnterpriseRoleService) *EnterpriseRoleHandler {
	return &EnterpriseRoleHandler{svc: svc}
}

func (h *EnterpriseRoleHandler) List(c *gin.Context) {
	roles, err := h.svc.List(c.Request.Context(), c.Query("enterprise_client_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (h *EnterpriseRoleHandler) Get(c *gin.Context) {
	role, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, role)
}

func (h *EnterpriseRoleHandler) Create(c *gin.Context) {
	var req service.EnterpriseRoleCreate
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

func (h *EnterpriseRoleHandler) Update(c *gin.Context) {
	var req service.EnterpriseRoleUpdate
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

func (h *EnterpriseRoleHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "enterprise role deleted successfully"})
}
