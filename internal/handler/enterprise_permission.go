package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tgo/atrium/apiserver/internal/service"
)

type EnterprisePermissionHandler struct {
	svc *service.EnterprisePermissionService
}

func NewEnterprisePermissionHandler(svc *service.EnterprisePermissionService) *EnterprisePermissionHandler {
	return &EnterprisePermissionHandler{svc: svc}
}

func (h *EnterprisePermissionHandler) List(c *gin.Context) {
	perms, err := h.svc.List(c.Request.Context(), c.Query("enterprise_client_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, perms)
}

func (h *EnterprisePermissionHandler) Get(c *gin.Context) {
	perm, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, perm)
}

func (h *EnterprisePermissionHandler) Create(c *gin.Context) {
	var req service.EnterprisePermissionCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	perm, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, perm)
}

func (h *EnterprisePermissionHandler) Update(c *gin.Context) {
	var req service.EnterprisePermissionUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	perm, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, perm)
}

func (h *EnterprisePermissionHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "enterprise permission deleted successfully"})
}
