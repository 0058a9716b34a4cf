package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tgo/atrium/apiserver/internal/service"
)

type EnterpriseAdminHandler struct {
	svc *service.EnterpriseAdminService
}

func NewEnterpriseAdminHandler(svc *service.EnterpriseAdminService) *EnterpriseAdminHandler {
	return &EnterpriseAdminHandler{svc: svc}
}

func (h *EnterpriseAdminHandler) List(c *gin.Context) {
	admins, err := h.svc.List(c.Request.Context(), c.Query("enterprise_client_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, admins)
}

func (h *EnterpriseAdminHandler) Get(c *gin.Context) {
	admin, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

func (h *EnterpriseAdminHandler) Create(c *gin.Context) {
	var req service.EnterpriseAdminCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	admin, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, admin)
}

func (h *EnterpriseAdminHandler) Update(c *gin.Context) {
	var req service.EnterpriseAdminUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	admin, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

func (h *EnterpriseAdminHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "enterprise admin deleted successfully"})
}
