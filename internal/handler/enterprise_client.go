package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tgo/atrium/apiserver/internal/service"
)

type EnterpriseClientHandler struct {
	svc *service.EnterpriseClientService
}

func NewEnterpriseClientHandler(svc *service.EnterpriseClientService) *EnterpriseClientHandler {
	return &EnterpriseClientHandler{svc: svc}
}

func (h *EnterpriseClientHandler) List(c *gin.Context) {
	clients, err := h.svc.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *EnterpriseClientHandler) Get(c *gin.Context) {
	client, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *EnterpriseClientHandler) Create(c *gin.Context) {
	var req service.EnterpriseClientCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	client, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *EnterpriseClientHandler) Update(c *gin.Context) {
	var req service.EnterpriseClientUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	client, err := h.svc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *EnterpriseClientHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "enterprise client deleted successfully"})
}

func (h *EnterpriseClientHandler) Activate(c *gin.Context) {
	client, err := h.svc.SetActive(c.Request.Context(), c.Param("id"), true)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *EnterpriseClientHandler) Deactivate(c *gin.Context) {
	client, err := h.svc.SetActive(c.Request.Context(), c.Param("id"), false)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}
