package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tgo/atrium/apiserver/internal/middleware"
	"github.com/tgo/atrium/apiserver/internal/service"
)

type EndClientHandler struct {
	svc *service.EndClientService
}

func NewEndClientHandler(svc *service.EndClientService) *EndClientHandler {
	return &EndClientHandler{svc: svc}
}

func (h *EndClientHandler) List(c *gin.Context) {
	clients, err := h.svc.List(c.Request.Context(), c.Query("enterprise_client_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, clients)
}

func (h *EndClientHandler) Get(c *gin.Context) {
	client, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (h *EndClientHandler) Create(c *gin.Context) {
	var req service.EndClientCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	var createdBy string
	if principal, ok := middleware.PrincipalFrom(c); ok {
		createdBy = principal.PrincipalID()
	}
	client, err := h.svc.Create(c.Request.Context(), &req, createdBy)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

func (h *EndClientHandler) Update(c *gin.Context) {
	var req service.EndClientUpdate
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

func (h *EndClientHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "end client deleted successfully"})
}
