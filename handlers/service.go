package handlers

import (
	"net/http"

	"psrcustoms/models"
	"psrcustoms/services/catalog"
	"psrcustoms/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler exposes the detailing service catalog.
type ServiceHandler struct {
	Catalog catalog.CatalogService
}

// NewServiceHandler creates a ServiceHandler.
func NewServiceHandler(svc catalog.CatalogService) *ServiceHandler {
	return &ServiceHandler{Catalog: svc}
}

// ListServicesHandler handles GET /api/services. Public callers only ever
// see active entries.
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Catalog.List(true)
	if err != nil {
		respondError(c, err)
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceHandler handles GET /api/services/:id.
func (h *ServiceHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Catalog.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// CreateServiceHandler handles POST /api/services (admin).
func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	var in models.ServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.GetLogger().Warn("Invalid create service request", zap.Error(err))
		badRequest(c, err)
		return
	}

	svc, err := h.Catalog.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler handles PUT /api/services/:id (admin).
func (h *ServiceHandler) UpdateServiceHandler(c *gin.Context) {
	var in models.ServiceUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.GetLogger().Warn("Invalid update service request", zap.Error(err))
		badRequest(c, err)
		return
	}

	svc, err := h.Catalog.Update(c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler handles DELETE /api/services/:id (admin).
func (h *ServiceHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Catalog.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}
