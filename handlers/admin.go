package handlers

import (
	"net/http"

	"psrcustoms/models"
	"psrcustoms/services/catalog"
	"psrcustoms/services/contact"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the admin dashboard listings.
type AdminHandler struct {
	Contact contact.ContactService
	Catalog catalog.CatalogService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(contactSvc contact.ContactService, catalogSvc catalog.CatalogService) *AdminHandler {
	return &AdminHandler{Contact: contactSvc, Catalog: catalogSvc}
}

// ListMessagesHandler handles GET /api/admin/dashboard/messages.
func (h *AdminHandler) ListMessagesHandler(c *gin.Context) {
	messages, err := h.Contact.List()
	if err != nil {
		respondError(c, err)
		return
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}
	c.JSON(http.StatusOK, messages)
}

// ListAllServicesHandler handles GET /api/admin/dashboard/services. Unlike
// the public catalog listing, inactive entries are included so they can be
// edited or reactivated.
func (h *AdminHandler) ListAllServicesHandler(c *gin.Context) {
	services, err := h.Catalog.List(false)
	if err != nil {
		respondError(c, err)
		return
	}
	if services == nil {
		services = []models.Service{}
	}
	c.JSON(http.StatusOK, services)
}
