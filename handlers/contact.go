package handlers

import (
	"net/http"

	"psrcustoms/models"
	"psrcustoms/services/contact"
	"psrcustoms/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler exposes contact-form intake.
type ContactHandler struct {
	Contact contact.ContactService
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc contact.ContactService) *ContactHandler {
	return &ContactHandler{Contact: svc}
}

// SubmitContactHandler handles POST /api/contact.
func (h *ContactHandler) SubmitContactHandler(c *gin.Context) {
	var in models.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.GetLogger().Warn("Invalid contact request", zap.Error(err))
		badRequest(c, err)
		return
	}

	if _, err := h.Contact.Submit(in); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Message saved successfully",
	})
}
