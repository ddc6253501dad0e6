package contact

import (
	"psrcustoms/apperr"
	messageRepo "psrcustoms/database/repository/message"
	"psrcustoms/models"
	"psrcustoms/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultContactService implements ContactService backed by the message repository.
type DefaultContactService struct {
	Repo messageRepo.MessageRepository
}

// Submit validates and stores a contact message. Email format is not checked;
// the contract only requires the field to be present.
func (s *DefaultContactService) Submit(in models.ContactInput) (*models.ContactMessage, error) {
	var fields []apperr.FieldError
	if in.Name == "" {
		fields = append(fields, apperr.Field("name", "Name is required"))
	}
	if in.Email == "" {
		fields = append(fields, apperr.Field("email", "Email is required"))
	}
	if in.Subject == "" {
		fields = append(fields, apperr.Field("subject", "Subject is required"))
	}
	if in.Message == "" {
		fields = append(fields, apperr.Field("message", "Message is required"))
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	m := &models.ContactMessage{
		ID:      uuid.New().String(),
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}

	if err := s.Repo.Create(m); err != nil {
		utils.GetLogger().Error("Failed to store contact message", zap.Error(err))
		return nil, apperr.Internal("Server error", err)
	}
	return m, nil
}

// List returns all contact messages, newest first.
func (s *DefaultContactService) List() ([]models.ContactMessage, error) {
	messages, err := s.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list contact messages", zap.Error(err))
		return nil, apperr.Internal("Server error", err)
	}
	return messages, nil
}
