package messageRepo

import "psrcustoms/models"

// MessageRepository defines methods for contact-message data access.
// Messages are write-once: there is no update or delete path.
type MessageRepository interface {
	// Create inserts a new contact message.
	Create(m *models.ContactMessage) error
	// GetAll retrieves all messages, newest first.
	GetAll() ([]models.ContactMessage, error)
}
