package contact

import "psrcustoms/models"

// ContactService handles contact-form intake and the admin message listing.
type ContactService interface {
	// Submit stores a contact message. All four fields are required; there is
	// no deduplication or spam filtering.
	Submit(in models.ContactInput) (*models.ContactMessage, error)
	// List returns all messages, newest first.
	List() ([]models.ContactMessage, error)
}
