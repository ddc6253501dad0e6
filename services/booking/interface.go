package booking

import "psrcustoms/models"

// BookingService manages appointment bookings. Creation is public; every
// other operation is admin-only and gated at the HTTP layer.
type BookingService interface {
	// Create validates the form input, resolves the referenced service, and
	// stores the booking with status pending. The returned booking carries
	// the service summary for display.
	Create(in models.BookingInput) (*models.Booking, error)
	// List returns all bookings sorted by appointment date ascending (ties:
	// newest created first), each with its service summary embedded.
	List() ([]models.Booking, error)
	// Get returns a single booking with its service summary (including the
	// description on this path).
	Get(id string) (*models.Booking, error)
	// Update applies a partial edit limited to status, date, and notes.
	Update(id string, in models.BookingUpdate) (*models.Booking, error)
	// Delete hard-deletes a booking. Deleting an absent ID is NotFound.
	Delete(id string) error
}
