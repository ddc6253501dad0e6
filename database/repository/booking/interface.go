package bookingRepo

import "psrcustoms/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(b *models.Booking) error
	// GetAll retrieves all bookings sorted by appointment date ascending,
	// ties broken by creation time descending.
	GetAll() ([]models.Booking, error)
	// GetByID retrieves a booking by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Booking, error)
	// Update applies the given field set to a booking and returns the updated
	// record. Returns (nil, nil) when the booking does not exist.
	Update(id string, fields map[string]interface{}) (*models.Booking, error)
	// Delete removes a booking record. Returns (false, nil) when absent.
	Delete(id string) (bool, error)
}
