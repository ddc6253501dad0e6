package adminRepo

import "psrcustoms/models"

// AdminRepository defines methods for administrator account data access.
type AdminRepository interface {
	// GetByID retrieves an admin by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.AdminUser, error)
	// GetByEmail retrieves an admin by email. Returns (nil, nil) when absent.
	GetByEmail(email string) (*models.AdminUser, error)
	// Create inserts a new admin record.
	Create(admin *models.AdminUser) error
}
