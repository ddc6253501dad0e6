package serviceRepo

import (
	"errors"

	"psrcustoms/models"
)

// ErrDuplicateName is returned when an insert or update collides with the
// unique index on the service name.
var ErrDuplicateName = errors.New("a service with this name already exists")

// ServiceRepository defines methods for catalog data access.
type ServiceRepository interface {
	// List retrieves services sorted alphabetically by name. When activeOnly
	// is true, inactive entries are excluded.
	List(activeOnly bool) ([]models.Service, error)
	// GetByID retrieves a service by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.Service, error)
	// GetByName retrieves a service by its exact name. Returns (nil, nil) when absent.
	GetByName(name string) (*models.Service, error)
	// GetByIDs retrieves the given services keyed by ID. Missing IDs are omitted.
	GetByIDs(ids []string) (map[string]models.Service, error)
	// Count returns the number of services in the catalog.
	Count() (int64, error)
	// Create inserts a new service record. Returns ErrDuplicateName on a
	// name collision.
	Create(svc *models.Service) error
	// Update applies the given field set to a service and returns the updated
	// record. Returns (nil, nil) when the service does not exist.
	Update(id string, fields map[string]interface{}) (*models.Service, error)
	// Delete removes a service record. Returns (false, nil) when absent.
	Delete(id string) (bool, error)
}
