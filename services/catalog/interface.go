package catalog

import "psrcustoms/models"

// CatalogService manages the detailing service catalog.
type CatalogService interface {
	// List returns services sorted alphabetically by name. Public callers
	// always receive activeOnly = true.
	List(activeOnly bool) ([]models.Service, error)
	// Get returns a single service by ID.
	Get(id string) (*models.Service, error)
	// Create adds a new catalog entry. A name collision is a Conflict.
	Create(in models.ServiceInput) (*models.Service, error)
	// Update applies a partial edit and returns the updated entry.
	Update(id string, in models.ServiceUpdate) (*models.Service, error)
	// Delete hard-deletes a catalog entry. Prefer deactivation via isActive;
	// existing bookings keep their serviceId with no cascade.
	Delete(id string) error
}
