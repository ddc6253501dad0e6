package models

import "time"

// Service is a detailing offering shown on the public site and referenced by
// bookings. Name is unique across the catalog (enforced by a Mongo index).
type Service struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description" json:"description"`
	PriceMin      float64   `bson:"priceMin" json:"priceMin"`
	PriceMax      float64   `bson:"priceMax" json:"priceMax"`
	ImageURL      string    `bson:"imageUrl" json:"imageUrl"`
	DurationHours int       `bson:"duration" json:"duration"`
	IsActive      bool      `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ServiceSummary is the slice of a Service embedded in booking responses.
// The description is only filled on single-booking fetches.
type ServiceSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PriceMin    float64 `json:"priceMin"`
	PriceMax    float64 `json:"priceMax"`
	Description string  `json:"description,omitempty"`
}

// Summary returns the embeddable view of the service.
func (s *Service) Summary(withDescription bool) *ServiceSummary {
	sum := &ServiceSummary{
		ID:       s.ID,
		Name:     s.Name,
		PriceMin: s.PriceMin,
		PriceMax: s.PriceMax,
	}
	if withDescription {
		sum.Description = s.Description
	}
	return sum
}

// ServiceInput carries the fields an administrator submits when creating a
// catalog entry.
type ServiceInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PriceMin      float64 `json:"priceMin"`
	PriceMax      float64 `json:"priceMax"`
	ImageURL      string  `json:"imageUrl"`
	DurationHours int     `json:"duration"`
}

// ServiceUpdate carries a partial catalog edit. Nil fields are left untouched.
type ServiceUpdate struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	PriceMin      *float64 `json:"priceMin"`
	PriceMax      *float64 `json:"priceMax"`
	ImageURL      *string  `json:"imageUrl"`
	DurationHours *int     `json:"duration"`
	IsActive      *bool    `json:"isActive"`
}
