package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"psrcustoms/apperr"
	serviceRepo "psrcustoms/database/repository/service"
	"psrcustoms/models"
	"psrcustoms/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// activeListCacheKey holds the public (active-only) catalog listing.
const activeListCacheKey = "catalog:active"

// activeListCacheTTL bounds staleness of the public listing between admin edits.
const activeListCacheTTL = 5 * time.Minute

// DefaultCatalogService implements CatalogService. Cache may be nil; catalog
// reads then go straight to the repository.
type DefaultCatalogService struct {
	Repo  serviceRepo.ServiceRepository
	Cache *redis.Client
}

// List returns services sorted alphabetically by name. The active-only
// listing is served from Redis when possible; cache failures fall through to
// the repository.
func (s *DefaultCatalogService) List(activeOnly bool) ([]models.Service, error) {
	if activeOnly && s.Cache != nil {
		if cached, err := s.Cache.Get(context.Background(), activeListCacheKey).Result(); err == nil {
			var services []models.Service
			if err := json.Unmarshal([]byte(cached), &services); err == nil {
				return services, nil
			}
		}
	}

	services, err := s.Repo.List(activeOnly)
	if err != nil {
		utils.GetLogger().Error("Failed to list services", zap.Error(err))
		return nil, apperr.Internal("Server error", err)
	}

	if activeOnly && s.Cache != nil {
		if payload, err := json.Marshal(services); err == nil {
			if err := s.Cache.Set(context.Background(), activeListCacheKey, payload, activeListCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Failed to cache catalog listing", zap.Error(err))
			}
		}
	}
	return services, nil
}

// Get returns a single service by ID.
func (s *DefaultCatalogService) Get(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch service", zap.String("id", id), zap.Error(err))
		return nil, apperr.Internal("Server error", err)
	}
	if svc == nil {
		return nil, apperr.NotFound("Service not found")
	}
	return svc, nil
}

func validateInput(in models.ServiceInput) []apperr.FieldError {
	var fields []apperr.FieldError
	if in.Name == "" {
		fields = append(fields, apperr.Field("name", "Service name is required"))
	}
	if in.Description == "" {
		fields = append(fields, apperr.Field("description", "Description is required"))
	}
	if in.PriceMin < 0 {
		fields = append(fields, apperr.Field("priceMin", "Price cannot be negative"))
	}
	if in.PriceMax < 0 {
		fields = append(fields, apperr.Field("priceMax", "Price cannot be negative"))
	}
	if in.PriceMax < in.PriceMin {
		fields = append(fields, apperr.Field("priceMax", "Max price must not be below min price"))
	}
	if in.DurationHours < 0 {
		fields = append(fields, apperr.Field("duration", "Duration must be positive"))
	}
	return fields
}

// Create adds a new catalog entry with isActive defaulting to true and
// duration defaulting to 2 hours.
func (s *DefaultCatalogService) Create(in models.ServiceInput) (*models.Service, error) {
	if fields := validateInput(in); len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	// Pre-check the name so the common collision is a clean Conflict; the
	// unique index still catches the race.
	existing, err := s.Repo.GetByName(in.Name)
	if err != nil {
		utils.GetLogger().Error("Failed to check for existing service", zap.Error(err))
		return nil, apperr.Internal("Server error", err)
	}
	if existing != nil {
		return nil, apperr.Conflict(serviceRepo.ErrDuplicateName.Error())
	}

	svc := &models.Service{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		PriceMin:      in.PriceMin,
		PriceMax:      in.PriceMax,
		ImageURL:      in.ImageURL,
		DurationHours: in.DurationHours,
		IsActive:      true,
	}
	if svc.DurationHours == 0 {
		svc.DurationHours = 2
	}

	if err := s.Repo.Create(svc); err != nil {
		if errors.Is(err, serviceRepo.ErrDuplicateName) {
			return nil, apperr.Conflict(err.Error())
		}
		utils.GetLogger().Error("Failed to create service", zap.Error(err))
		return nil, apperr.Internal("Server error", err)
	}

	s.invalidateCache()
	return svc, nil
}

// Update applies a partial edit and returns the updated entry.
func (s *DefaultCatalogService) Update(id string, in models.ServiceUpdate) (*models.Service, error) {
	fields := make(map[string]interface{})
	var bad []apperr.FieldError

	if in.Name != nil {
		if *in.Name == "" {
			bad = append(bad, apperr.Field("name", "Service name is required"))
		} else {
			fields["name"] = *in.Name
		}
	}
	if in.Description != nil {
		if *in.Description == "" {
			bad = append(bad, apperr.Field("description", "Description is required"))
		} else {
			fields["description"] = *in.Description
		}
	}
	if in.PriceMin != nil {
		if *in.PriceMin < 0 {
			bad = append(bad, apperr.Field("priceMin", "Price cannot be negative"))
		} else {
			fields["priceMin"] = *in.PriceMin
		}
	}
	if in.PriceMax != nil {
		if *in.PriceMax < 0 {
			bad = append(bad, apperr.Field("priceMax", "Price cannot be negative"))
		} else {
			fields["priceMax"] = *in.PriceMax
		}
	}
	if in.ImageURL != nil {
		fields["imageUrl"] = *in.ImageURL
	}
	if in.DurationHours != nil {
		if *in.DurationHours <= 0 {
			bad = append(bad, apperr.Field("duration", "Duration must be positive"))
		} else {
			fields["duration"] = *in.DurationHours
		}
	}
	if in.IsActive != nil {
		fields["isActive"] = *in.IsActive
	}

	if len(bad) > 0 {
		return nil, apperr.Validation(bad...)
	}
	if len(fields) == 0 {
		return s.Get(id)
	}

	svc, err := s.Repo.Update(id, fields)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrDuplicateName) {
			return nil, apperr.Conflict(err.Error())
		}
		utils.GetLogger().Error("Failed to update service", zap.String("id", id), zap.Error(err))
		return nil, apperr.Internal("Server error", err)
	}
	if svc == nil {
		return nil, apperr.NotFound("Service not found")
	}

	s.invalidateCache()
	return svc, nil
}

// Delete hard-deletes a catalog entry.
func (s *DefaultCatalogService) Delete(id string) error {
	deleted, err := s.Repo.Delete(id)
	if err != nil {
		utils.GetLogger().Error("Failed to delete service", zap.String("id", id), zap.Error(err))
		return apperr.Internal("Server error", err)
	}
	if !deleted {
		return apperr.NotFound("Service not found")
	}

	s.invalidateCache()
	return nil
}

func (s *DefaultCatalogService) invalidateCache() {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(context.Background(), activeListCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate catalog cache", zap.Error(err))
	}
}
