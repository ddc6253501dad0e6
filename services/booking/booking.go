package booking

import (
	"regexp"
	"time"

	"psrcustoms/apperr"
	bookingRepo "psrcustoms/database/repository/booking"
	serviceRepo "psrcustoms/database/repository/service"
	"psrcustoms/models"
	"psrcustoms/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// phoneRe matches digits, spaces, dashes, and a plus sign.
var phoneRe = regexp.MustCompile(`^[\d\s\-\+]+$`)

// DefaultBookingService implements BookingService. The service summary on
// responses is an explicit read-time join against the catalog repository.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Services serviceRepo.ServiceRepository
}

// parseDate accepts RFC 3339 timestamps and plain calendar dates. Past dates
// are accepted; the booking form enforces future dates client-side.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func validateInput(in models.BookingInput) ([]apperr.FieldError, time.Time) {
	var fields []apperr.FieldError
	if len(in.Name) < 2 {
		fields = append(fields, apperr.Field("name", "Name must be at least 2 characters"))
	}
	if in.Phone == "" {
		fields = append(fields, apperr.Field("phone", "Phone is required"))
	} else if !phoneRe.MatchString(in.Phone) {
		fields = append(fields, apperr.Field("phone", "Please enter a valid phone number"))
	}
	if !models.IsValidVehicleType(in.VehicleType) {
		fields = append(fields, apperr.Field("vehicleType", "Invalid vehicle type"))
	}
	if in.VehicleModel == "" {
		fields = append(fields, apperr.Field("vehicleModel", "Vehicle model is required"))
	}
	if in.ServiceID == "" {
		fields = append(fields, apperr.Field("serviceId", "Valid service ID is required"))
	}
	date, ok := parseDate(in.Date)
	if !ok {
		fields = append(fields, apperr.Field("date", "Valid date is required"))
	}
	return fields, date
}

// Create validates the input, checks the referenced service exists, and
// persists the booking with status pending.
func (s *DefaultBookingService) Create(in models.BookingInput) (*models.Booking, error) {
	fields, date := validateInput(in)
	if len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	svc, err := s.Services.GetByID(in.ServiceID)
	if err != nil {
		utils.GetLogger().Error("Failed to resolve service for booking", zap.Error(err))
		return nil, apperr.Internal("Server error", err)
	}
	if svc == nil {
		return nil, apperr.NotFound("Service not found")
	}

	b := &models.Booking{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Phone:        in.Phone,
		VehicleType:  in.VehicleType,
		VehicleModel: in.VehicleModel,
		ServiceID:    in.ServiceID,
		Date:         date,
		Status:       models.StatusPending,
		Notes:        in.Notes,
	}

	if err := s.Repo.Create(b); err != nil {
		utils.GetLogger().Error("Failed to create booking", zap.Error(err))
		return nil, apperr.Internal("Server error", err)
	}

	b.Service = svc.Summary(false)
	return b, nil
}

// List returns all bookings in appointment order with service summaries
// embedded via a batch catalog lookup.
func (s *DefaultBookingService) List() ([]models.Booking, error) {
	bookings, err := s.Repo.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings", zap.Error(err))
		return nil, apperr.Internal("Server error", err)
	}
	if len(bookings) == 0 {
		return bookings, nil
	}

	seen := make(map[string]bool)
	var ids []string
	for _, b := range bookings {
		if !seen[b.ServiceID] {
			seen[b.ServiceID] = true
			ids = append(ids, b.ServiceID)
		}
	}

	services, err := s.Services.GetByIDs(ids)
	if err != nil {
		utils.GetLogger().Error("Failed to resolve services for bookings", zap.Error(err))
		return nil, apperr.Internal("Server error", err)
	}

	for i := range bookings {
		if svc, ok := services[bookings[i].ServiceID]; ok {
			bookings[i].Service = svc.Summary(false)
		}
	}
	return bookings, nil
}

// Get returns a single booking with its service summary embedded.
func (s *DefaultBookingService) Get(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch booking", zap.String("id", id), zap.Error(err))
		return nil, apperr.Internal("Server error", err)
	}
	if b == nil {
		return nil, apperr.NotFound("Booking not found")
	}

	s.attachSummary(b, true)
	return b, nil
}

// Update applies a partial edit limited to status, date, and notes. Writes
// are last-write-wins with no version check.
func (s *DefaultBookingService) Update(id string, in models.BookingUpdate) (*models.Booking, error) {
	fields := make(map[string]interface{})
	var bad []apperr.FieldError

	if in.Status != nil {
		if !models.IsValidStatus(*in.Status) {
			bad = append(bad, apperr.Field("status", "Invalid status"))
		} else {
			fields["status"] = *in.Status
		}
	}
	if in.Date != nil {
		if date, ok := parseDate(*in.Date); ok {
			fields["date"] = date
		} else {
			bad = append(bad, apperr.Field("date", "Valid date is required"))
		}
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}

	if len(bad) > 0 {
		return nil, apperr.Validation(bad...)
	}
	if len(fields) == 0 {
		return s.Get(id)
	}

	b, err := s.Repo.Update(id, fields)
	if err != nil {
		utils.GetLogger().Error("Failed to update booking", zap.String("id", id), zap.Error(err))
		return nil, apperr.Internal("Server error", err)
	}
	if b == nil {
		return nil, apperr.NotFound("Booking not found")
	}

	s.attachSummary(b, false)
	return b, nil
}

// Delete hard-deletes a booking; the second delete of the same ID is NotFound.
func (s *DefaultBookingService) Delete(id string) error {
	deleted, err := s.Repo.Delete(id)
	if err != nil {
		utils.GetLogger().Error("Failed to delete booking", zap.String("id", id), zap.Error(err))
		return apperr.Internal("Server error", err)
	}
	if !deleted {
		return apperr.NotFound("Booking not found")
	}
	return nil
}

// attachSummary resolves the referenced service if it still exists. Deleted
// services leave the summary empty; the stored serviceId is kept as-is.
func (s *DefaultBookingService) attachSummary(b *models.Booking, withDescription bool) {
	svc, err := s.Services.GetByID(b.ServiceID)
	if err != nil {
		utils.GetLogger().Warn("Failed to resolve service summary", zap.String("serviceId", b.ServiceID), zap.Error(err))
		return
	}
	if svc != nil {
		b.Service = svc.Summary(withDescription)
	}
}
