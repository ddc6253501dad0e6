package models

import "time"

// Booking statuses. A booking starts as pending and is moved through the set
// by an administrator.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Vehicle types accepted on the booking form.
const (
	VehicleCar   = "car"
	VehicleBike  = "bike"
	VehicleSUV   = "suv"
	VehicleOther = "other"
)

// IsValidStatus reports whether s is one of the enumerated booking statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsValidVehicleType reports whether t is an accepted vehicle type.
func IsValidVehicleType(t string) bool {
	switch t {
	case VehicleCar, VehicleBike, VehicleSUV, VehicleOther:
		return true
	}
	return false
}

// Booking is a customer appointment request referencing one catalog Service.
// The Service field is populated at read time by the booking service; it is
// never stored with the document.
type Booking struct {
	ID           string          `bson:"id" json:"id"`
	Name         string          `bson:"name" json:"name"`
	Phone        string          `bson:"phone" json:"phone"`
	VehicleType  string          `bson:"vehicleType" json:"vehicleType"`
	VehicleModel string          `bson:"vehicleModel" json:"vehicleModel"`
	ServiceID    string          `bson:"serviceId" json:"serviceId"`
	Date         time.Time       `bson:"date" json:"date"`
	Status       string          `bson:"status" json:"status"`
	Notes        string          `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
	Service      *ServiceSummary `bson:"-" json:"service,omitempty"`
}

// BookingInput is the public booking-form payload.
type BookingInput struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	VehicleType  string `json:"vehicleType"`
	VehicleModel string `json:"vehicleModel"`
	ServiceID    string `json:"serviceId"`
	Date         string `json:"date"`
	Notes        string `json:"notes"`
}

// BookingUpdate is the admin-side partial update. Only the documented fields
// are writable; anything else in the request body is ignored.
type BookingUpdate struct {
	Status *string `json:"status"`
	Date   *string `json:"date"`
	Notes  *string `json:"notes"`
}
