package handlers

import adminRepo "psrcustoms/database/repository/admin"

// HandlerBundle groups the handlers and the repository the auth middleware
// needs, so route registration takes a single argument.
type HandlerBundle struct {
	AdminRepo adminRepo.AdminRepository

	Auth     *AuthHandler
	Services *ServiceHandler
	Bookings *BookingHandler
	Contact  *ContactHandler
	Admin    *AdminHandler
}
