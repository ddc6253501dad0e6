package auth

import "psrcustoms/models"

// AuthResponse is returned on a successful login.
type AuthResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

// AuthService validates administrator credentials and resolves the admin
// behind a verified token subject.
type AuthService interface {
	// Login checks the credentials and issues a 7-day access token. Unknown
	// email and wrong password fail identically to avoid user enumeration.
	Login(email, password string) (*AuthResponse, error)
	// CurrentAdmin resolves an admin by the ID carried in a verified token.
	CurrentAdmin(id string) (*models.AdminUser, error)
}
