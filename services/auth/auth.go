package auth

import (
	"psrcustoms/apperr"
	adminRepo "psrcustoms/database/repository/admin"
	"psrcustoms/models"
	"psrcustoms/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// invalidCredentials is the single failure returned for both unknown email
// and wrong password.
const invalidCredentials = "Invalid email or password"

// DefaultAuthService implements AuthService backed by the admin repository.
type DefaultAuthService struct {
	Repo adminRepo.AdminRepository
}

// Login checks the credentials and issues a signed access token.
func (s *DefaultAuthService) Login(email, password string) (*AuthResponse, error) {
	var fields []apperr.FieldError
	if email == "" {
		fields = append(fields, apperr.Field("email", "Valid email is required"))
	}
	if password == "" {
		fields = append(fields, apperr.Field("password", "Password is required"))
	}
	if len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	admin, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch admin for authentication", zap.Error(err))
		return nil, apperr.Internal("Server error", err)
	}
	if admin == nil {
		return nil, apperr.Unauthorized(invalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Unauthorized(invalidCredentials)
	}

	token, err := utils.GenerateToken(admin.ID, admin.Email, utils.AdminTokenTTL)
	if err != nil {
		utils.GetLogger().Error("Failed to generate auth token", zap.Error(err))
		return nil, apperr.Internal("Server error", err)
	}

	return &AuthResponse{
		ID:    admin.ID,
		Name:  admin.Name,
		Email: admin.Email,
		Role:  admin.Role,
		Token: token,
	}, nil
}

// CurrentAdmin resolves an admin by ID. A verified token whose subject no
// longer exists is treated as unauthorized, never as a pass-through.
func (s *DefaultAuthService) CurrentAdmin(id string) (*models.AdminUser, error) {
	admin, err := s.Repo.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch admin", zap.String("id", id), zap.Error(err))
		return nil, apperr.Internal("Server error", err)
	}
	if admin == nil {
		return nil, apperr.Unauthorized("Not authorized")
	}
	return admin, nil
}
