package auth

import (
	"testing"

	"psrcustoms/apperr"
	"psrcustoms/models"
	"psrcustoms/utils"

	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	admins map[string]*models.AdminUser
}

func (r *fakeAdminRepo) GetByID(id string) (*models.AdminUser, error) {
	for _, a := range r.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) GetByEmail(email string) (*models.AdminUser, error) {
	if a, ok := r.admins[email]; ok {
		return a, nil
	}
	return nil, nil
}

func (r *fakeAdminRepo) Create(admin *models.AdminUser) error {
	r.admins[admin.Email] = admin
	return nil
}

func newService(t *testing.T) (*DefaultAuthService, *models.AdminUser) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	admin := &models.AdminUser{
		ID:           "admin-1",
		Name:         "Admin",
		Email:        "admin@psrcustoms.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	repo := &fakeAdminRepo{admins: map[string]*models.AdminUser{admin.Email: admin}}
	return &DefaultAuthService{Repo: repo}, admin
}

func TestLoginSuccess(t *testing.T) {
	svc, admin := newService(t)

	resp, err := svc.Login(admin.Email, "admin123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.ID != admin.ID || resp.Role != models.RoleAdmin {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Token == "" {
		t.Fatal("empty token")
	}

	sub, err := utils.ExtractIDFromToken(resp.Token)
	if err != nil {
		t.Fatalf("token did not validate: %v", err)
	}
	if sub != admin.ID {
		t.Fatalf("token subject = %q, want %q", sub, admin.ID)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, admin := newService(t)

	_, errUnknown := svc.Login("nobody@psrcustoms.com", "admin123")
	_, errWrongPw := svc.Login(admin.Email, "wrong")

	if errUnknown == nil || errWrongPw == nil {
		t.Fatal("expected both logins to fail")
	}
	if apperr.CodeOf(errUnknown) != apperr.CodeUnauthorized || apperr.CodeOf(errWrongPw) != apperr.CodeUnauthorized {
		t.Fatal("expected unauthorized for both failures")
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("unknown-user and wrong-password errors differ: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestLoginMissingFields(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Login("", "")
	if apperr.CodeOf(err) != apperr.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(apperr.FieldsOf(err)) != 2 {
		t.Fatalf("expected field errors for email and password, got %+v", apperr.FieldsOf(err))
	}
}

func TestCurrentAdmin(t *testing.T) {
	svc, admin := newService(t)

	got, err := svc.CurrentAdmin(admin.ID)
	if err != nil {
		t.Fatalf("current admin: %v", err)
	}
	if got.Email != admin.Email {
		t.Fatalf("email = %q, want %q", got.Email, admin.Email)
	}

	if _, err := svc.CurrentAdmin("ghost"); apperr.CodeOf(err) != apperr.CodeUnauthorized {
		t.Fatalf("expected unauthorized for unknown subject, got %v", err)
	}
}
