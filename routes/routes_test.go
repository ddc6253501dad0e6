package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	adminRepoPkg "psrcustoms/database/repository/admin"
	serviceRepoPkg "psrcustoms/database/repository/service"
	"psrcustoms/handlers"
	"psrcustoms/models"
	"psrcustoms/routes"
	"psrcustoms/services/auth"
	"psrcustoms/services/booking"
	"psrcustoms/services/catalog"
	"psrcustoms/services/contact"
	"psrcustoms/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// ---- in-memory fakes ----

type fakeAdminRepo struct {
	admins []*models.AdminUser
}

var _ adminRepoPkg.AdminRepository = (*fakeAdminRepo)(nil)

func (r *fakeAdminRepo) GetByID(id string) (*models.AdminUser, error) {
	for _, a := range r.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) GetByEmail(email string) (*models.AdminUser, error) {
	for _, a := range r.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) Create(admin *models.AdminUser) error {
	r.admins = append(r.admins, admin)
	return nil
}

type fakeServiceRepo struct {
	services map[string]*models.Service
}

var _ serviceRepoPkg.ServiceRepository = (*fakeServiceRepo)(nil)

func (r *fakeServiceRepo) List(activeOnly bool) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if activeOnly && !s.IsActive {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeServiceRepo) GetByName(name string) (*models.Service, error) {
	for _, s := range r.services {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeServiceRepo) GetByIDs(ids []string) (map[string]models.Service, error) {
	out := make(map[string]models.Service)
	for _, id := range ids {
		if s, ok := r.services[id]; ok {
			out[id] = *s
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) Count() (int64, error) { return int64(len(r.services)), nil }

func (r *fakeServiceRepo) Create(svc *models.Service) error {
	for _, s := range r.services {
		if s.Name == svc.Name {
			return serviceRepoPkg.ErrDuplicateName
		}
	}
	cp := *svc
	r.services[svc.ID] = &cp
	return nil
}

func (r *fakeServiceRepo) Update(id string, fields map[string]interface{}) (*models.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "name":
			s.Name = v.(string)
		case "description":
			s.Description = v.(string)
		case "priceMin":
			s.PriceMin = v.(float64)
		case "priceMax":
			s.PriceMax = v.(float64)
		case "imageUrl":
			s.ImageURL = v.(string)
		case "duration":
			s.DurationHours = v.(int)
		case "isActive":
			s.IsActive = v.(bool)
		}
	}
	cp := *s
	return &cp, nil
}

func (r *fakeServiceRepo) Delete(id string) (bool, error) {
	if _, ok := r.services[id]; !ok {
		return false, nil
	}
	delete(r.services, id)
	return true, nil
}

type fakeBookingRepo struct {
	bookings []models.Booking
	clock    time.Time
}

func (r *fakeBookingRepo) tick() time.Time {
	r.clock = r.clock.Add(time.Minute)
	return r.clock
}

func (r *fakeBookingRepo) Create(b *models.Booking) error {
	now := r.tick()
	b.CreatedAt = now
	b.UpdatedAt = now
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	out := make([]models.Booking, len(r.bookings))
	copy(out, r.bookings)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			cp := b
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) Update(id string, fields map[string]interface{}) (*models.Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID != id {
			continue
		}
		b := &r.bookings[i]
		for k, v := range fields {
			switch k {
			case "status":
				b.Status = v.(string)
			case "date":
				b.Date = v.(time.Time)
			case "notes":
				b.Notes = v.(string)
			}
		}
		b.UpdatedAt = r.tick()
		cp := *b
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeBookingRepo) Delete(id string) (bool, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeMessageRepo struct {
	messages []models.ContactMessage
	clock    time.Time
}

func (r *fakeMessageRepo) Create(m *models.ContactMessage) error {
	r.clock = r.clock.Add(time.Minute)
	m.CreatedAt = r.clock
	r.messages = append(r.messages, *m)
	return nil
}

func (r *fakeMessageRepo) GetAll() ([]models.ContactMessage, error) {
	out := make([]models.ContactMessage, len(r.messages))
	copy(out, r.messages)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ---- test server ----

type env struct {
	router   *gin.Engine
	admins   *fakeAdminRepo
	services *fakeServiceRepo
	bookings *fakeBookingRepo
	messages *fakeMessageRepo
	token    string
}

const (
	adminEmail    = "admin@psrcustoms.com"
	adminPassword = "admin123"
	seededService = "svc-1"
)

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	admins := &fakeAdminRepo{admins: []*models.AdminUser{{
		ID:           "admin-1",
		Name:         "Admin",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}}}
	serviceStore := &fakeServiceRepo{services: map[string]*models.Service{
		seededService: {
			ID: seededService, Name: "Ceramic Coating", Description: "Hydrophobic layer",
			PriceMin: 15000, PriceMax: 50000, DurationHours: 24, IsActive: true,
		},
		"svc-2": {
			ID: "svc-2", Name: "Waxing", Description: "Retired offering",
			PriceMin: 500, PriceMax: 1500, DurationHours: 2, IsActive: false,
		},
	}}
	bookingStore := &fakeBookingRepo{clock: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}
	messageStore := &fakeMessageRepo{clock: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}

	catalogService := &catalog.DefaultCatalogService{Repo: serviceStore}
	hb := &handlers.HandlerBundle{
		AdminRepo: admins,
		Auth:      handlers.NewAuthHandler(&auth.DefaultAuthService{Repo: admins}),
		Services:  handlers.NewServiceHandler(catalogService),
		Bookings:  handlers.NewBookingHandler(&booking.DefaultBookingService{Repo: bookingStore, Services: serviceStore}),
		Contact:   handlers.NewContactHandler(&contact.DefaultContactService{Repo: messageStore}),
		Admin:     handlers.NewAdminHandler(&contact.DefaultContactService{Repo: messageStore}, catalogService),
	}

	router := gin.New()
	routes.RegisterRoutes(router, hb)

	token, err := utils.GenerateToken("admin-1", adminEmail, utils.AdminTokenTTL)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	return &env{router: router, admins: admins, services: serviceStore, bookings: bookingStore, messages: messageStore, token: token}
}

func (e *env) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func validBooking() map[string]interface{} {
	return map[string]interface{}{
		"name":         "Ravi Kumar",
		"phone":        "+91 98765 43210",
		"vehicleType":  "car",
		"vehicleModel": "Swift",
		"serviceId":    seededService,
		"date":         "2026-09-15",
		"notes":        "Morning slot preferred",
	}
}

// ---- tests ----

func TestHealthRoute(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/api/health", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]interface{}
	decode(t, w, &body)
	if body["status"] != "OK" {
		t.Fatalf("status field = %v", body["status"])
	}
}

func TestUnmatchedRoute(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/api/nope", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]string
	decode(t, w, &body)
	if body["error"] != "Route not found" {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestLoginAndMe(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": adminEmail, "password": adminPassword,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		ID    string `json:"id"`
		Role  string `json:"role"`
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	if resp.Token == "" || resp.Role != models.RoleAdmin {
		t.Fatalf("unexpected login response: %+v", resp)
	}

	w = e.do(t, http.MethodGet, "/api/auth/me", nil, resp.Token)
	if w.Code != http.StatusOK {
		t.Fatalf("me status = %d", w.Code)
	}
	var me struct {
		Email        string `json:"email"`
		PasswordHash string `json:"password_hash"`
	}
	decode(t, w, &me)
	if me.Email != adminEmail {
		t.Fatalf("me email = %q", me.Email)
	}
	if me.PasswordHash != "" {
		t.Fatal("password hash leaked in /me response")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	e := newEnv(t)

	for _, creds := range []map[string]string{
		{"email": "nobody@psrcustoms.com", "password": adminPassword},
		{"email": adminEmail, "password": "wrong"},
	} {
		w := e.do(t, http.MethodPost, "/api/auth/login", creds, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d for %v", w.Code, creds)
		}
	}
}

func TestAuthGate(t *testing.T) {
	e := newEnv(t)

	expired, err := utils.GenerateToken("admin-1", adminEmail, -time.Minute)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	endpoints := []struct {
		method, path string
		body         interface{}
	}{
		{http.MethodGet, "/api/auth/me", nil},
		{http.MethodGet, "/api/bookings", nil},
		{http.MethodPut, "/api/bookings/some-id", map[string]string{"status": "confirmed"}},
		{http.MethodDelete, "/api/bookings/some-id", nil},
		{http.MethodPost, "/api/services", map[string]interface{}{"name": "X", "description": "y", "priceMin": 1, "priceMax": 2}},
		{http.MethodGet, "/api/admin/dashboard/messages", nil},
	}
	tokens := map[string]string{"missing": "", "garbled": "not.a.token", "expired": expired}

	before, _ := e.services.Count()
	for name, tok := range tokens {
		for _, ep := range endpoints {
			w := e.do(t, ep.method, ep.path, ep.body, tok)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("%s token on %s %s: status = %d", name, ep.method, ep.path, w.Code)
			}
		}
	}
	after, _ := e.services.Count()
	if before != after {
		t.Fatal("rejected request mutated the catalog")
	}
	if len(e.bookings.bookings) != 0 {
		t.Fatal("rejected request mutated bookings")
	}
}

func TestDashboardForbiddenForOtherRoles(t *testing.T) {
	e := newEnv(t)

	e.admins.admins = append(e.admins.admins, &models.AdminUser{
		ID: "viewer-1", Name: "Viewer", Email: "viewer@psrcustoms.com", Role: "viewer",
	})
	viewerToken, err := utils.GenerateToken("viewer-1", "viewer@psrcustoms.com", utils.AdminTokenTTL)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	w := e.do(t, http.MethodGet, "/api/admin/dashboard/messages", nil, viewerToken)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}

func TestPublicServicesListActiveOnly(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/api/services", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var services []models.Service
	decode(t, w, &services)
	if len(services) != 1 || services[0].Name != "Ceramic Coating" {
		t.Fatalf("public list = %+v, want only the active service", services)
	}
}

func TestAdminServicesListIncludesInactive(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodGet, "/api/admin/dashboard/services", nil, e.token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var services []models.Service
	decode(t, w, &services)
	if len(services) != 2 {
		t.Fatalf("admin list has %d entries, want 2", len(services))
	}
}

func TestCreateServiceConflict(t *testing.T) {
	e := newEnv(t)

	payload := map[string]interface{}{
		"name": "Ceramic Coating", "description": "dupe", "priceMin": 1, "priceMax": 2,
	}
	w := e.do(t, http.MethodPost, "/api/services", payload, e.token)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", w.Code, w.Body.String())
	}
}

func TestBookingLifecycle(t *testing.T) {
	e := newEnv(t)

	// Public creation embeds the service summary.
	w := e.do(t, http.MethodPost, "/api/bookings", validBooking(), "")
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}
	var created models.Booking
	decode(t, w, &created)
	if created.Status != models.StatusPending {
		t.Fatalf("status = %q, want pending", created.Status)
	}
	if created.Service == nil || created.Service.Name != "Ceramic Coating" {
		t.Fatalf("missing embedded summary: %+v", created.Service)
	}

	// Admin listing.
	w = e.do(t, http.MethodGet, "/api/bookings", nil, e.token)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var list []models.Booking
	decode(t, w, &list)
	if len(list) != 1 || list[0].ID != created.ID {
		t.Fatalf("unexpected list: %+v", list)
	}

	// Invalid status is rejected, stored value untouched.
	w = e.do(t, http.MethodPut, "/api/bookings/"+created.ID, map[string]string{"status": "archived"}, e.token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid status update = %d", w.Code)
	}

	w = e.do(t, http.MethodPut, "/api/bookings/"+created.ID, map[string]string{"status": "confirmed"}, e.token)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}
	var updated models.Booking
	decode(t, w, &updated)
	if updated.Status != models.StatusConfirmed {
		t.Fatalf("status = %q, want confirmed", updated.Status)
	}

	w = e.do(t, http.MethodGet, "/api/bookings/"+created.ID, nil, e.token)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	// Delete twice: ack then 404.
	w = e.do(t, http.MethodDelete, "/api/bookings/"+created.ID, nil, e.token)
	if w.Code != http.StatusOK {
		t.Fatalf("first delete = %d", w.Code)
	}
	w = e.do(t, http.MethodDelete, "/api/bookings/"+created.ID, nil, e.token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete = %d, want 404", w.Code)
	}
}

func TestBookingUnknownService(t *testing.T) {
	e := newEnv(t)

	payload := validBooking()
	payload["serviceId"] = "ghost"
	w := e.do(t, http.MethodPost, "/api/bookings", payload, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if len(e.bookings.bookings) != 0 {
		t.Fatal("booking persisted despite missing service")
	}
}

func TestBookingValidationDetail(t *testing.T) {
	e := newEnv(t)

	payload := validBooking()
	payload["phone"] = ""
	w := e.do(t, http.MethodPost, "/api/bookings", payload, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	decode(t, w, &body)
	if len(body.Errors) != 1 || body.Errors[0].Field != "phone" {
		t.Fatalf("unexpected validation detail: %+v", body.Errors)
	}
}

func TestContactIntake(t *testing.T) {
	e := newEnv(t)

	// Each missing field is a 400 and nothing is stored.
	full := map[string]string{
		"name": "Priya", "email": "priya@example.com",
		"subject": "Quote", "message": "How much for PPF on a hatchback?",
	}
	for _, field := range []string{"name", "email", "subject", "message"} {
		payload := make(map[string]string, len(full))
		for k, v := range full {
			payload[k] = v
		}
		payload[field] = ""
		w := e.do(t, http.MethodPost, "/api/contact", payload, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("missing %s: status = %d", field, w.Code)
		}
	}
	if len(e.messages.messages) != 0 {
		t.Fatal("rejected submissions were stored")
	}

	w := e.do(t, http.MethodPost, "/api/contact", full, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("submit status = %d: %s", w.Code, w.Body.String())
	}

	second := map[string]string{
		"name": "Arjun", "email": "arjun@example.com",
		"subject": "Timing", "message": "Are you open on Sundays?",
	}
	if w := e.do(t, http.MethodPost, "/api/contact", second, ""); w.Code != http.StatusCreated {
		t.Fatalf("second submit status = %d", w.Code)
	}

	w = e.do(t, http.MethodGet, "/api/admin/dashboard/messages", nil, e.token)
	if w.Code != http.StatusOK {
		t.Fatalf("messages status = %d", w.Code)
	}
	var msgs []models.ContactMessage
	decode(t, w, &msgs)
	if len(msgs) != 2 {
		t.Fatalf("message list has %d entries, want 2", len(msgs))
	}
	if msgs[0].Name != "Arjun" {
		t.Fatal("messages not newest first")
	}
}
