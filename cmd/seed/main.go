// Seed tool: provisions the admin account and the stock detailing services.
// Run once against a fresh database. Existing records are left alone.
package main

import (
	"log"

	"psrcustoms/config"
	"psrcustoms/database"
	adminRepoPkg "psrcustoms/database/repository/admin"
	serviceRepoPkg "psrcustoms/database/repository/service"
	"psrcustoms/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var stockServices = []models.Service{
	{
		Name:          "Ceramic Coating",
		Description:   "Premium ceramic coating provides long-lasting protection with hydrophobic properties. Keeps your vehicle looking showroom fresh with enhanced gloss and UV resistance.",
		PriceMin:      15000,
		PriceMax:      50000,
		DurationHours: 24,
	},
	{
		Name:          "Paint Protection Film (PPF)",
		Description:   "Invisible shield that protects your paint from stone chips, scratches, and minor abrasions. Self-healing technology for minor scratches.",
		PriceMin:      25000,
		PriceMax:      80000,
		DurationHours: 48,
	},
	{
		Name:          "Car Washing & Detailing",
		Description:   "Complete exterior wash with hand drying, wheel cleaning, and tire dressing. Interior vacuum, dashboard wipe, and window cleaning included.",
		PriceMin:      500,
		PriceMax:      2000,
		DurationHours: 2,
	},
	{
		Name:          "Interior Cleaning",
		Description:   "Deep interior cleaning including upholstery shampooing, leather conditioning, carpet extraction, and odor elimination.",
		PriceMin:      2000,
		PriceMax:      8000,
		DurationHours: 4,
	},
	{
		Name:          "Scratch & Paint Correction",
		Description:   "Professional paint correction to remove swirl marks, scratches, and oxidation. Restores your paint to like-new condition.",
		PriceMin:      5000,
		PriceMax:      25000,
		DurationHours: 8,
	},
}

func main() {
	config.LoadConfig()
	database.InitDB()

	adminRepo := adminRepoPkg.NewMongoAdminRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()

	// Create the admin user if it does not exist yet.
	email := config.AppConfig.AdminEmail
	password := config.AppConfig.AdminPassword
	if password == "" {
		log.Fatal("ADMIN_PASSWORD must be set to seed the admin account")
	}

	existing, err := adminRepo.GetByEmail(email)
	if err != nil {
		log.Fatalf("failed to check for existing admin: %v", err)
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash admin password: %v", err)
		}
		admin := &models.AdminUser{
			ID:           uuid.New().String(),
			Name:         "Admin",
			Email:        email,
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		}
		if err := adminRepo.Create(admin); err != nil {
			log.Fatalf("failed to create admin user: %v", err)
		}
		log.Printf("Admin user created: %s", email)
	} else {
		log.Println("Admin user already exists")
	}

	// Insert the stock services only into an empty catalog.
	count, err := serviceRepo.Count()
	if err != nil {
		log.Fatalf("failed to count services: %v", err)
	}
	if count > 0 {
		log.Printf("Catalog already has %d services, skipping", count)
		return
	}

	for i := range stockServices {
		svc := stockServices[i]
		svc.ID = uuid.New().String()
		svc.IsActive = true
		if err := serviceRepo.Create(&svc); err != nil {
			log.Fatalf("failed to seed service %q: %v", svc.Name, err)
		}
	}
	log.Printf("Seeded %d services", len(stockServices))
}
