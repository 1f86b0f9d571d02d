package main

import (
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yrfilms/studio-backend/internal/config"
	dbpkg "github.com/yrfilms/studio-backend/internal/db"
	"github.com/yrfilms/studio-backend/internal/models"
)

// Populates the database with demo content for local development.
// Wipes all existing rows first.
func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	log.Println("clearing existing data...")
	for _, model := range []any{
		&models.Booking{},
		&models.Service{},
		&models.GalleryImage{},
		&models.Project{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			log.Fatalf("failed to clear table: %v", err)
		}
	}

	seedUsers(db, cfg)
	seedProjects(db)
	seedServices(db)
	seedGallery(db)
	seedBookings(db)

	log.Println("database seeding completed")
	log.Printf("admin login: %s / %s", cfg.AdminEmail, cfg.AdminPassword)
}

func seedUsers(db *gorm.DB, cfg *config.Config) {
	users := []struct {
		name, email, password, role string
	}{
		{"Admin", cfg.AdminEmail, cfg.AdminPassword, models.RoleAdmin},
		{"John Doe", "user@yrfilms.com", "user123", models.RoleUser},
	}

	for _, u := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		user := models.User{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hashed),
			Role:         u.role,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("failed to create user %s: %v", u.email, err)
		}
	}
	log.Println("seeded 2 users")
}

func demoImage(src, alt string, order int) models.ProjectImage {
	return models.ProjectImage{
		ID:    uuid.NewString(),
		Src:   src,
		Alt:   alt,
		Key:   "",
		Order: order,
	}
}

func seedProjects(db *gorm.DB) {
	projects := []models.Project{
		{
			Title:       "Elegant Wedding Celebration",
			Description: "A beautiful outdoor wedding ceremony captured with cinematic precision. Every moment from the vows to the first dance was documented with artistic vision.",
			Category:    models.CategoryWeddings,
			CoverImage:  "https://images.unsplash.com/photo-1519741497674-611481863552?w=800",
			Images: datatypes.JSONSlice[models.ProjectImage]{
				demoImage("https://images.unsplash.com/photo-1519741497674-611481863552?w=800", "Wedding ceremony", 0),
				demoImage("https://images.unsplash.com/photo-1511285560929-80b456fea0bc?w=800", "Wedding reception", 1),
				demoImage("https://images.unsplash.com/photo-1464366400600-7168b8af9bc3?w=800", "Bridal portraits", 2),
			},
			Technologies: datatypes.JSONSlice[string]{"Canon EOS R5", "Sony A7III"},
			Featured:     true,
			Visible:      true,
			Date:         "2024-06-15",
		},
		{
			Title:       "Corporate Headshots Collection",
			Description: "Professional headshots for a tech company team. Clean, modern aesthetic with consistent lighting and composition.",
			Category:    models.CategoryCorporate,
			CoverImage:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800",
			Images: datatypes.JSONSlice[models.ProjectImage]{
				demoImage("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800", "Corporate headshot", 0),
				demoImage("https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=800", "Professional portrait", 1),
			},
			Technologies: datatypes.JSONSlice[string]{"Studio Lighting", "Canon EOS R5"},
			Visible:      true,
			Date:         "2024-05-20",
		},
		{
			Title:       "Portrait Session - Family",
			Description: "A warm family portrait session in natural light. Capturing genuine connections and timeless moments.",
			Category:    models.CategoryPortraits,
			CoverImage:  "https://images.unsplash.com/photo-1511895426328-dc8714191300?w=800",
			Images: datatypes.JSONSlice[models.ProjectImage]{
				demoImage("https://images.unsplash.com/photo-1511895426328-dc8714191300?w=800", "Family portrait", 0),
				demoImage("https://images.unsplash.com/photo-1516589178581-6cd7833ae3b2?w=800", "Family moments", 1),
			},
			Technologies: datatypes.JSONSlice[string]{"Natural Light", "Sony A7III"},
			Featured:     true,
			Visible:      true,
			Date:         "2024-07-10",
		},
		{
			Title:       "Music Festival Coverage",
			Description: "Dynamic event photography capturing the energy and atmosphere of a major music festival.",
			Category:    models.CategoryEvents,
			CoverImage:  "https://images.unsplash.com/photo-1470229722913-7c0e2dbbafb3?w=800",
			Images: datatypes.JSONSlice[models.ProjectImage]{
				demoImage("https://images.unsplash.com/photo-1470229722913-7c0e2dbbafb3?w=800", "Concert stage", 0),
				demoImage("https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=800", "Crowd energy", 1),
			},
			Technologies: datatypes.JSONSlice[string]{"Event Photography", "Canon EOS R5"},
			Visible:      true,
			Date:         "2024-08-05",
		},
	}

	if err := db.Create(&projects).Error; err != nil {
		log.Fatalf("failed to seed projects: %v", err)
	}
	log.Printf("seeded %d projects", len(projects))
}

func seedServices(db *gorm.DB) {
	services := []models.Service{
		{
			Name:        "Wedding Collection",
			Description: "Complete wedding day coverage with a cinematic approach. We capture every precious moment from preparation to celebration.",
			Price:       250000,
			Duration:    "8-10 hours",
			Includes:    datatypes.JSONSlice[string]{"Two photographers", "Full day coverage", "500+ edited images", "Online gallery", "Engagement session"},
			Popular:     true,
			Enabled:     true,
		},
		{
			Name:        "Portrait Session",
			Description: "Personal or professional portraits crafted with artistic vision. Perfect for individuals, families, or creative projects.",
			Price:       35000,
			Duration:    "2 hours",
			Includes:    datatypes.JSONSlice[string]{"Studio or location", "30+ edited images", "Outfit changes", "Light retouching", "Digital delivery"},
			Enabled:     true,
		},
		{
			Name:        "Corporate & Events",
			Description: "Professional event documentation and corporate photography. From conferences to headshots.",
			Price:       85000,
			Duration:    "4 hours",
			Includes:    datatypes.JSONSlice[string]{"Event coverage", "Headshots", "150+ edited images", "Same-day previews", "Commercial license"},
			Enabled:     true,
		},
		{
			Name:        "Editorial & Fashion",
			Description: "High-end fashion and editorial photography for magazines, brands, and creative portfolios.",
			Price:       175000,
			Duration:    "Half day",
			Includes:    datatypes.JSONSlice[string]{"Creative direction", "Studio access", "40+ edited images", "High-end retouching", "Print-ready files"},
			Popular:     true,
			Enabled:     true,
		},
	}

	if err := db.Create(&services).Error; err != nil {
		log.Fatalf("failed to seed services: %v", err)
	}
	log.Printf("seeded %d services", len(services))
}

func seedGallery(db *gorm.DB) {
	images := []models.GalleryImage{
		{Src: "https://images.unsplash.com/photo-1519741497674-611481863552?w=800", Alt: "Wedding ceremony", Category: models.CategoryWeddings, Featured: true, Visible: true, Order: 0},
		{Src: "https://images.unsplash.com/photo-1511895426328-dc8714191300?w=800", Alt: "Family portrait", Category: models.CategoryPortraits, Featured: true, Visible: true, Order: 1},
		{Src: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800", Alt: "Corporate headshot", Category: models.CategoryCorporate, Visible: true, Order: 2},
		{Src: "https://images.unsplash.com/photo-1470229722913-7c0e2dbbafb3?w=800", Alt: "Concert event", Category: models.CategoryEvents, Visible: true, Order: 3},
	}

	if err := db.Create(&images).Error; err != nil {
		log.Fatalf("failed to seed gallery: %v", err)
	}
	log.Printf("seeded %d gallery images", len(images))
}

func seedBookings(db *gorm.DB) {
	bookings := []models.Booking{
		{
			Name:          "Sarah Mitchell",
			Email:         "sarah@example.com",
			Phone:         "+91 98765 43210",
			Service:       "Wedding Collection",
			PreferredDate: "2025-06-15",
			Message:       "We are getting married at the botanical gardens and would love to discuss your wedding packages.",
			Status:        "new",
		},
		{
			Name:          "James & Co Marketing",
			Email:         "james@company.com",
			Phone:         "+91 98765 12345",
			Service:       "Corporate & Events",
			PreferredDate: "2025-02-20",
			Message:       "Looking for corporate headshots for our team of 15 people.",
			Status:        "contacted",
			Notes:         "Sent pricing info via email",
		},
	}

	if err := db.Create(&bookings).Error; err != nil {
		log.Fatalf("failed to seed bookings: %v", err)
	}
	log.Printf("seeded %d bookings", len(bookings))
}
