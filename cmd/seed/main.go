package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hrgate/internal/config"
	"hrgate/internal/db"
	"hrgate/internal/identity"
	"hrgate/internal/model"
	"hrgate/internal/repository"
)

// seedEmployee describes one roster entry to provision.
type seedEmployee struct {
	Name       string
	Email      string
	HourlyRate string
	Department string
	Role       model.Role
}

var seedRoster = []seedEmployee{
	{Name: "Admin", Email: "admin@hrgate.local", HourlyRate: "0", Department: "Management", Role: model.RoleAdmin},
	{Name: "Sara Khalid", Email: "sara@hrgate.local", HourlyRate: "12.50", Department: "Reception", Role: model.RoleEmployee},
	{Name: "Omar Nasser", Email: "omar@hrgate.local", HourlyRate: "15.00", Department: "Warehouse", Role: model.RoleEmployee},
	{Name: "Lina Haddad", Email: "lina@hrgate.local", HourlyRate: "18.75", Department: "Accounting", Role: model.RoleEmployee},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Identity{}, &model.Employee{}, &model.AttendanceRecord{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	identityRepo := repository.NewIdentityRepository(gormDB)
	employeeRepo := repository.NewEmployeeRepository(gormDB)
	provider := identity.NewLocalProvider(identityRepo)

	ctx := context.Background()
	created, skipped := 0, 0

	for _, entry := range seedRoster {
		// Idempotent by email: an existing identity means the entry was
		// seeded before.
		existing, err := identityRepo.FindByEmail(ctx, entry.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			log.Fatalf("Error checking identity %s: %v", entry.Email, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		token, err := provider.CreateIdentity(ctx, entry.Email, cfg.DefaultPassword)
		if err != nil {
			log.Fatalf("Error creating identity %s: %v", entry.Email, err)
		}

		rate, err := decimal.NewFromString(entry.HourlyRate)
		if err != nil {
			log.Fatalf("Invalid hourly rate for %s: %v", entry.Email, err)
		}

		employee := &model.Employee{
			IdentityToken: token,
			Name:          entry.Name,
			Email:         entry.Email,
			HourlyRate:    rate,
			Department:    entry.Department,
			Role:          entry.Role,
			Active:        true,
		}
		if err := employeeRepo.Create(ctx, employee); err != nil {
			log.Fatalf("Error creating employee %s: %v", entry.Email, err)
		}
		created++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New employees created: %d", created)
	log.Printf("  - Already seeded, skipped: %d", skipped)
}
