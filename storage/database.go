package storage

import (
	"log"
	"os"

	"primeresidency-server/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func connectToDB() *gorm.DB {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Panic("DB_CONNECTION_STRING environment variable is required")
	}

	db, dbError := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if dbError != nil {
		log.Panic("error connection to db: " + dbError.Error())
	}

	DB = db
	return db
}

func performMigrations(db *gorm.DB) {
	db.AutoMigrate(
		&models.User{},
		&models.Apartment{},
		&models.Booking{},
		&models.Cleaning{},
		&models.Health{},
		&models.Security{},
		&models.Owner{},
		&models.Poll{},
		&models.PollOption{},
		&models.Voter{},
		&models.Notification{},
	)

	// One active reservation per slot. GORM cannot express partial indexes,
	// so the guard against the check-then-insert race is raw DDL.
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_active_slot
		ON bookings (apartment_id, date, slot) WHERE status <> 'cancelled' AND deleted_at IS NULL;`)
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_cleanings_active_slot
		ON cleanings (date, slot) WHERE status <> 'cancelled' AND deleted_at IS NULL;`)
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_healths_active_slot
		ON healths (date, slot) WHERE status <> 'cancelled' AND deleted_at IS NULL;`)
}

func InitializeDB() *gorm.DB {
	db := connectToDB()
	performMigrations(db)
	return db
}
