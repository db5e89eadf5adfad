package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tarekelbanna92/rental-egypt/models"
	"github.com/tarekelbanna92/rental-egypt/utils"
)

var DB *gorm.DB

func resolveMySQLDSN() string {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if raw != "" {
		return raw
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "rental_egypt")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	)
}

func ConnectDatabase() error {
	dsn := resolveMySQLDSN()

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err == nil {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		log.Printf("info: cannot get raw sql.DB: %v", err)
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Listing{},
		&models.ListingImage{},
		&models.Booking{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// SeedDatabase creates a demo host and guest (with profiles) on an empty
// database so the API is usable straight after first boot.
func SeedDatabase() {
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount > 0 {
		return
	}

	seedUsers := []struct {
		username string
		email    string
		role     string
	}{
		{"demo_host", "host@rental-egypt.local", models.RoleHost},
		{"demo_guest", "guest@rental-egypt.local", models.RoleGuest},
	}

	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(utils.EnvOrDefault("SEED_PASSWORD", "changeme123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash seed password: %v", err)
			return
		}

		txErr := DB.Transaction(func(tx *gorm.DB) error {
			user := models.User{Username: su.username, Email: su.email, Password: string(hash)}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			return tx.Create(&models.Profile{UserID: user.ID, Role: su.role}).Error
		})
		if txErr != nil {
			log.Printf("warning: failed to seed user %s: %v", su.username, txErr)
			return
		}
	}
	log.Println("Demo users seeded")
}
