package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tarekelbanna92/rental-egypt/config"
	"github.com/tarekelbanna92/rental-egypt/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// one connection: :memory: databases are per-connection
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Listing{},
		&models.ListingImage{},
		&models.Booking{},
	))
	return db
}

func testAppConfig(t *testing.T) *config.AppConfig {
	t.Helper()
	return &config.AppConfig{
		DateFormat:     "2006-01-02",
		MaxUploadCount: 10,
		MaxUploadBytes: 5 << 20,
		UploadDir:      t.TempDir(),
		PageSize:       9,
	}
}

func createUser(t *testing.T, db *gorm.DB, username, role string) models.User {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)
	profile := models.Profile{UserID: user.ID, Role: role}
	require.NoError(t, db.Create(&profile).Error)
	user.Profile = profile
	return user
}

func createListing(t *testing.T, db *gorm.DB, hostID uint) models.Listing {
	t.Helper()
	listing := models.Listing{
		HostID:        hostID,
		Title:         "Nile view apartment",
		City:          "Cairo",
		PricePerNight: 75,
		MaxGuests:     4,
	}
	require.NoError(t, db.Create(&listing).Error)
	return listing
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}
