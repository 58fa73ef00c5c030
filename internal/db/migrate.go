package db

import (
	"addressbook/internal/domain"

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema: app_user, address and address_tags
// tables plus the cascade foreign keys between them
func Migrate(dsn string) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(&domain.User{}, &domain.Address{}, &domain.AddressTag{})
	if err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}
