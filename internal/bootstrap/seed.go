package bootstrap

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio-api/internal/model"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.BlogPost{},
		&model.CV{},
		&model.Profile{},
		&model.ContactMessage{},
	)
}

// SeedAdminUser creates a default admin account for development setups so
// the admin panel is usable before the first register call.
func SeedAdminUser(db *gorm.DB, log *zap.Logger) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("username = ?", "admin").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Info("admin user already exists, skipping seed")
		return nil
	}

	password := "admin123"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		Username:     "admin",
		PasswordHash: string(hashed),
		IsAdmin:      true,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Info("admin user seeded",
		zap.String("username", "admin"),
		zap.String("password", password))

	return nil
}
