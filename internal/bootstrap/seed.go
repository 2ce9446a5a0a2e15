package bootstrap

import (
	"log"

	"anoa.com/bskmtclub/internal/membership"
	"anoa.com/bskmtclub/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.DisciplinaryRecord{},
		&model.PointLog{},
		&model.UserStats{},
		&model.Event{},
		&model.EventAttendance{},
		&model.TierTransition{},
		&model.LeaderApplication{},
		&model.VolunteeringRecord{},
		&model.DigitalActivity{},
		&model.FeedbackRecord{},
		&model.ContributionRecord{},
	)
}

func SeedRoles(db *gorm.DB) error {
	defaultRoles := []model.Role{
		{Name: "admin", Description: "Club administrator"},
		{Name: "member", Description: "Club member"},
	}

	for _, role := range defaultRoles {
		var count int64
		if err := db.Model(&model.Role{}).
			Where("name = ?", role.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&role).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func SeedAdminUser(db *gorm.DB) error {
	var adminRole model.Role
	if err := db.Where("name = ?", "admin").First(&adminRole).Error; err != nil {
		return err
	}

	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", "admin@bskmt.club").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	password := "admin123"
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := model.User{
		Username:     "admin",
		Email:        "admin@bskmt.club",
		PasswordHash: string(hashedPasswordBytes),
		RoleID:       &adminRole.ID,
		Tier:         string(membership.TierFriend),
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	log.Println("✅ Admin user seeded successfully")
	log.Println("   Email: admin@bskmt.club")
	log.Println("   Password: admin123")

	return nil
}
