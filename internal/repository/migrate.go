package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table the
// repositories read and write.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&leadModel{},
		&activityModel{},
		&taskModel{},
		&contractModel{},
		&templateModel{},
	)
}
