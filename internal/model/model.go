package model

import (
	"gorm.io/gorm"
)

// AutoMigrate migrates the table for the named model
// AutoMigrate 迁移指定模型对应的表
func AutoMigrate(db *gorm.DB, key string) error {
	switch key {

	case "File":
		return db.AutoMigrate(File{})

	case "Share":
		return db.AutoMigrate(Share{})
	}
	return nil
}
