package dbhelper

import (
	"log"

	"outfitapi/models"

	"gorm.io/gorm"
)

// closetModels is in dependency order: owners before the rows referencing them.
var closetModels = []interface{}{
	&models.UserAccount{},
	&models.UserPushToken{},
	&models.ClothingItem{},
	&models.OutfitLook{},
}

// SetupCleaner returns a func wiping every closet table, dependents first.
func SetupCleaner(db *gorm.DB) func() {
	return func() {
		session := db.Session(&gorm.Session{AllowGlobalUpdate: true})
		for i := len(closetModels) - 1; i >= 0; i-- {
			if err := session.Unscoped().Delete(closetModels[i]).Error; err != nil {
				log.Printf("Error while cleaning %T: %s", closetModels[i], err)
			}
		}
	}
}

func Migrate(db *gorm.DB, tables ...interface{}) {
	for _, model := range tables {
		if err := db.AutoMigrate(model); err != nil {
			log.Printf("Error while migrating %T", model)
			log.Fatal(err)
		}
	}
}
