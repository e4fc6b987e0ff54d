package dbhelper

import (
	"os"
	"time"

	"outfitapi/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupDB(cfg config.DBConfig) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		panic(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Minute * 5)

	Migrate(db, closetModels...)
	return db
}

func SetupTestDB() *gorm.DB {
	return SetupDB(config.DBConfig{
		User:     getEnv("TEST_DB_USERNAME", "outfit"),
		Password: getEnv("TEST_DB_PASSWORD", "outfit"),
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     getEnv("TEST_DB_PORT", "5432"),
		Name:     getEnv("TEST_DB_NAME", "outfit_test"),
	})
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
