// Package db opens the relational database connection for the service.
package db

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"userhub_backend/internal/feature/users/domain/entity"
)

// OpenDB connects to postgres using the given connection string, retrying
// until a 60 second deadline so the service survives a database that is still
// starting up. TranslateError is enabled so unique-key violations surface as
// gorm.ErrDuplicatedKey regardless of driver.
func OpenDB(dsn string) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
