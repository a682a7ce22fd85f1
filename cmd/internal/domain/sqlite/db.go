package sqlite

import (
	"accountsdesk/cmd/internal/domain/entity"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens the database at path and migrates every table. Use
// InMemoryDSN for a throwaway database.
func Init(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.Account{},
		&entity.Address{},
		&entity.Contact{},
		&entity.Order{},
		&entity.OrderLine{},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

// InMemoryDSN names a private shared-cache in-memory database.
func InMemoryDSN(name string) string {
	return "file:" + name + "?mode=memory&cache=shared"
}
