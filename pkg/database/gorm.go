package database

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)
}

func configureConnectionPool(db *gorm.DB, memory bool) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if memory {
		// A shared-cache in-memory database lives as long as one connection
		// holds it open; keep exactly one.
		sqlDB.SetMaxOpenConns(1)
		return nil
	}

	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return nil
}

// NewGormDB opens (creating if needed) the sqlite database at path.
// Foreign keys are enabled per connection so note_tags cascades fire, and a
// busy timeout covers writer contention between concurrent requests.
func NewGormDB(path string) (*gorm.DB, error) {
	memory := path == ":memory:" || strings.Contains(path, "mode=memory")

	var dsn string
	if memory {
		dsn = "file::memory:?cache=shared&_foreign_keys=on"
	} else {
		dsn = fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: getLogger(),
	})
	if err != nil {
		return nil, err
	}

	if err := configureConnectionPool(db, memory); err != nil {
		return nil, err
	}

	return db, nil
}
