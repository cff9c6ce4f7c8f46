package storage

import (
	"meetplan/internal/config"
	env_utils "meetplan/internal/util/env"
	"meetplan/internal/util/logger"
	"os"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

var (
	db   *gorm.DB
	once sync.Once
)

// GetDb returns the shared gorm connection pool. The process exits if
// the database is unreachable on first use.
func GetDb() *gorm.DB {
	once.Do(func() {
		log := logger.GetLogger()
		env := config.GetEnv()

		logLevel := gorm_logger.Warn
		if env.EnvMode == env_utils.EnvModeProduction {
			logLevel = gorm_logger.Error
		}

		conn, err := gorm.Open(postgres.Open(env.DatabaseDsn), &gorm.Config{
			Logger: gorm_logger.Default.LogMode(logLevel),
			NowFunc: func() time.Time {
				return time.Now().UTC()
			},
		})
		if err != nil {
			log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			log.Error("Failed to get database pool", "error", err)
			os.Exit(1)
		}

		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)

		db = conn
	})

	return db
}
