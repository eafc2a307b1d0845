package database

import (
	"database/sql"
	"fmt"
	"time"

	"flightly/utils"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const sqlConnectAttempts = 10

// OpenSQL connects to a relational booking store. driver is "postgres" or "mysql".
// The database is retried while it comes up, which is common under docker-compose.
func OpenSQL(driver, dsn string) (*sql.DB, error) {
	logger := utils.GetLogger()

	var db *sql.DB
	var err error
	for i := 1; i <= sqlConnectAttempts; i++ {
		db, err = sql.Open(driver, dsn)
		if err == nil {
			err = db.Ping()
		}
		if err == nil {
			db.SetMaxOpenConns(25)
			db.SetMaxIdleConns(25)
			db.SetConnMaxLifetime(10 * time.Minute)
			logger.Info("Connected to SQL database", zap.String("driver", driver))
			return db, nil
		}
		if db != nil {
			db.Close()
		}
		logger.Warn("SQL database not ready, retrying",
			zap.String("driver", driver), zap.Int("attempt", i), zap.Error(err))
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
}
