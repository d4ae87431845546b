// Package mock provides shared test doubles for the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection used by every scenario.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the shared in-memory database and migrates the given models.
// The connection is a process-wide singleton so the API server under test
// and the step definitions see the same data.
func NewDb(models []any) *Db {
	if db == nil {
		dbOnce.Do(func() {
			db = open(models)
		})
	}
	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared-cache database alive and
	// serializes writes, which SQLite requires anyway.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	mockDb := &Db{DbConn: dbConn, models: models}

	if err := mockDb.DbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}

	return mockDb
}

// ClearDB deletes every row from every migrated table. Called before each
// scenario so scenarios cannot leak state into each other.
func (d *Db) ClearDB() error {
	session := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range d.models {
		if err := session.Unscoped().Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear table for model %T: %w", model, err)
		}
	}
	return nil
}
