package persistence

import (
	"database/sql"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/profitpulse/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory sqlite database and migrates all models.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	// A single connection keeps every query on the same in-memory database.
	dbSQL.SetMaxOpenConns(1)

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.StoreModel{},
		&model.OrderModel{},
		&model.SpendModel{},
		&model.IntegrationModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate models: %v", err)
	}

	t.Cleanup(func() {
		_ = dbSQL.Close()
	})
	return db
}
