package store

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/ninokhhh/lunacase/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory database with the full schema. The pool is
// pinned to one connection because every :memory: connection is its own
// database.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.CartItem{},
		&model.WishlistItem{},
		&model.Order{},
		&model.OrderItem{},
	))

	return db
}

// testUser registers an account for tests that need an owner.
func testUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	user, err := CreateUser(db, "Test User", email, "secret123")
	require.NoError(t, err)
	return user
}
