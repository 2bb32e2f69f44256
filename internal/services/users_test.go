package services_test

import (
	"testing"

	"todo-service/backend/internal/models"
	"todo-service/backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Todo{}))
	return db
}

func TestRegister_NewUser(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewUserService()

	user, err := svc.Register(db, "alice")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Len(t, user.APIKey, 32)
	assert.NotZero(t, user.ID)
}

func TestRegister_KeysAreUnique(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewUserService()

	seen := make(map[string]bool)
	for _, name := range []string{"alice", "bob", "carol", "dave"} {
		user, err := svc.Register(db, name)
		require.NoError(t, err)
		assert.False(t, seen[user.APIKey], "API key for %s already issued", name)
		seen[user.APIKey] = true
	}
}

func TestRegister_DuplicateReturnsExisting(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewUserService()

	first, err := svc.Register(db, "alice")
	require.NoError(t, err)

	second, err := svc.Register(db, "alice")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.APIKey, second.APIKey)

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.EqualValues(t, 1, count, "duplicate registration must not create a row")
}

func TestFindByAPIKey(t *testing.T) {
	db := setupTestDB(t)
	svc := services.NewUserService()

	registered, err := svc.Register(db, "alice")
	require.NoError(t, err)

	found, err := svc.FindByAPIKey(db, registered.APIKey)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, found.ID)

	_, err = svc.FindByAPIKey(db, "no-such-key")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGenerateAPIKey_Format(t *testing.T) {
	key, err := services.GenerateAPIKey()
	require.NoError(t, err)

	assert.Len(t, key, 32)
	assert.Regexp(t, "^[0-9a-f]{32}$", key)
}
