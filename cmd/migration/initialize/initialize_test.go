package initialize_test

import (
	"testing"

	"petcare/cmd/migration/initialize"
	"petcare/internal/logger"
	"petcare/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestEnsureTables_CreatesSchema(t *testing.T) {
	db := openTestDB(t)
	log := logger.New("initialize-test")

	require.NoError(t, initialize.EnsureTables(db, log))

	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Pet{}))
	assert.True(t, db.Migrator().HasTable(&models.ServiceRequest{}))
}

func TestEnsureTables_RerunIsNoOp(t *testing.T) {
	db := openTestDB(t)
	log := logger.New("initialize-test")

	require.NoError(t, initialize.EnsureTables(db, log))

	// Existing data must survive a rerun of the bootstrap.
	user := models.User{Email: "khach@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	require.NoError(t, initialize.EnsureTables(db, log))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.NotEqual(t, uuid.Nil, stored.ID)
}
