package repository

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/anima-counter/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB 创建独立的内存数据库并完成迁移，测试结束时自动关闭
func SetupTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	// 每个测试一个命名内存库，连接池只保留一个连接
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		CleanupTestDB(db)
	})
	return db
}

// CleanupTestDB 清理测试数据库
func CleanupTestDB(db *gorm.DB) {
	sqlDB, _ := db.DB()
	if sqlDB != nil {
		sqlDB.Close()
	}
}

// SeedUserWithProfile 创建一个用户及其档案和空状态
func SeedUserWithProfile(t testing.TB, db *gorm.DB, username string) (*models.User, *models.Profile) {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@anima-counter.local",
		PasswordHash: "x",
		DisplayName:  username,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)

	profile := &models.Profile{UserID: user.ID, Name: username + "'s profile"}
	require.NoError(t, db.Create(profile).Error)
	require.NoError(t, db.Create(&models.GameState{UserProfileID: profile.ID}).Error)
	return user, profile
}
