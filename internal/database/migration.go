package database

import (
	"fmt"
	"time"

	"github.com/wfunc/anima-counter/internal/logger"
	"github.com/wfunc/anima-counter/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AutoMigrate 自动迁移数据库表结构
func AutoMigrate(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("数据库未初始化")
	}

	// 文件型sqlite需要迁移锁，避免多个进程同时迁移
	if path := dbFilePath(db); path != "" {
		cleanupStaleLocks(path)
		lockFile, err := acquireMigrationLock(path)
		if err != nil {
			logger.Error("无法获取迁移锁", zap.Error(err))
			return fmt.Errorf("获取迁移锁失败: %w", err)
		}
		defer releaseMigrationLock(lockFile)
	}

	logger.Info("开始数据库迁移...")
	start := time.Now()

	for _, model := range models.All() {
		if err := db.AutoMigrate(model); err != nil {
			logger.Error("迁移失败",
				zap.String("model", fmt.Sprintf("%T", model)),
				zap.Error(err),
			)
			return err
		}
		logger.WithModule("database").Debug("迁移成功", zap.String("model", fmt.Sprintf("%T", model)))
	}

	createIndexes(db)

	logger.LogDatabaseOperation("migrate", "*", time.Since(start), nil)
	logger.Info("数据库迁移完成")
	return nil
}

// createIndexes 创建模型标签之外的索引
func createIndexes(db *gorm.DB) {
	indexes := []struct {
		name string
		stmt string
	}{
		{"idx_users_email", "CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)"},
		{"idx_user_profiles_user_created", "CREATE INDEX IF NOT EXISTS idx_user_profiles_user_created ON user_profiles(user_id, created_at)"},
	}
	for _, idx := range indexes {
		if err := db.Exec(idx.stmt).Error; err != nil {
			logger.Warn("创建索引失败", zap.String("index", idx.name), zap.Error(err))
		}
	}
}

// DropAllTables 删除全部业务表（仅用于测试与重置）
func DropAllTables(db *gorm.DB) error {
	all := models.All()
	// 反向删除，先子表后父表
	for i := len(all) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(all[i]); err != nil {
			return err
		}
	}
	return nil
}
