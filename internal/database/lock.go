package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wfunc/anima-counter/internal/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	lockRetries  = 30
	lockStaleAge = 5 * time.Minute
)

// acquireMigrationLock 获取迁移锁
func acquireMigrationLock(dbPath string) (*os.File, error) {
	lockPath := dbPath + ".migration.lock"

	for i := 0; i < lockRetries; i++ {
		lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0644)
		if err == nil {
			logger.Debug("获取迁移锁成功", zap.String("lock", lockPath))
			return lockFile, nil
		}

		if info, statErr := os.Stat(lockPath); statErr == nil && time.Since(info.ModTime()) > lockStaleAge {
			logger.Warn("迁移锁文件过期，尝试删除", zap.String("lock", lockPath))
			_ = os.Remove(lockPath)
			continue
		}

		time.Sleep(time.Second)
	}

	return nil, fmt.Errorf("无法获取迁移锁，可能有其他进程正在执行迁移")
}

// releaseMigrationLock 释放迁移锁
func releaseMigrationLock(lockFile *os.File) {
	if lockFile == nil {
		return
	}
	lockPath := lockFile.Name()
	_ = lockFile.Close()
	_ = os.Remove(lockPath)
	logger.Debug("释放迁移锁", zap.String("lock", lockPath))
}

// dbFilePath 返回sqlite数据库文件路径，内存库或其他驱动返回空
func dbFilePath(db *gorm.DB) string {
	if db.Dialector.Name() != "sqlite" {
		return ""
	}
	sqlDB, err := db.DB()
	if err != nil {
		return ""
	}
	var (
		seq        int
		name, file string
	)
	if err := sqlDB.QueryRow("PRAGMA database_list").Scan(&seq, &name, &file); err != nil {
		return ""
	}
	return file
}

// cleanupStaleLocks 清理同目录下过期的锁文件
func cleanupStaleLocks(dbPath string) {
	matches, _ := filepath.Glob(filepath.Join(filepath.Dir(dbPath), "*.migration.lock"))
	for _, lockFile := range matches {
		if info, err := os.Stat(lockFile); err == nil && time.Since(info.ModTime()) > 2*lockStaleAge {
			logger.Info("清理过期锁文件", zap.String("file", lockFile))
			_ = os.Remove(lockFile)
		}
	}
}
