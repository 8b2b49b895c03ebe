package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("记录不存在")
	// ErrDuplicate 唯一键冲突
	ErrDuplicate = errors.New("记录已存在")
)

// BaseRepository 基础仓储接口
type BaseRepository interface {
	// GetDB 获取数据库实例
	GetDB() *gorm.DB
}

// BaseRepo 基础仓储实现
type BaseRepo struct {
	db *gorm.DB
}

// GetDB 获取数据库实例
func (r *BaseRepo) GetDB() *gorm.DB {
	return r.db
}

// byCreation 集合统一按插入顺序返回
func byCreation(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}

// translate 将gorm错误转换为仓储错误
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isDuplicate(err) {
		return ErrDuplicate
	}
	return err
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "duplicate entry")
}
