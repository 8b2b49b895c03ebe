package models

import (
	"time"
)

// BaseModel 通用主键与时间戳
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User 用户账号表
type User struct {
	BaseModel
	Username     string     `gorm:"uniqueIndex;size:30;not null" json:"username"`
	Email        string     `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	DisplayName  string     `gorm:"size:100" json:"display_name"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`

	Profiles []Profile `gorm:"foreignKey:UserID" json:"-"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// Profile 角色档案（一个用户至少拥有一个）
type Profile struct {
	BaseModel
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Name   string `gorm:"size:100;not null" json:"name"`
}

// TableName 指定表名
func (Profile) TableName() string {
	return "user_profiles"
}
