package repository

import (
	"context"
	"sync"

	"gorm.io/gorm"
)

// Manager 仓储管理器，提供所有仓储的统一访问接口
type Manager struct {
	db *gorm.DB

	txManager TransactionManager

	// 仓储实例（懒加载）
	userOnce sync.Once
	user     UserRepository

	profileOnce sync.Once
	profile     ProfileRepository

	gameStateOnce sync.Once
	gameState     GameStateRepository

	spellOnce sync.Once
	spell     SpellRepository

	readyToCastOnce sync.Once
	readyToCast     ReadyToCastRepository

	spellMaintainOnce sync.Once
	spellMaintain     SpellMaintainRepository
}

// NewManager 创建仓储管理器
func NewManager(db *gorm.DB) *Manager {
	return &Manager{
		db:        db,
		txManager: NewTransactionManager(db),
	}
}

// GetDB 获取数据库实例
func (m *Manager) GetDB() *gorm.DB {
	return m.db
}

// Transaction 获取事务管理器
func (m *Manager) Transaction() TransactionManager {
	return m.txManager
}

// User 获取用户仓储
func (m *Manager) User() UserRepository {
	m.userOnce.Do(func() {
		m.user = NewUserRepository(m.db)
	})
	return m.user
}

// Profile 获取角色档案仓储
func (m *Manager) Profile() ProfileRepository {
	m.profileOnce.Do(func() {
		m.profile = NewProfileRepository(m.db)
	})
	return m.profile
}

// GameState 获取战斗状态仓储
func (m *Manager) GameState() GameStateRepository {
	m.gameStateOnce.Do(func() {
		m.gameState = NewGameStateRepository(m.db)
	})
	return m.gameState
}

// Spell 获取法术书仓储
func (m *Manager) Spell() SpellRepository {
	m.spellOnce.Do(func() {
		m.spell = NewSpellRepository(m.db)
	})
	return m.spell
}

// ReadyToCast 获取待施放队列仓储
func (m *Manager) ReadyToCast() ReadyToCastRepository {
	m.readyToCastOnce.Do(func() {
		m.readyToCast = NewReadyToCastRepository(m.db)
	})
	return m.readyToCast
}

// SpellMaintain 获取维持法术仓储
func (m *Manager) SpellMaintain() SpellMaintainRepository {
	m.spellMaintainOnce.Do(func() {
		m.spellMaintain = NewSpellMaintainRepository(m.db)
	})
	return m.spellMaintain
}

// WithTransaction 在事务中执行操作
func (m *Manager) WithTransaction(ctx context.Context, fn func(tx *Transaction) error) error {
	return m.txManager.WithTransaction(ctx, fn)
}
