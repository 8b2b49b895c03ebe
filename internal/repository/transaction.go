package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// TransactionManager 事务管理器接口
type TransactionManager interface {
	// Begin 开始事务
	Begin(ctx context.Context) (*Transaction, error)
	// WithTransaction 在事务中执行函数，返回错误时回滚
	WithTransaction(ctx context.Context, fn func(tx *Transaction) error) error
}

// Transaction 事务包装器，提供绑定到同一事务的仓储
type Transaction struct {
	tx         *gorm.DB
	ctx        context.Context
	committed  bool
	rolledback bool

	user          UserRepository
	profile       ProfileRepository
	gameState     GameStateRepository
	spell         SpellRepository
	readyToCast   ReadyToCastRepository
	spellMaintain SpellMaintainRepository
}

// txManager 事务管理器实现
type txManager struct {
	db *gorm.DB
}

// NewTransactionManager 创建事务管理器
func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &txManager{db: db}
}

// Begin 开始事务
func (m *txManager) Begin(ctx context.Context) (*Transaction, error) {
	tx := m.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &Transaction{tx: tx, ctx: ctx}, nil
}

// WithTransaction 在事务中执行函数
func (m *txManager) WithTransaction(ctx context.Context, fn func(tx *Transaction) error) (err error) {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
		if !tx.committed && !tx.rolledback {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Commit 提交事务
func (t *Transaction) Commit() error {
	if t.committed {
		return fmt.Errorf("事务已提交")
	}
	if t.rolledback {
		return fmt.Errorf("事务已回滚")
	}
	if err := t.tx.Commit().Error; err != nil {
		return err
	}
	t.committed = true
	return nil
}

// Rollback 回滚事务
func (t *Transaction) Rollback() error {
	if t.committed {
		return fmt.Errorf("事务已提交，无法回滚")
	}
	if t.rolledback {
		return fmt.Errorf("事务已回滚")
	}
	if err := t.tx.Rollback().Error; err != nil {
		return err
	}
	t.rolledback = true
	return nil
}

// GetDB 获取事务中的数据库实例
func (t *Transaction) GetDB() *gorm.DB {
	return t.tx
}

// User 获取事务中的用户仓储
func (t *Transaction) User() UserRepository {
	if t.user == nil {
		t.user = NewUserRepository(t.tx)
	}
	return t.user
}

// Profile 获取事务中的角色档案仓储
func (t *Transaction) Profile() ProfileRepository {
	if t.profile == nil {
		t.profile = NewProfileRepository(t.tx)
	}
	return t.profile
}

// GameState 获取事务中的战斗状态仓储
func (t *Transaction) GameState() GameStateRepository {
	if t.gameState == nil {
		t.gameState = NewGameStateRepository(t.tx)
	}
	return t.gameState
}

// Spell 获取事务中的法术书仓储
func (t *Transaction) Spell() SpellRepository {
	if t.spell == nil {
		t.spell = NewSpellRepository(t.tx)
	}
	return t.spell
}

// ReadyToCast 获取事务中的待施放队列仓储
func (t *Transaction) ReadyToCast() ReadyToCastRepository {
	if t.readyToCast == nil {
		t.readyToCast = NewReadyToCastRepository(t.tx)
	}
	return t.readyToCast
}

// SpellMaintain 获取事务中的维持法术仓储
func (t *Transaction) SpellMaintain() SpellMaintainRepository {
	if t.spellMaintain == nil {
		t.spellMaintain = NewSpellMaintainRepository(t.tx)
	}
	return t.spellMaintain
}

// SavePoint 创建保存点
func (t *Transaction) SavePoint(name string) error {
	return t.tx.SavePoint(name).Error
}

// RollbackToSavePoint 回滚到保存点
func (t *Transaction) RollbackToSavePoint(name string) error {
	return t.tx.RollbackTo(name).Error
}
