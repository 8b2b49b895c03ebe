package repository

import (
	"context"
	"errors"

	"github.com/wfunc/anima-counter/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// combatColumns 重置战斗时清零的列
func combatColumns() map[string]interface{} {
	return map[string]interface{}{
		"turn_number":           0,
		"zeona":                 0,
		"zeonp":                 0,
		"zeon_to_spend":         0,
		"mantain_zeon_to_spend": 0,
	}
}

// GameStateRepository 战斗状态仓储接口
type GameStateRepository interface {
	BaseRepository
	FindByProfile(ctx context.Context, profileID uint) (*models.GameState, error)
	GetOrCreate(ctx context.Context, profileID uint) (*models.GameState, error)
	Create(ctx context.Context, state *models.GameState) error
	Save(ctx context.Context, state *models.GameState) error
	Merge(ctx context.Context, profileID uint, patch models.GameStatePatch) (*models.GameState, error)
	ResetCombat(ctx context.Context, profileIDs ...uint) (int64, error)
	DeleteByProfile(ctx context.Context, profileID uint) error
}

type gameStateRepo struct {
	*BaseRepo
}

// NewGameStateRepository 创建战斗状态仓储
func NewGameStateRepository(db *gorm.DB) GameStateRepository {
	return &gameStateRepo{BaseRepo: &BaseRepo{db: db}}
}

func (r *gameStateRepo) FindByProfile(ctx context.Context, profileID uint) (*models.GameState, error) {
	var state models.GameState
	err := r.db.WithContext(ctx).Where("user_profile_id = ?", profileID).First(&state).Error
	if err != nil {
		return nil, translate(err)
	}
	return &state, nil
}

// GetOrCreate 首次访问时创建全零状态
func (r *gameStateRepo) GetOrCreate(ctx context.Context, profileID uint) (*models.GameState, error) {
	state, err := r.FindByProfile(ctx, profileID)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return r.createIfAbsent(ctx, profileID)
}

// createIfAbsent 冲突时不报错，事务在 postgres 上仍可继续使用
func (r *gameStateRepo) createIfAbsent(ctx context.Context, profileID uint) (*models.GameState, error) {
	state := &models.GameState{UserProfileID: profileID}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_profile_id"}},
			DoNothing: true,
		}).
		Create(state)
	if res.Error != nil {
		return nil, translate(res.Error)
	}
	// 并发请求已经创建
	if res.RowsAffected == 0 {
		return r.FindByProfile(ctx, profileID)
	}
	return state, nil
}

func (r *gameStateRepo) Create(ctx context.Context, state *models.GameState) error {
	return translate(r.db.WithContext(ctx).Create(state).Error)
}

// Save 整行写回
func (r *gameStateRepo) Save(ctx context.Context, state *models.GameState) error {
	return r.db.WithContext(ctx).Save(state).Error
}

// Merge 部分更新，未提供的字段保持原值
func (r *gameStateRepo) Merge(ctx context.Context, profileID uint, patch models.GameStatePatch) (*models.GameState, error) {
	state, err := r.GetOrCreate(ctx, profileID)
	if err != nil {
		return nil, err
	}
	cols := patch.Columns()
	if len(cols) == 0 {
		return state, nil
	}
	err = r.db.WithContext(ctx).
		Model(&models.GameState{}).
		Where("user_profile_id = ?", profileID).
		Updates(cols).Error
	if err != nil {
		return nil, err
	}
	return r.FindByProfile(ctx, profileID)
}

// ResetCombat 清零回合与积累，保留角色属性
func (r *gameStateRepo) ResetCombat(ctx context.Context, profileIDs ...uint) (int64, error) {
	if len(profileIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&models.GameState{}).
		Where("user_profile_id IN ?", profileIDs).
		Updates(combatColumns())
	return res.RowsAffected, res.Error
}

func (r *gameStateRepo) DeleteByProfile(ctx context.Context, profileID uint) error {
	return r.db.WithContext(ctx).
		Where("user_profile_id = ?", profileID).
		Delete(&models.GameState{}).Error
}
