package repository

import (
	"context"

	"github.com/wfunc/anima-counter/internal/models"
	"gorm.io/gorm"
)

// SpellMaintainRepository 维持法术仓储接口
type SpellMaintainRepository interface {
	BaseRepository
	ListByProfile(ctx context.Context, profileID uint) ([]*models.SpellMaintain, error)
	Create(ctx context.Context, entry *models.SpellMaintain) error
	Delete(ctx context.Context, profileID, id uint) error
	DeleteByProfile(ctx context.Context, profileIDs ...uint) (int64, error)
	SumMantain(ctx context.Context, profileID uint) (int64, error)
}

type spellMaintainRepo struct {
	*BaseRepo
}

// NewSpellMaintainRepository 创建维持法术仓储
func NewSpellMaintainRepository(db *gorm.DB) SpellMaintainRepository {
	return &spellMaintainRepo{BaseRepo: &BaseRepo{db: db}}
}

func (r *spellMaintainRepo) ListByProfile(ctx context.Context, profileID uint) ([]*models.SpellMaintain, error) {
	entries := make([]*models.SpellMaintain, 0)
	err := r.db.WithContext(ctx).
		Where("user_profile_id = ?", profileID).
		Scopes(byCreation).
		Find(&entries).Error
	return entries, err
}

func (r *spellMaintainRepo) Create(ctx context.Context, entry *models.SpellMaintain) error {
	return translate(r.db.WithContext(ctx).Create(entry).Error)
}

func (r *spellMaintainRepo) Delete(ctx context.Context, profileID, id uint) error {
	return deleteOwned(ctx, r.db, &models.SpellMaintain{}, profileID, id)
}

func (r *spellMaintainRepo) DeleteByProfile(ctx context.Context, profileIDs ...uint) (int64, error) {
	return deleteAllOwned(ctx, r.db, &models.SpellMaintain{}, profileIDs...)
}

// SumMantain 每回合维持总消耗
func (r *spellMaintainRepo) SumMantain(ctx context.Context, profileID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.SpellMaintain{}).
		Where("user_profile_id = ?", profileID).
		Select("COALESCE(SUM(spell_mantain), 0)").
		Scan(&total).Error
	return total, err
}
