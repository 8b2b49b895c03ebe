package repository

import (
	"context"

	"github.com/wfunc/anima-counter/internal/models"
	"gorm.io/gorm"
)

// SpellRepository 法术书仓储接口
type SpellRepository interface {
	BaseRepository
	ListByProfile(ctx context.Context, profileID uint) ([]*models.Spell, error)
	FindOwned(ctx context.Context, profileID, id uint) (*models.Spell, error)
	Create(ctx context.Context, spell *models.Spell) error
	Delete(ctx context.Context, profileID, id uint) error
	DeleteByProfile(ctx context.Context, profileIDs ...uint) (int64, error)
}

type spellRepo struct {
	*BaseRepo
}

// NewSpellRepository 创建法术书仓储
func NewSpellRepository(db *gorm.DB) SpellRepository {
	return &spellRepo{BaseRepo: &BaseRepo{db: db}}
}

func (r *spellRepo) ListByProfile(ctx context.Context, profileID uint) ([]*models.Spell, error) {
	spells := make([]*models.Spell, 0)
	err := r.db.WithContext(ctx).
		Where("user_profile_id = ?", profileID).
		Scopes(byCreation).
		Find(&spells).Error
	return spells, err
}

// FindOwned 只在法术属于该档案时返回
func (r *spellRepo) FindOwned(ctx context.Context, profileID, id uint) (*models.Spell, error) {
	var spell models.Spell
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_profile_id = ?", id, profileID).
		First(&spell).Error
	if err != nil {
		return nil, translate(err)
	}
	return &spell, nil
}

func (r *spellRepo) Create(ctx context.Context, spell *models.Spell) error {
	return translate(r.db.WithContext(ctx).Create(spell).Error)
}

// Delete 按档案删除单条，条件不匹配时返回 ErrNotFound
func (r *spellRepo) Delete(ctx context.Context, profileID, id uint) error {
	return deleteOwned(ctx, r.db, &models.Spell{}, profileID, id)
}

func (r *spellRepo) DeleteByProfile(ctx context.Context, profileIDs ...uint) (int64, error) {
	return deleteAllOwned(ctx, r.db, &models.Spell{}, profileIDs...)
}

func deleteOwned(ctx context.Context, db *gorm.DB, model interface{}, profileID, id uint) error {
	res := db.WithContext(ctx).
		Where("id = ? AND user_profile_id = ?", id, profileID).
		Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteAllOwned(ctx context.Context, db *gorm.DB, model interface{}, profileIDs ...uint) (int64, error) {
	if len(profileIDs) == 0 {
		return 0, nil
	}
	res := db.WithContext(ctx).
		Where("user_profile_id IN ?", profileIDs).
		Delete(model)
	return res.RowsAffected, res.Error
}
