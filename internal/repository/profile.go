package repository

import (
	"context"

	"github.com/wfunc/anima-counter/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository 角色档案仓储接口
type ProfileRepository interface {
	BaseRepository
	Create(ctx context.Context, profile *models.Profile) error
	FindByID(ctx context.Context, id uint) (*models.Profile, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Profile, error)
	ListIDsByUser(ctx context.Context, userID uint) ([]uint, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	Rename(ctx context.Context, id uint, name string) error
	Delete(ctx context.Context, id uint) error
}

type profileRepo struct {
	*BaseRepo
}

// NewProfileRepository 创建角色档案仓储
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepo{BaseRepo: &BaseRepo{db: db}}
}

func (r *profileRepo) Create(ctx context.Context, profile *models.Profile) error {
	return translate(r.db.WithContext(ctx).Create(profile).Error)
}

func (r *profileRepo) FindByID(ctx context.Context, id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, id).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (r *profileRepo) ListByUser(ctx context.Context, userID uint) ([]*models.Profile, error) {
	profiles := make([]*models.Profile, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Scopes(byCreation).
		Find(&profiles).Error
	return profiles, err
}

func (r *profileRepo) ListIDsByUser(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *profileRepo) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// Rename 修改角色名称
func (r *profileRepo) Rename(ctx context.Context, id uint, name string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete 只删除档案本身，子表由调用方在同一事务中清理
func (r *profileRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Profile{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
