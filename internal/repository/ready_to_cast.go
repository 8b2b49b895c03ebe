package repository

import (
	"context"

	"github.com/wfunc/anima-counter/internal/models"
	"gorm.io/gorm"
)

// ReadyToCastRepository 待施放队列仓储接口
type ReadyToCastRepository interface {
	BaseRepository
	ListByProfile(ctx context.Context, profileID uint) ([]*models.ReadyToCast, error)
	Create(ctx context.Context, entry *models.ReadyToCast) error
	Delete(ctx context.Context, profileID, id uint) error
	DeleteByProfile(ctx context.Context, profileIDs ...uint) (int64, error)
	SumZeon(ctx context.Context, profileID uint) (int64, error)
}

type readyToCastRepo struct {
	*BaseRepo
}

// NewReadyToCastRepository 创建待施放队列仓储
func NewReadyToCastRepository(db *gorm.DB) ReadyToCastRepository {
	return &readyToCastRepo{BaseRepo: &BaseRepo{db: db}}
}

func (r *readyToCastRepo) ListByProfile(ctx context.Context, profileID uint) ([]*models.ReadyToCast, error) {
	entries := make([]*models.ReadyToCast, 0)
	err := r.db.WithContext(ctx).
		Where("user_profile_id = ?", profileID).
		Scopes(byCreation).
		Find(&entries).Error
	return entries, err
}

func (r *readyToCastRepo) Create(ctx context.Context, entry *models.ReadyToCast) error {
	return translate(r.db.WithContext(ctx).Create(entry).Error)
}

func (r *readyToCastRepo) Delete(ctx context.Context, profileID, id uint) error {
	return deleteOwned(ctx, r.db, &models.ReadyToCast{}, profileID, id)
}

func (r *readyToCastRepo) DeleteByProfile(ctx context.Context, profileIDs ...uint) (int64, error) {
	return deleteAllOwned(ctx, r.db, &models.ReadyToCast{}, profileIDs...)
}

// SumZeon 队列总消耗
func (r *readyToCastRepo) SumZeon(ctx context.Context, profileID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.ReadyToCast{}).
		Where("user_profile_id = ?", profileID).
		Select("COALESCE(SUM(spell_zeon), 0)").
		Scan(&total).Error
	return total, err
}
