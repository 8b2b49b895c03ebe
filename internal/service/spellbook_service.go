package service

import (
	"context"
	stderrors "errors"
	"strings"

	apperrors "github.com/wfunc/anima-counter/internal/errors"
	"github.com/wfunc/anima-counter/internal/models"
	"github.com/wfunc/anima-counter/internal/repository"
	"go.uber.org/zap"
)

type spellbookService struct {
	repos *repository.Manager
	log   *zap.Logger
}

// NewSpellbookService 创建法术书服务
func NewSpellbookService(repos *repository.Manager, log *zap.Logger) SpellbookService {
	return &spellbookService{repos: repos, log: log}
}

func (s *spellbookService) ListSpells(ctx context.Context, profileID uint) ([]*models.Spell, error) {
	spells, err := s.repos.Spell().ListByProfile(ctx, profileID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	return spells, nil
}

func (s *spellbookService) CreateSpell(ctx context.Context, profileID uint, req *SpellRequest) (*models.Spell, error) {
	req.SpellName = strings.TrimSpace(req.SpellName)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	spell := &models.Spell{
		UserProfileID:        profileID,
		SpellName:            req.SpellName,
		SpellBase:            valueOr(req.SpellBase),
		SpellInter:           valueOr(req.SpellInter),
		SpellAdvanced:        valueOr(req.SpellAdvanced),
		SpellArcane:          valueOr(req.SpellArcane),
		SpellBaseMantain:     valueOr(req.SpellBaseMantain),
		SpellInterMantain:    valueOr(req.SpellInterMantain),
		SpellAdvancedMantain: valueOr(req.SpellAdvancedMantain),
		SpellArcaneMantain:   valueOr(req.SpellArcaneMantain),
	}
	if req.SpellVia != nil && *req.SpellVia != "" {
		via := *req.SpellVia
		spell.SpellVia = &via
	}
	if err := s.repos.Spell().Create(ctx, spell); err != nil {
		return nil, storageError(err, apperrors.ErrDatabaseInsert)
	}
	return spell, nil
}

func (s *spellbookService) DeleteSpell(ctx context.Context, profileID, spellID uint) error {
	return storageError(s.repos.Spell().Delete(ctx, profileID, spellID), apperrors.ErrDatabaseDelete)
}

func (s *spellbookService) ListReadyToCast(ctx context.Context, profileID uint) ([]*models.ReadyToCast, error) {
	entries, err := s.repos.ReadyToCast().ListByProfile(ctx, profileID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	return entries, nil
}

func (s *spellbookService) CreateReadyToCast(ctx context.Context, profileID uint, req *ReadyToCastRequest) (*models.ReadyToCast, error) {
	req.SpellName = strings.TrimSpace(req.SpellName)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	entry := &models.ReadyToCast{
		UserProfileID:    profileID,
		SpellID:          req.SpellID,
		SpellName:        req.SpellName,
		SpellZeon:        valueOr(req.SpellZeon),
		SpellMantain:     valueOr(req.SpellMantain),
		SpellMantainTurn: req.SpellMantainTurn,
		SpellIndex:       req.SpellIndex,
	}
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		if err := checkSpellRef(ctx, tx, profileID, req.SpellID); err != nil {
			return err
		}
		if err := tx.ReadyToCast().Create(ctx, entry); err != nil {
			return err
		}
		return refreshCaches(ctx, tx, profileID)
	})
	if err != nil {
		return nil, storageError(err, apperrors.ErrDatabaseInsert)
	}
	return entry, nil
}

func (s *spellbookService) DeleteReadyToCast(ctx context.Context, profileID, id uint) error {
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		if err := tx.ReadyToCast().Delete(ctx, profileID, id); err != nil {
			return err
		}
		return refreshCaches(ctx, tx, profileID)
	})
	return storageError(err, apperrors.ErrDatabaseDelete)
}

func (s *spellbookService) ClearReadyToCast(ctx context.Context, profileID uint) (int64, error) {
	var n int64
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		var err error
		if n, err = tx.ReadyToCast().DeleteByProfile(ctx, profileID); err != nil {
			return err
		}
		return refreshCaches(ctx, tx, profileID)
	})
	if err != nil {
		return 0, storageError(err, apperrors.ErrDatabaseDelete)
	}
	return n, nil
}

func (s *spellbookService) ListMaintained(ctx context.Context, profileID uint) ([]*models.SpellMaintain, error) {
	entries, err := s.repos.SpellMaintain().ListByProfile(ctx, profileID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	return entries, nil
}

func (s *spellbookService) CreateMaintained(ctx context.Context, profileID uint, req *MaintainRequest) (*models.SpellMaintain, error) {
	req.SpellName = strings.TrimSpace(req.SpellName)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	entry := &models.SpellMaintain{
		UserProfileID: profileID,
		SpellID:       req.SpellID,
		SpellName:     req.SpellName,
		SpellMantain:  valueOr(req.SpellMantain),
		SpellIndex:    req.SpellIndex,
	}
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		if err := checkSpellRef(ctx, tx, profileID, req.SpellID); err != nil {
			return err
		}
		if err := tx.SpellMaintain().Create(ctx, entry); err != nil {
			return err
		}
		return refreshCaches(ctx, tx, profileID)
	})
	if err != nil {
		return nil, storageError(err, apperrors.ErrDatabaseInsert)
	}
	return entry, nil
}

func (s *spellbookService) DeleteMaintained(ctx context.Context, profileID, id uint) error {
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		if err := tx.SpellMaintain().Delete(ctx, profileID, id); err != nil {
			return err
		}
		return refreshCaches(ctx, tx, profileID)
	})
	return storageError(err, apperrors.ErrDatabaseDelete)
}

func (s *spellbookService) ClearMaintained(ctx context.Context, profileID uint) (int64, error) {
	var n int64
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		var err error
		if n, err = tx.SpellMaintain().DeleteByProfile(ctx, profileID); err != nil {
			return err
		}
		return refreshCaches(ctx, tx, profileID)
	})
	if err != nil {
		return 0, storageError(err, apperrors.ErrDatabaseDelete)
	}
	return n, nil
}

// refreshCaches 队列变化后重新计算并写回两个缓存字段
// checkSpellRef spell_id 只能指向同一档案的法术书
func checkSpellRef(ctx context.Context, tx *repository.Transaction, profileID uint, spellID *uint) error {
	if spellID == nil {
		return nil
	}
	_, err := tx.Spell().FindOwned(ctx, profileID, *spellID)
	if stderrors.Is(err, repository.ErrNotFound) {
		return apperrors.Validation(apperrors.FieldError{Field: "spell_id", Message: "法术不存在"})
	}
	return err
}

func refreshCaches(ctx context.Context, tx *repository.Transaction, profileID uint) error {
	toSpend, err := tx.ReadyToCast().SumZeon(ctx, profileID)
	if err != nil {
		return err
	}
	upkeep, err := tx.SpellMaintain().SumMantain(ctx, profileID)
	if err != nil {
		return err
	}
	_, err = tx.GameState().Merge(ctx, profileID, models.GameStatePatch{
		ZeonToSpend:        &toSpend,
		MantainZeonToSpend: &upkeep,
	})
	return err
}
