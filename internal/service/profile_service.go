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

type profileService struct {
	repos *repository.Manager
	log   *zap.Logger
}

// NewProfileService 创建角色档案服务
func NewProfileService(repos *repository.Manager, log *zap.Logger) ProfileService {
	return &profileService{repos: repos, log: log}
}

func (s *profileService) Authorize(ctx context.Context, userID, profileID uint) (*models.Profile, error) {
	profile, err := s.repos.Profile().FindByID(ctx, profileID)
	if err != nil {
		if stderrors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.New(apperrors.ErrPermissionDenied)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	if profile.UserID != userID {
		s.log.Warn("拒绝访问他人档案", zap.Uint("user_id", userID), zap.Uint("profile_id", profileID))
		return nil, apperrors.New(apperrors.ErrPermissionDenied)
	}
	return profile, nil
}

func (s *profileService) List(ctx context.Context, userID uint) ([]*models.Profile, error) {
	profiles, err := s.repos.Profile().ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	return profiles, nil
}

func (s *profileService) Get(ctx context.Context, userID, profileID uint) (*models.Profile, error) {
	return s.Authorize(ctx, userID, profileID)
}

// Create 新建档案并初始化全零状态
func (s *profileService) Create(ctx context.Context, userID uint, req *ProfileRequest) (*models.Profile, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	profile := &models.Profile{UserID: userID, Name: req.Name}
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		if err := tx.Profile().Create(ctx, profile); err != nil {
			return err
		}
		return tx.GameState().Create(ctx, &models.GameState{UserProfileID: profile.ID})
	})
	if err != nil {
		return nil, storageError(err, apperrors.ErrDatabaseInsert)
	}
	s.log.Info("创建档案", zap.Uint("user_id", userID), zap.Uint("profile_id", profile.ID))
	return profile, nil
}

func (s *profileService) Rename(ctx context.Context, userID, profileID uint, req *ProfileRequest) (*models.Profile, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if _, err := s.Authorize(ctx, userID, profileID); err != nil {
		return nil, err
	}
	if err := s.repos.Profile().Rename(ctx, profileID, req.Name); err != nil {
		return nil, storageError(err, apperrors.ErrDatabaseUpdate)
	}
	profile, err := s.repos.Profile().FindByID(ctx, profileID)
	if err != nil {
		return nil, storageError(err, apperrors.ErrDatabaseQuery)
	}
	return profile, nil
}

// Delete 删除档案及其全部子记录，不允许删除最后一个档案
func (s *profileService) Delete(ctx context.Context, userID, profileID uint) error {
	if _, err := s.Authorize(ctx, userID, profileID); err != nil {
		return err
	}

	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		count, err := tx.Profile().CountByUser(ctx, userID)
		if err != nil {
			return err
		}
		if count <= 1 {
			return apperrors.New(apperrors.ErrLastProfile)
		}
		if _, err := tx.ReadyToCast().DeleteByProfile(ctx, profileID); err != nil {
			return err
		}
		if _, err := tx.SpellMaintain().DeleteByProfile(ctx, profileID); err != nil {
			return err
		}
		if _, err := tx.Spell().DeleteByProfile(ctx, profileID); err != nil {
			return err
		}
		if err := tx.GameState().DeleteByProfile(ctx, profileID); err != nil {
			return err
		}
		return tx.Profile().Delete(ctx, profileID)
	})
	if err != nil {
		return storageError(err, apperrors.ErrDatabaseDelete)
	}

	s.log.Info("删除档案", zap.Uint("user_id", userID), zap.Uint("profile_id", profileID))
	return nil
}
