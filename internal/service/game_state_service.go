package service

import (
	"context"
	stderrors "errors"

	"github.com/wfunc/anima-counter/internal/engine"
	apperrors "github.com/wfunc/anima-counter/internal/errors"
	"github.com/wfunc/anima-counter/internal/logger"
	"github.com/wfunc/anima-counter/internal/models"
	"github.com/wfunc/anima-counter/internal/repository"
	"go.uber.org/zap"
)

type gameStateService struct {
	repos *repository.Manager
	log   *zap.Logger
}

// NewGameStateService 创建战斗状态服务
func NewGameStateService(repos *repository.Manager, log *zap.Logger) GameStateService {
	return &gameStateService{repos: repos, log: log}
}

// Get 首次访问时创建全零状态
func (s *gameStateService) Get(ctx context.Context, profileID uint) (*models.GameState, error) {
	state, err := s.repos.GameState().GetOrCreate(ctx, profileID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	return state, nil
}

// Update 合并更新，未提供的字段保持原值
// 两个缓存字段总是按队列重算，客户端提交的值不生效
func (s *gameStateService) Update(ctx context.Context, profileID uint, req *GameStateRequest) (*models.GameState, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	var row *models.GameState
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		var (
			snap engine.Snapshot
			err  error
		)
		row, snap, err = loadSnapshot(ctx, tx, profileID)
		if err != nil {
			return err
		}
		req.Patch().Apply(row)
		snap.State = toEngineState(row)
		applyState(row, engine.Recompute(snap).State)
		return tx.GameState().Save(ctx, row)
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseUpdate)
	}
	return row, nil
}

// ResetCombat 重置单个档案的战斗状态，保留角色属性
func (s *gameStateService) ResetCombat(ctx context.Context, profileID uint) (*models.GameState, error) {
	var state *models.GameState
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		if _, err := tx.GameState().GetOrCreate(ctx, profileID); err != nil {
			return err
		}
		if err := resetCombat(ctx, tx, profileID); err != nil {
			return err
		}
		var err error
		state, err = tx.GameState().FindByProfile(ctx, profileID)
		return err
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrTransaction)
	}
	logger.LogEngineEvent("reset_combat", profileID, nil)
	return state, nil
}

// ResetCombatForUser 登录时重置用户全部档案，返回档案数量
func (s *gameStateService) ResetCombatForUser(ctx context.Context, userID uint) (int, error) {
	var ids []uint
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		var err error
		if ids, err = tx.Profile().ListIDsByUser(ctx, userID); err != nil {
			return err
		}
		return resetCombat(ctx, tx, ids...)
	})
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.ErrTransaction)
	}
	return len(ids), nil
}

func resetCombat(ctx context.Context, tx *repository.Transaction, profileIDs ...uint) error {
	if len(profileIDs) == 0 {
		return nil
	}
	if _, err := tx.GameState().ResetCombat(ctx, profileIDs...); err != nil {
		return err
	}
	if _, err := tx.ReadyToCast().DeleteByProfile(ctx, profileIDs...); err != nil {
		return err
	}
	_, err := tx.SpellMaintain().DeleteByProfile(ctx, profileIDs...)
	return err
}

// Snapshot 读取状态与两个队列
func (s *gameStateService) Snapshot(ctx context.Context, profileID uint) (*SnapshotView, error) {
	var snap engine.Snapshot
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		var err error
		_, snap, err = loadSnapshot(ctx, tx, profileID)
		return err
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrDatabaseQuery)
	}
	return newSnapshotView(snap), nil
}

// Apply 在同一事务中运行引擎动作并执行其副作用
func (s *gameStateService) Apply(ctx context.Context, profileID uint, req *ActionRequest) (*SnapshotView, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	action := engine.Action{
		Kind:            engine.ActionKind(req.Kind),
		Amount:          req.Amount,
		Bucket:          engine.Bucket(req.Bucket),
		Characteristics: req.Characteristics,
	}

	var (
		after   engine.Snapshot
		effects []engine.Effect
	)
	err := s.repos.WithTransaction(ctx, func(tx *repository.Transaction) error {
		row, before, err := loadSnapshot(ctx, tx, profileID)
		if err != nil {
			return err
		}
		res, err := engine.Apply(before, action)
		if err != nil {
			return err
		}
		effects = res.Effects
		if err := runEffects(ctx, tx, row, res); err != nil {
			return err
		}
		_, after, err = loadSnapshot(ctx, tx, profileID)
		return err
	})
	if err != nil {
		return nil, engineError(err)
	}

	logger.LogEngineEvent(string(action.Kind), profileID, map[string]interface{}{
		"effects": len(effects),
		"rzeon":   after.State.Rzeon,
		"zeona":   after.State.Zeona,
		"zeonp":   after.State.Zeonp,
	})
	return newSnapshotView(after), nil
}

// runEffects 按顺序执行引擎产生的副作用
func runEffects(ctx context.Context, tx *repository.Transaction, row *models.GameState, res engine.Result) error {
	for _, eff := range res.Effects {
		switch eff.Kind {
		case engine.EffectCreateMaintained:
			m := eff.Maintained
			if err := tx.SpellMaintain().Create(ctx, &models.SpellMaintain{
				UserProfileID: row.UserProfileID,
				SpellID:       m.SpellID,
				SpellName:     m.SpellName,
				SpellMantain:  m.SpellMantain,
				SpellIndex:    m.SpellIndex,
			}); err != nil {
				return err
			}
		case engine.EffectClearReadyToCast:
			if _, err := tx.ReadyToCast().DeleteByProfile(ctx, row.UserProfileID); err != nil {
				return err
			}
		case engine.EffectClearMaintained:
			if _, err := tx.SpellMaintain().DeleteByProfile(ctx, row.UserProfileID); err != nil {
				return err
			}
		case engine.EffectSaveState:
			applyState(row, res.Snapshot.State)
			if err := tx.GameState().Save(ctx, row); err != nil {
				return err
			}
		}
	}
	return nil
}

func loadSnapshot(ctx context.Context, tx *repository.Transaction, profileID uint) (*models.GameState, engine.Snapshot, error) {
	row, err := tx.GameState().GetOrCreate(ctx, profileID)
	if err != nil {
		return nil, engine.Snapshot{}, err
	}
	ready, err := tx.ReadyToCast().ListByProfile(ctx, profileID)
	if err != nil {
		return nil, engine.Snapshot{}, err
	}
	maintained, err := tx.SpellMaintain().ListByProfile(ctx, profileID)
	if err != nil {
		return nil, engine.Snapshot{}, err
	}

	snap := engine.Snapshot{
		State:       toEngineState(row),
		ReadyToCast: make([]engine.ReadyEntry, 0, len(ready)),
		Maintained:  make([]engine.MaintainedEntry, 0, len(maintained)),
	}
	for _, r := range ready {
		snap.ReadyToCast = append(snap.ReadyToCast, engine.ReadyEntry{
			ID:               r.ID,
			SpellID:          r.SpellID,
			SpellName:        r.SpellName,
			SpellZeon:        r.SpellZeon,
			SpellMantain:     r.SpellMantain,
			SpellMantainTurn: r.SpellMantainTurn,
			SpellIndex:       r.SpellIndex,
		})
	}
	for _, m := range maintained {
		snap.Maintained = append(snap.Maintained, engine.MaintainedEntry{
			ID:           m.ID,
			SpellID:      m.SpellID,
			SpellName:    m.SpellName,
			SpellMantain: m.SpellMantain,
			SpellIndex:   m.SpellIndex,
		})
	}
	return row, snap, nil
}

func toEngineState(gs *models.GameState) engine.State {
	return engine.State{
		TurnNumber:         gs.TurnNumber,
		Zeon:               gs.Zeon,
		Rzeon:              gs.Rzeon,
		Zeona:              gs.Zeona,
		Act:                gs.Act,
		Rzeoni:             gs.Rzeoni,
		Zeonp:              gs.Zeonp,
		Acu:                gs.Acu,
		LockState:          gs.LockState,
		ZeonToSpend:        gs.ZeonToSpend,
		MantainZeonToSpend: gs.MantainZeonToSpend,
	}
}

func applyState(gs *models.GameState, st engine.State) {
	gs.TurnNumber = st.TurnNumber
	gs.Zeon = st.Zeon
	gs.Rzeon = st.Rzeon
	gs.Zeona = st.Zeona
	gs.Act = st.Act
	gs.Rzeoni = st.Rzeoni
	gs.Zeonp = st.Zeonp
	gs.Acu = st.Acu
	gs.LockState = st.LockState
	gs.ZeonToSpend = st.ZeonToSpend
	gs.MantainZeonToSpend = st.MantainZeonToSpend
}

// engineError 引擎错误转换为参数类错误
func engineError(err error) error {
	switch {
	case stderrors.Is(err, engine.ErrUnknownAction):
		return apperrors.Wrap(err, apperrors.ErrUnknownAction)
	case stderrors.Is(err, engine.ErrNegativeAmount):
		return apperrors.Wrap(err, apperrors.ErrInvalidAmount)
	case stderrors.Is(err, engine.ErrNoPreviousTurn):
		return apperrors.Wrap(err, apperrors.ErrNoPreviousTurn)
	}
	return apperrors.Wrap(err, apperrors.ErrTransaction)
}
