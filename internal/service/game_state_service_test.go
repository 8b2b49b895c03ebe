package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/wfunc/anima-counter/internal/engine"
	apperrors "github.com/wfunc/anima-counter/internal/errors"
	"github.com/wfunc/anima-counter/internal/models"
	"gorm.io/gorm"
)

// GameStateServiceTestSuite 档案、法术书与战斗状态服务测试套件
type GameStateServiceTestSuite struct {
	suite.Suite
	db        *gorm.DB
	svc       *Services
	ctx       context.Context
	userID    uint
	profileID uint
}

func (suite *GameStateServiceTestSuite) SetupTest() {
	suite.db, suite.svc = newTestServices(suite.T())
	suite.ctx = context.Background()

	resp, err := suite.svc.Auth.Register(suite.ctx, &RegisterRequest{Username: "sabrina", Password: "secreto"})
	suite.Require().NoError(err)
	suite.userID = resp.User.ID

	profiles, err := suite.svc.Profile.List(suite.ctx, suite.userID)
	suite.Require().NoError(err)
	suite.profileID = profiles[0].ID
}

func (suite *GameStateServiceTestSuite) setState(req *GameStateRequest) {
	_, err := suite.svc.GameState.Update(suite.ctx, suite.profileID, req)
	suite.Require().NoError(err)
}

func (suite *GameStateServiceTestSuite) apply(kind engine.ActionKind) *SnapshotView {
	view, err := suite.svc.GameState.Apply(suite.ctx, suite.profileID, &ActionRequest{Kind: string(kind)})
	suite.Require().NoError(err)
	return view
}

// TestAuthorize 不存在与他人的档案返回相同的拒绝
func (suite *GameStateServiceTestSuite) TestAuthorize() {
	other, err := suite.svc.Auth.Register(suite.ctx, &RegisterRequest{Username: "intruso", Password: "secreto"})
	suite.Require().NoError(err)

	_, err = suite.svc.Profile.Authorize(suite.ctx, other.User.ID, suite.profileID)
	foreign, ok := apperrors.As(err)
	suite.Require().True(ok)
	suite.Equal(apperrors.ErrPermissionDenied, foreign.Code)

	_, err = suite.svc.Profile.Authorize(suite.ctx, other.User.ID, 424242)
	missing, ok := apperrors.As(err)
	suite.Require().True(ok)
	suite.Equal(foreign.Code, missing.Code)
	suite.Equal(foreign.Message, missing.Message)

	profile, err := suite.svc.Profile.Get(suite.ctx, suite.userID, suite.profileID)
	suite.Require().NoError(err)
	suite.Equal(suite.profileID, profile.ID)
}

// TestProfileLifecycle 测试创建、重命名与删除档案
func (suite *GameStateServiceTestSuite) TestProfileLifecycle() {
	// 唯一档案不能删除
	err := suite.svc.Profile.Delete(suite.ctx, suite.userID, suite.profileID)
	suite.Equal(apperrors.ErrLastProfile, apperrors.GetCode(err))

	second, err := suite.svc.Profile.Create(suite.ctx, suite.userID, &ProfileRequest{Name: "  Segunda  "})
	suite.Require().NoError(err)
	suite.Equal("Segunda", second.Name)

	state, err := suite.svc.Repos.GameState().FindByProfile(suite.ctx, second.ID)
	suite.Require().NoError(err)
	suite.Zero(state.Zeon)

	renamed, err := suite.svc.Profile.Rename(suite.ctx, suite.userID, second.ID, &ProfileRequest{Name: "Tercera"})
	suite.Require().NoError(err)
	suite.Equal("Tercera", renamed.Name)

	_, err = suite.svc.Profile.Rename(suite.ctx, suite.userID, second.ID, &ProfileRequest{Name: ""})
	suite.Equal(apperrors.ErrInvalidParam, apperrors.GetCode(err))

	_, err = suite.svc.Spellbook.CreateSpell(suite.ctx, second.ID, &SpellRequest{
		SpellName: "Luz", SpellBase: int64Ptr(1), SpellInter: int64Ptr(2), SpellAdvanced: int64Ptr(3), SpellArcane: int64Ptr(4),
	})
	suite.Require().NoError(err)
	_, err = suite.svc.Spellbook.CreateReadyToCast(suite.ctx, second.ID, &ReadyToCastRequest{SpellName: "Luz", SpellZeon: int64Ptr(1)})
	suite.Require().NoError(err)
	_, err = suite.svc.Spellbook.CreateMaintained(suite.ctx, second.ID, &MaintainRequest{SpellName: "Luz", SpellMantain: int64Ptr(1)})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.svc.Profile.Delete(suite.ctx, suite.userID, second.ID))

	for _, model := range []interface{}{&models.Spell{}, &models.ReadyToCast{}, &models.SpellMaintain{}, &models.GameState{}} {
		var count int64
		suite.db.Model(model).Where("user_profile_id = ?", second.ID).Count(&count)
		suite.Zero(count)
	}
	_, err = suite.svc.Profile.Get(suite.ctx, suite.userID, second.ID)
	suite.Equal(apperrors.ErrPermissionDenied, apperrors.GetCode(err))
}

// TestSpellbook 测试法术书增删
func (suite *GameStateServiceTestSuite) TestSpellbook() {
	via := "Fuego"
	spell, err := suite.svc.Spellbook.CreateSpell(suite.ctx, suite.profileID, &SpellRequest{
		SpellName: "Bola de fuego", SpellBase: int64Ptr(40), SpellInter: int64Ptr(80), SpellAdvanced: int64Ptr(120),
		SpellArcane: int64Ptr(200), SpellBaseMantain: int64Ptr(5), SpellVia: &via,
	})
	suite.Require().NoError(err)
	suite.Equal(int64(5), spell.SpellBaseMantain)
	suite.Zero(spell.SpellArcaneMantain)
	suite.Require().NotNil(spell.SpellVia)

	_, err = suite.svc.Spellbook.CreateSpell(suite.ctx, suite.profileID, &SpellRequest{SpellName: "Sin costes"})
	appErr, ok := apperrors.As(err)
	suite.Require().True(ok)
	suite.Equal(apperrors.ErrInvalidParam, appErr.Code)
	suite.Len(appErr.Fields, 4)

	list, err := suite.svc.Spellbook.ListSpells(suite.ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Len(list, 1)

	suite.Require().NoError(suite.svc.Spellbook.DeleteSpell(suite.ctx, suite.profileID, spell.ID))
	err = suite.svc.Spellbook.DeleteSpell(suite.ctx, suite.profileID, spell.ID)
	suite.Equal(apperrors.ErrNotFound, apperrors.GetCode(err))
}

// TestReadyToCastCache 队列变化后缓存字段保持一致
func (suite *GameStateServiceTestSuite) TestReadyToCastCache() {
	first, err := suite.svc.Spellbook.CreateReadyToCast(suite.ctx, suite.profileID, &ReadyToCastRequest{SpellName: "a", SpellZeon: int64Ptr(15)})
	suite.Require().NoError(err)
	_, err = suite.svc.Spellbook.CreateReadyToCast(suite.ctx, suite.profileID, &ReadyToCastRequest{SpellName: "b", SpellZeon: int64Ptr(5)})
	suite.Require().NoError(err)

	state, err := suite.svc.GameState.Get(suite.ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Equal(int64(20), state.ZeonToSpend)

	suite.Require().NoError(suite.svc.Spellbook.DeleteReadyToCast(suite.ctx, suite.profileID, first.ID))
	state, err = suite.svc.GameState.Get(suite.ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Equal(int64(5), state.ZeonToSpend)

	err = suite.svc.Spellbook.DeleteReadyToCast(suite.ctx, suite.profileID, first.ID)
	suite.Equal(apperrors.ErrNotFound, apperrors.GetCode(err))

	n, err := suite.svc.Spellbook.ClearReadyToCast(suite.ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), n)
	n, err = suite.svc.Spellbook.ClearReadyToCast(suite.ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Zero(n)

	_, err = suite.svc.Spellbook.CreateMaintained(suite.ctx, suite.profileID, &MaintainRequest{SpellName: "m", SpellMantain: int64Ptr(4)})
	suite.Require().NoError(err)
	state, err = suite.svc.GameState.Get(suite.ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Zero(state.ZeonToSpend)
	suite.Equal(int64(4), state.MantainZeonToSpend)

	n, err = suite.svc.Spellbook.ClearMaintained(suite.ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), n)
	state, err = suite.svc.GameState.Get(suite.ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Zero(state.MantainZeonToSpend)
}

// TestUpdateMerge 部分更新保留其他字段
func (suite *GameStateServiceTestSuite) TestUpdateMerge() {
	acu := true
	suite.setState(&GameStateRequest{Zeon: int64Ptr(100), Rzeon: int64Ptr(80), Acu: &acu})
	state, err := suite.svc.GameState.Update(suite.ctx, suite.profileID, &GameStateRequest{Rzeoni: int64Ptr(10)})
	suite.Require().NoError(err)
	suite.Equal(int64(100), state.Zeon)
	suite.Equal(int64(80), state.Rzeon)
	suite.Equal(int64(10), state.Rzeoni)
	suite.True(state.Acu)

	_, err = suite.svc.GameState.Update(suite.ctx, suite.profileID, &GameStateRequest{Zeon: int64Ptr(-1)})
	suite.Equal(apperrors.ErrInvalidParam, apperrors.GetCode(err))
}

// TestUpdate_RecomputesCaches 提交的缓存字段被忽略，推进回合按维持列表扣除
func (suite *GameStateServiceTestSuite) TestUpdate_RecomputesCaches() {
	_, err := suite.svc.Spellbook.CreateMaintained(suite.ctx, suite.profileID, &MaintainRequest{SpellName: "Escudo", SpellMantain: int64Ptr(10)})
	suite.Require().NoError(err)

	state, err := suite.svc.GameState.Update(suite.ctx, suite.profileID, &GameStateRequest{
		Zeon: int64Ptr(100), Rzeon: int64Ptr(50), ZeonToSpend: int64Ptr(7), MantainZeonToSpend: int64Ptr(0),
	})
	suite.Require().NoError(err)
	suite.Zero(state.ZeonToSpend)
	suite.Equal(int64(10), state.MantainZeonToSpend)
	suite.Equal(int64(50), state.Rzeon)

	view := suite.apply(engine.ActionNextTurn)
	suite.Equal(int64(40), view.State.Rzeon)
	view = suite.apply(engine.ActionPreviousTurn)
	suite.Equal(int64(50), view.State.Rzeon)
}

// TestQueues_SpellFromOtherProfile spell_id 必须属于同一档案
func (suite *GameStateServiceTestSuite) TestQueues_SpellFromOtherProfile() {
	other, err := suite.svc.Profile.Create(suite.ctx, suite.userID, &ProfileRequest{Name: "Otra"})
	suite.Require().NoError(err)
	foreign, err := suite.svc.Spellbook.CreateSpell(suite.ctx, other.ID, &SpellRequest{
		SpellName: "Ajeno", SpellBase: int64Ptr(10), SpellInter: int64Ptr(20), SpellAdvanced: int64Ptr(30), SpellArcane: int64Ptr(40),
	})
	suite.Require().NoError(err)
	own, err := suite.svc.Spellbook.CreateSpell(suite.ctx, suite.profileID, &SpellRequest{
		SpellName: "Propio", SpellBase: int64Ptr(10), SpellInter: int64Ptr(20), SpellAdvanced: int64Ptr(30), SpellArcane: int64Ptr(40),
	})
	suite.Require().NoError(err)

	_, err = suite.svc.Spellbook.CreateReadyToCast(suite.ctx, suite.profileID, &ReadyToCastRequest{
		SpellID: &foreign.ID, SpellName: "Ajeno", SpellZeon: int64Ptr(10),
	})
	appErr, ok := apperrors.As(err)
	suite.Require().True(ok)
	suite.Equal(apperrors.ErrInvalidParam, appErr.Code)
	suite.Require().Len(appErr.Fields, 1)
	suite.Equal("spell_id", appErr.Fields[0].Field)

	_, err = suite.svc.Spellbook.CreateMaintained(suite.ctx, suite.profileID, &MaintainRequest{
		SpellID: &foreign.ID, SpellName: "Ajeno", SpellMantain: int64Ptr(2),
	})
	suite.Equal(apperrors.ErrInvalidParam, apperrors.GetCode(err))

	view, err := suite.svc.GameState.Snapshot(suite.ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Empty(view.ReadyToCast)
	suite.Empty(view.Maintained)
	suite.Zero(view.State.ZeonToSpend)

	entry, err := suite.svc.Spellbook.CreateReadyToCast(suite.ctx, suite.profileID, &ReadyToCastRequest{
		SpellID: &own.ID, SpellName: "Propio", SpellZeon: int64Ptr(10),
	})
	suite.Require().NoError(err)
	suite.Equal(&own.ID, entry.SpellID)
	_, err = suite.svc.Spellbook.CreateMaintained(suite.ctx, suite.profileID, &MaintainRequest{
		SpellID: &own.ID, SpellName: "Propio", SpellMantain: int64Ptr(2),
	})
	suite.Require().NoError(err)
}

// TestResetCombat 重置清零战斗字段并清空两个队列
func (suite *GameStateServiceTestSuite) TestResetCombat() {
	suite.setState(&GameStateRequest{
		TurnNumber: int64Ptr(5), Zeon: int64Ptr(120), Rzeon: int64Ptr(90), Zeona: int64Ptr(12), Zeonp: int64Ptr(30),
		Act: int64Ptr(6), Rzeoni: int64Ptr(15), LockState: int64Ptr(1),
	})
	_, err := suite.svc.Spellbook.CreateReadyToCast(suite.ctx, suite.profileID, &ReadyToCastRequest{SpellName: "a", SpellZeon: int64Ptr(7)})
	suite.Require().NoError(err)
	_, err = suite.svc.Spellbook.CreateMaintained(suite.ctx, suite.profileID, &MaintainRequest{SpellName: "m", SpellMantain: int64Ptr(2)})
	suite.Require().NoError(err)

	state, err := suite.svc.GameState.ResetCombat(suite.ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Zero(state.TurnNumber)
	suite.Zero(state.Zeona)
	suite.Zero(state.Zeonp)
	suite.Zero(state.ZeonToSpend)
	suite.Zero(state.MantainZeonToSpend)
	suite.Equal(int64(120), state.Zeon)
	suite.Equal(int64(90), state.Rzeon)
	suite.Equal(int64(6), state.Act)
	suite.Equal(int64(15), state.Rzeoni)
	suite.Equal(int64(1), state.LockState)

	view, err := suite.svc.GameState.Snapshot(suite.ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Empty(view.ReadyToCast)
	suite.Empty(view.Maintained)
}

// TestApply_NewDay 每日恢复不超过上限
func (suite *GameStateServiceTestSuite) TestApply_NewDay() {
	suite.setState(&GameStateRequest{Zeon: int64Ptr(100), Rzeon: int64Ptr(80), Rzeoni: int64Ptr(10)})

	suite.Equal(int64(90), suite.apply(engine.ActionNewDay).State.Rzeon)
	suite.Equal(int64(100), suite.apply(engine.ActionNewDay).State.Rzeon)
	suite.Equal(int64(100), suite.apply(engine.ActionNewDay).State.Rzeon)

	state, err := suite.svc.GameState.Get(suite.ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Equal(int64(100), state.Rzeon)
}

// TestApply_Cast 施法结算并把需要维持的法术转入维持列表
func (suite *GameStateServiceTestSuite) TestApply_Cast() {
	suite.setState(&GameStateRequest{Zeon: int64Ptr(100), Rzeon: int64Ptr(50), Zeona: int64Ptr(25)})
	_, err := suite.svc.Spellbook.CreateReadyToCast(suite.ctx, suite.profileID, &ReadyToCastRequest{
		SpellName: "Escudo", SpellZeon: int64Ptr(6), SpellMantain: int64Ptr(3), SpellMantainTurn: true,
	})
	suite.Require().NoError(err)
	_, err = suite.svc.Spellbook.CreateReadyToCast(suite.ctx, suite.profileID, &ReadyToCastRequest{SpellName: "Rayo", SpellZeon: int64Ptr(4)})
	suite.Require().NoError(err)

	view := suite.apply(engine.ActionCast)
	suite.Equal(int64(55), view.State.Rzeon)
	suite.Equal(int64(10), view.State.Zeonp)
	suite.Zero(view.State.Zeona)
	suite.Zero(view.State.ZeonToSpend)
	suite.Equal(int64(3), view.State.MantainZeonToSpend)
	suite.Empty(view.ReadyToCast)
	suite.Require().Len(view.Maintained, 1)
	suite.Equal("Escudo", view.Maintained[0].SpellName)
	suite.NotZero(view.Maintained[0].ID)
	suite.Equal(int64(10), view.TotalAccumulated)
	suite.Equal(int64(55+10-3), view.Available)

	// 下一回合扣除维持消耗
	view = suite.apply(engine.ActionNextTurn)
	suite.Equal(int64(1), view.State.TurnNumber)
	suite.Equal(int64(52), view.State.Rzeon)

	view = suite.apply(engine.ActionPreviousTurn)
	suite.Zero(view.State.TurnNumber)
	suite.Equal(int64(55), view.State.Rzeon)
}

// TestApply_Errors 引擎错误映射为参数错误且不修改状态
func (suite *GameStateServiceTestSuite) TestApply_Errors() {
	suite.setState(&GameStateRequest{Zeon: int64Ptr(50), Rzeon: int64Ptr(20)})

	_, err := suite.svc.GameState.Apply(suite.ctx, suite.profileID, &ActionRequest{Kind: string(engine.ActionPreviousTurn)})
	suite.Equal(apperrors.ErrNoPreviousTurn, apperrors.GetCode(err))

	_, err = suite.svc.GameState.Apply(suite.ctx, suite.profileID, &ActionRequest{Kind: "fly"})
	suite.Equal(apperrors.ErrUnknownAction, apperrors.GetCode(err))

	_, err = suite.svc.GameState.Apply(suite.ctx, suite.profileID, &ActionRequest{Kind: string(engine.ActionSpendZeon), Amount: -5})
	suite.Equal(apperrors.ErrInvalidParam, apperrors.GetCode(err))

	_, err = suite.svc.GameState.Apply(suite.ctx, suite.profileID, &ActionRequest{Kind: string(engine.ActionAddAccumulated), Amount: 1, Bucket: "other"})
	suite.Equal(apperrors.ErrInvalidParam, apperrors.GetCode(err))

	state, err := suite.svc.GameState.Get(suite.ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Zero(state.TurnNumber)
	suite.Equal(int64(20), state.Rzeon)
}

// TestApply_SpendAndAccumulate 测试花费与积累
func (suite *GameStateServiceTestSuite) TestApply_SpendAndAccumulate() {
	suite.setState(&GameStateRequest{Zeon: int64Ptr(50), Rzeon: int64Ptr(20)})

	view, err := suite.svc.GameState.Apply(suite.ctx, suite.profileID, &ActionRequest{Kind: string(engine.ActionSpendZeon), Amount: 30})
	suite.Require().NoError(err)
	suite.Zero(view.State.Rzeon)

	view, err = suite.svc.GameState.Apply(suite.ctx, suite.profileID, &ActionRequest{Kind: string(engine.ActionAddZeon), Amount: 80})
	suite.Require().NoError(err)
	suite.Equal(int64(50), view.State.Rzeon)

	view, err = suite.svc.GameState.Apply(suite.ctx, suite.profileID, &ActionRequest{Kind: string(engine.ActionAddAccumulated), Amount: 7, Bucket: "permanent"})
	suite.Require().NoError(err)
	suite.Equal(int64(7), view.State.Zeonp)
	suite.Zero(view.State.Zeona)
}

func TestGameStateServiceSuite(t *testing.T) {
	suite.Run(t, new(GameStateServiceTestSuite))
}
