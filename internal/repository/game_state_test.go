package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/wfunc/anima-counter/internal/models"
	"gorm.io/gorm"
)

// GameStateRepositoryTestSuite 战斗状态与法术集合仓储测试套件
type GameStateRepositoryTestSuite struct {
	suite.Suite
	db        *gorm.DB
	profileID uint
	states    GameStateRepository
	spells    SpellRepository
	ready     ReadyToCastRepository
	maintain  SpellMaintainRepository
}

func (suite *GameStateRepositoryTestSuite) SetupTest() {
	suite.db = SetupTestDB(suite.T())
	m := NewManager(suite.db)
	suite.states = m.GameState()
	suite.spells = m.Spell()
	suite.ready = m.ReadyToCast()
	suite.maintain = m.SpellMaintain()

	_, profile := SeedUserWithProfile(suite.T(), suite.db, "zeonista")
	suite.profileID = profile.ID
}

func int64Ptr(v int64) *int64 { return &v }

func (suite *GameStateRepositoryTestSuite) TestGetOrCreate_Lazy() {
	ctx := context.Background()
	profile := &models.Profile{UserID: 1, Name: "sin estado"}
	suite.Require().NoError(suite.db.Create(profile).Error)

	_, err := suite.states.FindByProfile(ctx, profile.ID)
	suite.ErrorIs(err, ErrNotFound)

	state, err := suite.states.GetOrCreate(ctx, profile.ID)
	suite.Require().NoError(err)
	suite.Equal(profile.ID, state.UserProfileID)
	suite.Zero(state.Zeon)

	again, err := suite.states.GetOrCreate(ctx, profile.ID)
	suite.Require().NoError(err)
	suite.Equal(state.ID, again.ID)

	// 唯一约束阻止重复行
	suite.ErrorIs(suite.states.Create(ctx, &models.GameState{UserProfileID: profile.ID}), ErrDuplicate)
}

// TestCreateIfAbsent_ExistingRowInTransaction 行已存在时返回原行，事务继续可用
func (suite *GameStateRepositoryTestSuite) TestCreateIfAbsent_ExistingRowInTransaction() {
	ctx := context.Background()
	existing, err := suite.states.FindByProfile(ctx, suite.profileID)
	suite.Require().NoError(err)

	err = NewTransactionManager(suite.db).WithTransaction(ctx, func(tx *Transaction) error {
		repo, ok := tx.GameState().(*gameStateRepo)
		suite.Require().True(ok)

		state, err := repo.createIfAbsent(ctx, suite.profileID)
		suite.Require().NoError(err)
		suite.Equal(existing.ID, state.ID)

		_, err = tx.GameState().Merge(ctx, suite.profileID, models.GameStatePatch{Zeon: int64Ptr(70)})
		return err
	})
	suite.Require().NoError(err)

	var count int64
	suite.db.Model(&models.GameState{}).Where("user_profile_id = ?", suite.profileID).Count(&count)
	suite.Equal(int64(1), count)

	state, err := suite.states.FindByProfile(ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Equal(int64(70), state.Zeon)
}

func (suite *GameStateRepositoryTestSuite) TestMerge_PreservesUnspecified() {
	ctx := context.Background()
	acu := true

	state, err := suite.states.Merge(ctx, suite.profileID, models.GameStatePatch{
		Zeon: int64Ptr(100), Rzeon: int64Ptr(80), Rzeoni: int64Ptr(10), Act: int64Ptr(5), Acu: &acu, LockState: int64Ptr(2),
	})
	suite.Require().NoError(err)
	suite.Equal(int64(100), state.Zeon)
	suite.True(state.Acu)

	state, err = suite.states.Merge(ctx, suite.profileID, models.GameStatePatch{Rzeon: int64Ptr(50)})
	suite.Require().NoError(err)
	suite.Equal(int64(50), state.Rzeon)
	suite.Equal(int64(100), state.Zeon)
	suite.Equal(int64(10), state.Rzeoni)
	suite.Equal(int64(2), state.LockState)
	suite.True(state.Acu)

	// 空补丁不修改
	same, err := suite.states.Merge(ctx, suite.profileID, models.GameStatePatch{})
	suite.Require().NoError(err)
	suite.Equal(state.Rzeon, same.Rzeon)

	// 布尔值可以显式设为false
	off := false
	state, err = suite.states.Merge(ctx, suite.profileID, models.GameStatePatch{Acu: &off})
	suite.Require().NoError(err)
	suite.False(state.Acu)
}

func (suite *GameStateRepositoryTestSuite) TestResetCombat() {
	ctx := context.Background()
	_, err := suite.states.Merge(ctx, suite.profileID, models.GameStatePatch{
		TurnNumber: int64Ptr(4), Zeon: int64Ptr(90), Rzeon: int64Ptr(60), Zeona: int64Ptr(12), Zeonp: int64Ptr(30),
		Act: int64Ptr(5), Rzeoni: int64Ptr(7), LockState: int64Ptr(1), ZeonToSpend: int64Ptr(9), MantainZeonToSpend: int64Ptr(3),
	})
	suite.Require().NoError(err)

	n, err := suite.states.ResetCombat(ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), n)

	state, err := suite.states.FindByProfile(ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Zero(state.TurnNumber)
	suite.Zero(state.Zeona)
	suite.Zero(state.Zeonp)
	suite.Zero(state.ZeonToSpend)
	suite.Zero(state.MantainZeonToSpend)
	suite.Equal(int64(90), state.Zeon)
	suite.Equal(int64(60), state.Rzeon)
	suite.Equal(int64(5), state.Act)
	suite.Equal(int64(7), state.Rzeoni)
	suite.Equal(int64(1), state.LockState)

	n, err = suite.states.ResetCombat(ctx)
	suite.Require().NoError(err)
	suite.Zero(n)
}

func (suite *GameStateRepositoryTestSuite) TestSpells_OrderAndDelete() {
	ctx := context.Background()
	via := "Fuego"
	names := []string{"Bola", "Muro", "Lanza"}
	for _, name := range names {
		suite.Require().NoError(suite.spells.Create(ctx, &models.Spell{
			UserProfileID: suite.profileID, SpellName: name, SpellBase: 10, SpellVia: &via,
		}))
	}

	list, err := suite.spells.ListByProfile(ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Require().Len(list, 3)
	for i, name := range names {
		suite.Equal(name, list[i].SpellName)
	}

	owned, err := suite.spells.FindOwned(ctx, suite.profileID, list[1].ID)
	suite.Require().NoError(err)
	suite.Equal("Muro", owned.SpellName)
	_, err = suite.spells.FindOwned(ctx, suite.profileID+1, list[1].ID)
	suite.ErrorIs(err, ErrNotFound)

	// 其他档案的ID无法删除
	suite.ErrorIs(suite.spells.Delete(ctx, suite.profileID+1, list[0].ID), ErrNotFound)
	suite.Require().NoError(suite.spells.Delete(ctx, suite.profileID, list[0].ID))
	suite.ErrorIs(suite.spells.Delete(ctx, suite.profileID, list[0].ID), ErrNotFound)

	n, err := suite.spells.DeleteByProfile(ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), n)

	n, err = suite.spells.DeleteByProfile(ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Zero(n)
}

func (suite *GameStateRepositoryTestSuite) TestReadyAndMaintain_Sums() {
	ctx := context.Background()

	total, err := suite.ready.SumZeon(ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Zero(total)

	first := &models.ReadyToCast{UserProfileID: suite.profileID, SpellName: "a", SpellZeon: 15}
	suite.Require().NoError(suite.ready.Create(ctx, first))
	suite.Require().NoError(suite.ready.Create(ctx, &models.ReadyToCast{UserProfileID: suite.profileID, SpellName: "b", SpellZeon: 5}))

	total, err = suite.ready.SumZeon(ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Equal(int64(20), total)

	suite.Require().NoError(suite.ready.Delete(ctx, suite.profileID, first.ID))
	total, err = suite.ready.SumZeon(ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Equal(int64(5), total)

	suite.Require().NoError(suite.maintain.Create(ctx, &models.SpellMaintain{UserProfileID: suite.profileID, SpellName: "m", SpellMantain: 4}))
	upkeep, err := suite.maintain.SumMantain(ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Equal(int64(4), upkeep)

	entries, err := suite.maintain.ListByProfile(ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Nil(entries[0].SpellID)
	suite.Nil(entries[0].SpellIndex)

	n, err := suite.maintain.DeleteByProfile(ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), n)
	n, err = suite.ready.DeleteByProfile(ctx, suite.profileID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), n)
}

func TestGameStateRepositorySuite(t *testing.T) {
	suite.Run(t, new(GameStateRepositoryTestSuite))
}
