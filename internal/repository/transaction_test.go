package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/anima-counter/internal/models"
)

func TestTransactionManager_Begin(t *testing.T) {
	db := SetupTestDB(t)
	manager := NewTransactionManager(db)
	ctx := context.Background()

	tx, err := manager.Begin(ctx)
	require.NoError(t, err)
	assert.NotNil(t, tx.GetDB())

	require.NoError(t, tx.Commit())
	assert.Error(t, tx.Commit())
	assert.Error(t, tx.Rollback())
}

func TestTransactionManager_WithTransaction_Commit(t *testing.T) {
	db := SetupTestDB(t)
	manager := NewTransactionManager(db)
	ctx := context.Background()

	var profileID uint
	err := manager.WithTransaction(ctx, func(tx *Transaction) error {
		user := &models.User{Username: "sabrina", Email: "s@example.com", PasswordHash: "x", IsActive: true}
		if err := tx.User().Create(ctx, user); err != nil {
			return err
		}
		profile := &models.Profile{UserID: user.ID, Name: "Bruja"}
		if err := tx.Profile().Create(ctx, profile); err != nil {
			return err
		}
		profileID = profile.ID
		return tx.GameState().Create(ctx, &models.GameState{UserProfileID: profile.ID, Zeon: 100})
	})
	require.NoError(t, err)

	state, err := NewGameStateRepository(db).FindByProfile(ctx, profileID)
	require.NoError(t, err)
	assert.Equal(t, int64(100), state.Zeon)
}

func TestTransactionManager_WithTransaction_Rollback(t *testing.T) {
	db := SetupTestDB(t)
	manager := NewTransactionManager(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := manager.WithTransaction(ctx, func(tx *Transaction) error {
		user := &models.User{Username: "ghost", Email: "g@example.com", PasswordHash: "x", IsActive: true}
		if err := tx.User().Create(ctx, user); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewUserRepository(db).FindByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransactionManager_WithTransaction_Panic(t *testing.T) {
	db := SetupTestDB(t)
	manager := NewTransactionManager(db)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = manager.WithTransaction(ctx, func(tx *Transaction) error {
			user := &models.User{Username: "panic", Email: "p@example.com", PasswordHash: "x", IsActive: true}
			_ = tx.User().Create(ctx, user)
			panic("unexpected")
		})
	})

	// 连接已归还，可以继续查询
	_, err := NewUserRepository(db).FindByUsername(ctx, "panic")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransaction_SavePoint(t *testing.T) {
	db := SetupTestDB(t)
	ctx := context.Background()
	_, profile := SeedUserWithProfile(t, db, "savepoint")

	err := NewManager(db).WithTransaction(ctx, func(tx *Transaction) error {
		if err := tx.Spell().Create(ctx, &models.Spell{UserProfileID: profile.ID, SpellName: "keep"}); err != nil {
			return err
		}
		if err := tx.SavePoint("sp1"); err != nil {
			return err
		}
		if err := tx.Spell().Create(ctx, &models.Spell{UserProfileID: profile.ID, SpellName: "drop"}); err != nil {
			return err
		}
		return tx.RollbackToSavePoint("sp1")
	})
	require.NoError(t, err)

	spells, err := NewSpellRepository(db).ListByProfile(ctx, profile.ID)
	require.NoError(t, err)
	require.Len(t, spells, 1)
	assert.Equal(t, "keep", spells[0].SpellName)
}
