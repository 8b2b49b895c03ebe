package service

import (
	"context"
	"time"

	"github.com/wfunc/anima-counter/internal/engine"
	"github.com/wfunc/anima-counter/internal/models"
	"github.com/wfunc/anima-counter/internal/utils"
)

// AuthService 认证服务接口
type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	ValidateToken(ctx context.Context, token string) (*utils.JWTClaims, error)
	// Verify 重新读取令牌对应的启用用户
	Verify(ctx context.Context, userID uint) (*UserInfo, error)
}

// ProfileService 角色档案服务接口
type ProfileService interface {
	// Authorize 档案不存在或不属于该用户时统一返回拒绝访问
	Authorize(ctx context.Context, userID, profileID uint) (*models.Profile, error)
	List(ctx context.Context, userID uint) ([]*models.Profile, error)
	Get(ctx context.Context, userID, profileID uint) (*models.Profile, error)
	Create(ctx context.Context, userID uint, req *ProfileRequest) (*models.Profile, error)
	Rename(ctx context.Context, userID, profileID uint, req *ProfileRequest) (*models.Profile, error)
	Delete(ctx context.Context, userID, profileID uint) error
}

// SpellbookService 法术书、待施放队列与维持列表服务接口
//
// 调用方需先通过 ProfileService.Authorize 校验档案归属。
type SpellbookService interface {
	ListSpells(ctx context.Context, profileID uint) ([]*models.Spell, error)
	CreateSpell(ctx context.Context, profileID uint, req *SpellRequest) (*models.Spell, error)
	DeleteSpell(ctx context.Context, profileID, spellID uint) error

	ListReadyToCast(ctx context.Context, profileID uint) ([]*models.ReadyToCast, error)
	CreateReadyToCast(ctx context.Context, profileID uint, req *ReadyToCastRequest) (*models.ReadyToCast, error)
	DeleteReadyToCast(ctx context.Context, profileID, id uint) error
	ClearReadyToCast(ctx context.Context, profileID uint) (int64, error)

	ListMaintained(ctx context.Context, profileID uint) ([]*models.SpellMaintain, error)
	CreateMaintained(ctx context.Context, profileID uint, req *MaintainRequest) (*models.SpellMaintain, error)
	DeleteMaintained(ctx context.Context, profileID, id uint) error
	ClearMaintained(ctx context.Context, profileID uint) (int64, error)
}

// GameStateService 战斗状态服务接口
type GameStateService interface {
	Get(ctx context.Context, profileID uint) (*models.GameState, error)
	Update(ctx context.Context, profileID uint, req *GameStateRequest) (*models.GameState, error)
	ResetCombat(ctx context.Context, profileID uint) (*models.GameState, error)
	ResetCombatForUser(ctx context.Context, userID uint) (int, error)
	Snapshot(ctx context.Context, profileID uint) (*SnapshotView, error)
	Apply(ctx context.Context, profileID uint, req *ActionRequest) (*SnapshotView, error)
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username    string `json:"username" binding:"required,alphanum,min=3,max=30"`
	Password    string `json:"password" binding:"required,min=6,max=128"`
	Email       string `json:"email" binding:"omitempty,email,max=100"`
	DisplayName string `json:"display_name" binding:"omitempty,max=100"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserInfo 对外暴露的用户信息
type UserInfo struct {
	ID          uint       `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// AuthResponse 认证响应
type AuthResponse struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	User      *UserInfo `json:"user"`
}

// ProfileRequest 创建或重命名档案
type ProfileRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// GameStateRequest 战斗状态部分更新，未提供的字段保持原值
type GameStateRequest struct {
	TurnNumber         *int64 `json:"turn_number" binding:"omitempty,min=0"`
	Zeon               *int64 `json:"zeon" binding:"omitempty,min=0"`
	Rzeon              *int64 `json:"rzeon" binding:"omitempty,min=0"`
	Zeona              *int64 `json:"zeona" binding:"omitempty,min=0"`
	Act                *int64 `json:"act" binding:"omitempty,min=0"`
	Rzeoni             *int64 `json:"rzeoni" binding:"omitempty,min=0"`
	Zeonp              *int64 `json:"zeonp" binding:"omitempty,min=0"`
	Acu                *bool  `json:"acu"`
	LockState          *int64 `json:"lock_state" binding:"omitempty,min=0"`
	// 缓存字段仍然接收，保存前按队列重算
	ZeonToSpend        *int64 `json:"zeon_to_spend" binding:"omitempty,min=0"`
	MantainZeonToSpend *int64 `json:"mantain_zeon_to_spend" binding:"omitempty,min=0"`
}

// Patch 转换为模型补丁
func (r *GameStateRequest) Patch() models.GameStatePatch {
	return models.GameStatePatch{
		TurnNumber:         r.TurnNumber,
		Zeon:               r.Zeon,
		Rzeon:              r.Rzeon,
		Zeona:              r.Zeona,
		Act:                r.Act,
		Rzeoni:             r.Rzeoni,
		Zeonp:              r.Zeonp,
		Acu:                r.Acu,
		LockState:          r.LockState,
		ZeonToSpend:        r.ZeonToSpend,
		MantainZeonToSpend: r.MantainZeonToSpend,
	}
}

// SpellRequest 新建法术书条目
type SpellRequest struct {
	SpellName            string  `json:"spell_name" binding:"required,min=1,max=100"`
	SpellBase            *int64  `json:"spell_base" binding:"required,min=0"`
	SpellInter           *int64  `json:"spell_inter" binding:"required,min=0"`
	SpellAdvanced        *int64  `json:"spell_advanced" binding:"required,min=0"`
	SpellArcane          *int64  `json:"spell_arcane" binding:"required,min=0"`
	SpellBaseMantain     *int64  `json:"spell_base_mantain" binding:"omitempty,min=0"`
	SpellInterMantain    *int64  `json:"spell_inter_mantain" binding:"omitempty,min=0"`
	SpellAdvancedMantain *int64  `json:"spell_advanced_mantain" binding:"omitempty,min=0"`
	SpellArcaneMantain   *int64  `json:"spell_arcane_mantain" binding:"omitempty,min=0"`
	SpellVia             *string `json:"spell_via" binding:"omitempty,max=50"`
}

// ReadyToCastRequest 加入待施放队列
type ReadyToCastRequest struct {
	SpellID          *uint  `json:"spell_id"`
	SpellName        string `json:"spell_name" binding:"required,min=1,max=100"`
	SpellZeon        *int64 `json:"spell_zeon" binding:"required,min=0"`
	SpellMantain     *int64 `json:"spell_mantain" binding:"omitempty,min=0"`
	SpellMantainTurn bool   `json:"spell_mantain_turn"`
	SpellIndex       *int64 `json:"spell_index" binding:"omitempty,min=0"`
}

// MaintainRequest 加入维持列表
type MaintainRequest struct {
	SpellID      *uint  `json:"spell_id"`
	SpellName    string `json:"spell_name" binding:"required,min=1,max=100"`
	SpellMantain *int64 `json:"spell_mantain" binding:"required,min=0"`
	SpellIndex   *int64 `json:"spell_index" binding:"omitempty,min=0"`
}

// ActionRequest 引擎动作请求
type ActionRequest struct {
	Kind            string                  `json:"kind" binding:"required"`
	Amount          int64                   `json:"amount" binding:"min=0"`
	Bucket          string                  `json:"bucket" binding:"omitempty,oneof=normal permanent"`
	Characteristics *engine.Characteristics `json:"characteristics"`
}

// SnapshotView 快照及派生数值
type SnapshotView struct {
	engine.Snapshot
	TotalAccumulated int64 `json:"total_accumulated"`
	Available        int64 `json:"available"`
}

func newSnapshotView(s engine.Snapshot) *SnapshotView {
	return &SnapshotView{
		Snapshot:         s,
		TotalAccumulated: s.State.TotalAccumulated(),
		Available:        s.State.Available(),
	}
}

func valueOr(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
