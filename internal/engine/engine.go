// Package engine 实现 zeon 资源结算：回合推进、恢复、积累与施法结算。
//
// 引擎是纯函数：输入当前快照与一个动作，输出新的快照以及需要由调用方
// 执行的持久化副作用。输入快照不会被修改。
package engine

import (
	"errors"
	"fmt"
)

// CastThreshold 施法结算时转入永久积累池的固定额度
const CastThreshold int64 = 10

var (
	// ErrUnknownAction 未知的动作类型
	ErrUnknownAction = errors.New("engine: unknown action")
	// ErrNegativeAmount 数值为负
	ErrNegativeAmount = errors.New("engine: amount must not be negative")
	// ErrNoPreviousTurn 第0回合无法回退
	ErrNoPreviousTurn = errors.New("engine: already at turn 0")
)

// Bucket 积累池类型
type Bucket string

const (
	BucketNormal    Bucket = "normal"
	BucketPermanent Bucket = "permanent"
)

// State 角色资源状态
type State struct {
	TurnNumber         int64 `json:"turn_number"`
	Zeon               int64 `json:"zeon"`
	Rzeon              int64 `json:"rzeon"`
	Zeona              int64 `json:"zeona"`
	Act                int64 `json:"act"`
	Rzeoni             int64 `json:"rzeoni"`
	Zeonp              int64 `json:"zeonp"`
	Acu                bool  `json:"acu"`
	LockState          int64 `json:"lock_state"`
	ZeonToSpend        int64 `json:"zeon_to_spend"`
	MantainZeonToSpend int64 `json:"mantain_zeon_to_spend"`
}

// TotalAccumulated 普通与永久积累之和
func (s State) TotalAccumulated() int64 {
	return s.Zeona + s.Zeonp
}

// Available 扣除待施放与维持消耗后的可用 zeon
func (s State) Available() int64 {
	return s.Rzeon + s.Zeona + s.Zeonp - s.ZeonToSpend - s.MantainZeonToSpend
}

// ReadyEntry 待施放队列中的一项
type ReadyEntry struct {
	ID               uint   `json:"id"`
	SpellID          *uint  `json:"spell_id"`
	SpellName        string `json:"spell_name"`
	SpellZeon        int64  `json:"spell_zeon"`
	SpellMantain     int64  `json:"spell_mantain"`
	SpellMantainTurn bool   `json:"spell_mantain_turn"`
	SpellIndex       *int64 `json:"spell_index"`
}

// MaintainedEntry 维持中的法术
type MaintainedEntry struct {
	ID           uint   `json:"id"`
	SpellID      *uint  `json:"spell_id"`
	SpellName    string `json:"spell_name"`
	SpellMantain int64  `json:"spell_mantain"`
	SpellIndex   *int64 `json:"spell_index"`
}

// Snapshot 一个角色在某一时刻的完整战斗状态
type Snapshot struct {
	State       State             `json:"state"`
	ReadyToCast []ReadyEntry      `json:"ready_to_cast"`
	Maintained  []MaintainedEntry `json:"spell_mantain"`
}

// clone 深拷贝，保证 Apply 不修改输入
func (s Snapshot) clone() Snapshot {
	out := Snapshot{State: s.State}
	out.ReadyToCast = append(make([]ReadyEntry, 0, len(s.ReadyToCast)), s.ReadyToCast...)
	out.Maintained = append(make([]MaintainedEntry, 0, len(s.Maintained)), s.Maintained...)
	return out
}

// ActionKind 动作类型
type ActionKind string

const (
	ActionNextTurn              ActionKind = "next_turn"
	ActionPreviousTurn          ActionKind = "previous_turn"
	ActionNewDay                ActionKind = "new_day"
	ActionResetTurn             ActionKind = "reset_turn"
	ActionSpendZeon             ActionKind = "spend_zeon"
	ActionAddZeon               ActionKind = "add_zeon"
	ActionAddAccumulated        ActionKind = "add_accumulated"
	ActionCast                  ActionKind = "cast"
	ActionClearReadyToCast      ActionKind = "clear_ready_to_cast"
	ActionClearMaintained       ActionKind = "clear_maintained"
	ActionUpdateCharacteristics ActionKind = "update_characteristics"
	ActionRecompute             ActionKind = "recompute"
)

// Characteristics 角色属性的部分更新
type Characteristics struct {
	Zeon      *int64 `json:"zeon,omitempty"`
	Rzeon     *int64 `json:"rzeon,omitempty"`
	Rzeoni    *int64 `json:"rzeoni,omitempty"`
	Act       *int64 `json:"act,omitempty"`
	Acu       *bool  `json:"acu,omitempty"`
	LockState *int64 `json:"lock_state,omitempty"`
}

// Action 一次状态变更请求
type Action struct {
	Kind            ActionKind       `json:"kind"`
	Amount          int64            `json:"amount,omitempty"`
	Bucket          Bucket           `json:"bucket,omitempty"`
	Characteristics *Characteristics `json:"characteristics,omitempty"`
}

// EffectKind 副作用类型
type EffectKind string

const (
	EffectSaveState        EffectKind = "save_state"
	EffectCreateMaintained EffectKind = "create_maintained"
	EffectClearReadyToCast EffectKind = "clear_ready_to_cast"
	EffectClearMaintained  EffectKind = "clear_maintained"
)

// Effect 需要持久化的副作用，按顺序执行
type Effect struct {
	Kind       EffectKind       `json:"kind"`
	Maintained *MaintainedEntry `json:"maintained,omitempty"`
}

// Result Apply 的输出
type Result struct {
	Snapshot Snapshot `json:"snapshot"`
	Effects  []Effect `json:"effects"`
}

// Apply 对快照执行一个动作
func Apply(s Snapshot, a Action) (Result, error) {
	// 缓存字段可能已过期，先按集合重算
	next := Recompute(s.clone())
	var effects []Effect

	switch a.Kind {
	case ActionNextTurn:
		next.State = nextTurn(next.State)
	case ActionPreviousTurn:
		st, err := previousTurn(next.State)
		if err != nil {
			return Result{}, err
		}
		next.State = st
	case ActionNewDay:
		next.State = newDay(next.State)
	case ActionResetTurn:
		next.State.TurnNumber = 0
		next.State.Zeona = 0
	case ActionSpendZeon:
		if a.Amount < 0 {
			return Result{}, ErrNegativeAmount
		}
		next.State.Rzeon = clamp(next.State.Rzeon-a.Amount, 0, next.State.Zeon)
	case ActionAddZeon:
		if a.Amount < 0 {
			return Result{}, ErrNegativeAmount
		}
		next.State.Rzeon = clamp(next.State.Rzeon+a.Amount, 0, next.State.Zeon)
	case ActionAddAccumulated:
		if a.Amount < 0 {
			return Result{}, ErrNegativeAmount
		}
		if a.Bucket == BucketNormal || a.Bucket == "" {
			next.State.Zeona += a.Amount
		} else {
			next.State.Zeonp += a.Amount
		}
	case ActionCast:
		var created []MaintainedEntry
		next, created = cast(next)
		for i := range created {
			effects = append(effects, Effect{Kind: EffectCreateMaintained, Maintained: &created[i]})
		}
		effects = append(effects, Effect{Kind: EffectClearReadyToCast})
	case ActionClearReadyToCast:
		next.ReadyToCast = next.ReadyToCast[:0]
		effects = append(effects, Effect{Kind: EffectClearReadyToCast})
	case ActionClearMaintained:
		next.Maintained = next.Maintained[:0]
		effects = append(effects, Effect{Kind: EffectClearMaintained})
	case ActionUpdateCharacteristics:
		st, err := updateCharacteristics(next.State, a.Characteristics)
		if err != nil {
			return Result{}, err
		}
		next.State = st
	case ActionRecompute:
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAction, a.Kind)
	}

	next = Recompute(next)
	effects = append(effects, Effect{Kind: EffectSaveState})
	return Result{Snapshot: next, Effects: effects}, nil
}

// Recompute 根据两个队列重新计算缓存字段
func Recompute(s Snapshot) Snapshot {
	s.State.ZeonToSpend = ZeonToSpend(s.ReadyToCast)
	s.State.MantainZeonToSpend = MaintainCost(s.Maintained)
	return s
}

// ZeonToSpend 待施放队列的总消耗
func ZeonToSpend(entries []ReadyEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.SpellZeon
	}
	return total
}

// MaintainCost 维持法术的每回合总消耗
func MaintainCost(entries []MaintainedEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.SpellMantain
	}
	return total
}

func nextTurn(s State) State {
	s.TurnNumber++
	if s.Acu && s.Act > 0 {
		s.Zeona += s.Act
	}
	// 只保证不为负，不与上限比较
	s.Rzeon = max64(s.Rzeon-s.MantainZeonToSpend, 0)
	return s
}

func previousTurn(s State) (State, error) {
	if s.TurnNumber <= 0 {
		return s, ErrNoPreviousTurn
	}
	s.TurnNumber--
	if s.Acu && s.Act > 0 {
		s.Zeona = max64(s.Zeona-s.Act, 0)
	}
	s.Rzeon = min64(s.Rzeon+s.MantainZeonToSpend, s.Zeon)
	return s, nil
}

func newDay(s State) State {
	s.Rzeon = min64(s.Rzeon+s.Rzeoni, s.Zeon)
	return s
}

// cast 结算待施放队列，返回新快照和新增的维持条目
func cast(s Snapshot) (Snapshot, []MaintainedEntry) {
	var created []MaintainedEntry
	for _, r := range s.ReadyToCast {
		if !r.SpellMantainTurn {
			continue
		}
		idx := int64(len(s.Maintained))
		m := MaintainedEntry{
			SpellID:      r.SpellID,
			SpellName:    r.SpellName,
			SpellMantain: r.SpellMantain,
			SpellIndex:   &idx,
		}
		s.Maintained = append(s.Maintained, m)
		created = append(created, m)
	}

	st := s.State
	surplus := st.Zeona - ZeonToSpend(s.ReadyToCast)
	if surplus >= CastThreshold {
		st.Rzeon += surplus - CastThreshold
		st.Zeonp += CastThreshold
	} else {
		st.Rzeon += max64(surplus, 0)
	}
	st.Zeona = 0
	st.Rzeon = clamp(st.Rzeon, 0, st.Zeon)

	s.State = st
	s.ReadyToCast = s.ReadyToCast[:0]
	return s, created
}

func updateCharacteristics(s State, c *Characteristics) (State, error) {
	if c == nil {
		return s, nil
	}
	for _, v := range []*int64{c.Zeon, c.Rzeon, c.Rzeoni, c.Act, c.LockState} {
		if v != nil && *v < 0 {
			return s, ErrNegativeAmount
		}
	}
	if c.Zeon != nil {
		s.Zeon = *c.Zeon
	}
	if c.Rzeon != nil {
		s.Rzeon = *c.Rzeon
	}
	if c.Rzeoni != nil {
		s.Rzeoni = *c.Rzeoni
	}
	if c.Act != nil {
		s.Act = *c.Act
	}
	if c.Acu != nil {
		s.Acu = *c.Acu
	}
	if c.LockState != nil {
		s.LockState = *c.LockState
	}
	s.Rzeon = clamp(s.Rzeon, 0, s.Zeon)
	return s, nil
}

func clamp(v, lo, hi int64) int64 {
	if hi < lo {
		hi = lo
	}
	return min64(max64(v, lo), hi)
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
