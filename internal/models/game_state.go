package models

// GameState 角色的战斗资源状态，每个角色一行
type GameState struct {
	BaseModel
	UserProfileID      uint  `gorm:"column:user_profile_id;uniqueIndex;not null" json:"user_profile_id"`
	TurnNumber         int64 `gorm:"column:turn_number;not null;default:0" json:"turn_number"`
	Zeon               int64 `gorm:"column:zeon;not null;default:0" json:"zeon"`
	Rzeon              int64 `gorm:"column:rzeon;not null;default:0" json:"rzeon"`
	Zeona              int64 `gorm:"column:zeona;not null;default:0" json:"zeona"`
	Act                int64 `gorm:"column:act;not null;default:0" json:"act"`
	Rzeoni             int64 `gorm:"column:rzeoni;not null;default:0" json:"rzeoni"`
	Zeonp              int64 `gorm:"column:zeonp;not null;default:0" json:"zeonp"`
	Acu                bool  `gorm:"column:acu;not null;default:false" json:"acu"`
	LockState          int64 `gorm:"column:lock_state;not null;default:0" json:"lock_state"`
	ZeonToSpend        int64 `gorm:"column:zeon_to_spend;not null;default:0" json:"zeon_to_spend"`
	MantainZeonToSpend int64 `gorm:"column:mantain_zeon_to_spend;not null;default:0" json:"mantain_zeon_to_spend"`
}

// TableName 指定表名
func (GameState) TableName() string {
	return "game_state"
}

// GameStatePatch 部分更新，nil 字段保持原值
type GameStatePatch struct {
	TurnNumber         *int64 `json:"turn_number,omitempty"`
	Zeon               *int64 `json:"zeon,omitempty"`
	Rzeon              *int64 `json:"rzeon,omitempty"`
	Zeona              *int64 `json:"zeona,omitempty"`
	Act                *int64 `json:"act,omitempty"`
	Rzeoni             *int64 `json:"rzeoni,omitempty"`
	Zeonp              *int64 `json:"zeonp,omitempty"`
	Acu                *bool  `json:"acu,omitempty"`
	LockState          *int64 `json:"lock_state,omitempty"`
	ZeonToSpend        *int64 `json:"zeon_to_spend,omitempty"`
	MantainZeonToSpend *int64 `json:"mantain_zeon_to_spend,omitempty"`
}

// Columns 转换为需要更新的列
func (p GameStatePatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	setInt := func(name string, v *int64) {
		if v != nil {
			cols[name] = *v
		}
	}
	setInt("turn_number", p.TurnNumber)
	setInt("zeon", p.Zeon)
	setInt("rzeon", p.Rzeon)
	setInt("zeona", p.Zeona)
	setInt("act", p.Act)
	setInt("rzeoni", p.Rzeoni)
	setInt("zeonp", p.Zeonp)
	setInt("lock_state", p.LockState)
	setInt("zeon_to_spend", p.ZeonToSpend)
	setInt("mantain_zeon_to_spend", p.MantainZeonToSpend)
	if p.Acu != nil {
		cols["acu"] = *p.Acu
	}
	return cols
}

// Apply 将补丁合并到状态上
func (p GameStatePatch) Apply(gs *GameState) {
	merge := func(dst *int64, v *int64) {
		if v != nil {
			*dst = *v
		}
	}
	merge(&gs.TurnNumber, p.TurnNumber)
	merge(&gs.Zeon, p.Zeon)
	merge(&gs.Rzeon, p.Rzeon)
	merge(&gs.Zeona, p.Zeona)
	merge(&gs.Act, p.Act)
	merge(&gs.Rzeoni, p.Rzeoni)
	merge(&gs.Zeonp, p.Zeonp)
	merge(&gs.LockState, p.LockState)
	merge(&gs.ZeonToSpend, p.ZeonToSpend)
	merge(&gs.MantainZeonToSpend, p.MantainZeonToSpend)
	if p.Acu != nil {
		gs.Acu = *p.Acu
	}
}
