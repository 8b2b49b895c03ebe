package models

import (
	"time"
)

// Spell 法术书条目
type Spell struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	UserProfileID        uint      `gorm:"column:user_profile_id;index;index:idx_spells_profile_created,priority:1;not null" json:"user_profile_id"`
	SpellName            string    `gorm:"size:100;not null" json:"spell_name"`
	SpellBase            int64     `gorm:"not null;default:0" json:"spell_base"`
	SpellInter           int64     `gorm:"not null;default:0" json:"spell_inter"`
	SpellAdvanced        int64     `gorm:"not null;default:0" json:"spell_advanced"`
	SpellArcane          int64     `gorm:"not null;default:0" json:"spell_arcane"`
	SpellBaseMantain     int64     `gorm:"not null;default:0" json:"spell_base_mantain"`
	SpellInterMantain    int64     `gorm:"not null;default:0" json:"spell_inter_mantain"`
	SpellAdvancedMantain int64     `gorm:"not null;default:0" json:"spell_advanced_mantain"`
	SpellArcaneMantain   int64     `gorm:"not null;default:0" json:"spell_arcane_mantain"`
	SpellVia             *string   `gorm:"size:50" json:"spell_via"`
	CreatedAt            time.Time `gorm:"index:idx_spells_profile_created,priority:2" json:"created_at"`
}

// TableName 指定表名
func (Spell) TableName() string {
	return "spells"
}

// ReadyToCast 待施放队列条目
type ReadyToCast struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserProfileID    uint      `gorm:"column:user_profile_id;index;index:idx_ready_profile_created,priority:1;not null" json:"user_profile_id"`
	SpellID          *uint     `json:"spell_id"`
	SpellName        string    `gorm:"size:100;not null" json:"spell_name"`
	SpellZeon        int64     `gorm:"not null;default:0" json:"spell_zeon"`
	SpellMantain     int64     `gorm:"not null;default:0" json:"spell_mantain"`
	SpellMantainTurn bool      `gorm:"not null;default:false" json:"spell_mantain_turn"`
	SpellIndex       *int64    `json:"spell_index"`
	CreatedAt        time.Time `gorm:"index:idx_ready_profile_created,priority:2" json:"created_at"`
}

// TableName 指定表名
func (ReadyToCast) TableName() string {
	return "ready_to_cast"
}

// SpellMaintain 维持中的法术
type SpellMaintain struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserProfileID uint      `gorm:"column:user_profile_id;index;index:idx_mantain_profile_created,priority:1;not null" json:"user_profile_id"`
	SpellID       *uint     `json:"spell_id"`
	SpellName     string    `gorm:"size:100;not null" json:"spell_name"`
	SpellMantain  int64     `gorm:"not null;default:0" json:"spell_mantain"`
	SpellIndex    *int64    `json:"spell_index"`
	CreatedAt     time.Time `gorm:"index:idx_mantain_profile_created,priority:2" json:"created_at"`
}

// TableName 指定表名
func (SpellMaintain) TableName() string {
	return "spell_mantain_list"
}

// All 返回需要迁移的全部模型
func All() []interface{} {
	return []interface{}{
		&User{},
		&Profile{},
		&GameState{},
		&Spell{},
		&ReadyToCast{},
		&SpellMaintain{},
	}
}
