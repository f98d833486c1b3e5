// models/devotional.go
package models

import (
	"time"
)

// Devotional is a short devotional text: a verse reference plus commentary.
// Records are never hard-deleted; DeletedAt marks a row as logically absent.
type Devotional struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Verse     string     `json:"verse" gorm:"not null;type:text"`
	Content   string     `json:"content" gorm:"not null;type:text"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" gorm:"autoUpdateTime:false"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// DeletedAt is a plain nullable column, not gorm.DeletedAt: every store
// query spells out the deleted_at IS NULL predicate itself, and delete is a
// conditional UPDATE whose RowsAffected the caller inspects.

func (Devotional) TableName() string {
	return "devotionals"
}
