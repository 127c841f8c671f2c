// Package factrepo persists the append-only fact log.
// Each row stores one fact as a JSON payload next to its stable wire name;
// the autoincrement sequence preserves the order facts were produced in.
package factrepo

import (
	"time"

	"github.com/google/uuid"
)

// FactDTO represents one row of the fact log.
type FactDTO struct {
	Seq         int64     `gorm:"primaryKey;autoIncrement"`
	AggregateID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(64);not null"`
	Payload     string    `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for fact log rows.
// Overrides GORM's default naming convention to use "facts".
func (FactDTO) TableName() string {
	return "facts"
}
