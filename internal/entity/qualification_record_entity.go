package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QualificationRecord persists a completed qualification for support
// follow-up: which concerns the customer stated and what was recommended.
type QualificationRecord struct {
	Id                uuid.UUID      `gorm:"primaryKey;type:uuid"`
	SessionId         string         `gorm:"type:varchar(128);index"`
	Category          string         `gorm:"type:varchar(32)"`
	Language          string         `gorm:"type:varchar(8)"`
	Contraindications datatypes.JSON `gorm:"type:jsonb"`
	RequiredTags      datatypes.JSON `gorm:"type:jsonb"`
	DesiredTags       datatypes.JSON `gorm:"type:jsonb"`
	RecommendedIds    datatypes.JSON `gorm:"type:jsonb"`
	CompletedAt       time.Time
	CreatedAt         time.Time
}

func (QualificationRecord) TableName() string {
	return "qualification_records"
}
