package types

import (
  "time"
  "gorm.io/gorm"
  "gorm.io/datatypes"
  "github.com/google/uuid"
)

// Trip owns its checklist as an embedded jsonb document. The owner is set
// at creation time and never reassigned.
type Trip struct {
  gorm.Model
  ID            uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
  UserID        uuid.UUID       `gorm:"index;not null;column:user_id" json:"user_id"`
  User          *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
  Destination   string          `gorm:"not null;column:destination" json:"destination"`
  Purpose       string          `gorm:"column:purpose" json:"purpose"`
  DateRange     string          `gorm:"column:date_range" json:"date_range"`
  Checklist     datatypes.JSON  `gorm:"type:jsonb;column:checklist" json:"checklist"`
  CreatedAt     time.Time       `gorm:"not null;default:now()" json:"created_at"`
  UpdatedAt     time.Time       `gorm:"not null;default:now()" json:"updated_at"`
}

func (Trip) TableName() string {
  return "trip"
}
