package models

import (
	"time"

	"github.com/google/uuid"
)

type Questionnaire struct {
	BaseModel

	Question         string `gorm:"not null"`
	Answer           *bool
	WrittenAnswer    string
	NotificationDate *time.Time
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
