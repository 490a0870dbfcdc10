package models

import "github.com/google/uuid"

// Mentor is a directed edge: MenteeID is mentored by MentorID. The
// composite unique index backs the duplicate-assignment check at the
// storage layer, so two concurrent assignments cannot both land.
type Mentor struct {
	BaseModel

	MenteeID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_mentee_mentor"`
	MentorID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_mentee_mentor"`
	MentorEmail string    // snapshot of the mentor's email at assignment time

	// Relationships
	Mentee User `gorm:"foreignKey:MenteeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Mentor User `gorm:"foreignKey:MentorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
