package models

type User struct {
	BaseModel

	Email          string `gorm:"uniqueIndex;not null"`
	HashedPassword string `gorm:"not null"`
	FullName       string
	IsActive       bool `gorm:"default:true"`
	IsSuperuser    bool `gorm:"default:false"`

	// Relationships
	Items          []Item          `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Questionnaires []Questionnaire `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	MenteeEdges    []Mentor        `gorm:"foreignKey:MenteeID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	MentorEdges    []Mentor        `gorm:"foreignKey:MentorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
