package crud

import (
	"github.com/google/uuid"
	"github.com/mentordesk/mentordesk/internal/models"
	"gorm.io/gorm"
)

func CreateMentor(db *gorm.DB, menteeID, mentorID uuid.UUID, mentorEmail string) (*models.Mentor, error) {
	mentor := models.Mentor{
		MenteeID:    menteeID,
		MentorID:    mentorID,
		MentorEmail: mentorEmail,
	}

	if err := db.Create(&mentor).Error; err != nil {
		return nil, err
	}

	return &mentor, nil
}

// GetMentorEdge resolves the edge linking menteeID to mentorID, or
// gorm.ErrRecordNotFound when no such assignment exists.
func GetMentorEdge(db *gorm.DB, menteeID, mentorID uuid.UUID) (*models.Mentor, error) {
	var mentor models.Mentor
	if err := db.Where("mentee_id = ? AND mentor_id = ?", menteeID, mentorID).First(&mentor).Error; err != nil {
		return nil, err
	}
	return &mentor, nil
}

// HasMentorEdge reports whether mentorID is assigned as a mentor of menteeID.
func HasMentorEdge(db *gorm.DB, menteeID, mentorID uuid.UUID) (bool, error) {
	var count int64
	if err := db.Model(&models.Mentor{}).
		Where("mentee_id = ? AND mentor_id = ?", menteeID, mentorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListMentorsByMentee returns the caller's mentor edges in persistence order.
func ListMentorsByMentee(db *gorm.DB, menteeID uuid.UUID) ([]models.Mentor, error) {
	var mentors []models.Mentor
	if err := db.Where("mentee_id = ?", menteeID).Find(&mentors).Error; err != nil {
		return nil, err
	}
	return mentors, nil
}

func DeleteMentor(db *gorm.DB, mentor *models.Mentor) error {
	return db.Delete(mentor).Error
}
