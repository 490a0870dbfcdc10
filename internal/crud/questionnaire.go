package crud

import (
	"time"

	"github.com/google/uuid"
	"github.com/mentordesk/mentordesk/internal/models"
	"gorm.io/gorm"
)

type CreateQuestionnaireParams struct {
	Question         string
	Answer           *bool
	WrittenAnswer    string
	NotificationDate *time.Time
}

func CreateQuestionnaire(db *gorm.DB, userID uuid.UUID, params CreateQuestionnaireParams) (*models.Questionnaire, error) {
	questionnaire := models.Questionnaire{
		Question:         params.Question,
		Answer:           params.Answer,
		WrittenAnswer:    params.WrittenAnswer,
		NotificationDate: params.NotificationDate,
		UserID:           userID,
	}

	if err := db.Create(&questionnaire).Error; err != nil {
		return nil, err
	}

	return &questionnaire, nil
}

func GetQuestionnaireByID(db *gorm.DB, id uuid.UUID) (*models.Questionnaire, error) {
	var questionnaire models.Questionnaire
	if err := db.Where("id = ?", id).First(&questionnaire).Error; err != nil {
		return nil, err
	}
	return &questionnaire, nil
}

func ListQuestionnairesByUser(db *gorm.DB, userID uuid.UUID) ([]models.Questionnaire, error) {
	var questionnaires []models.Questionnaire
	if err := db.Where("user_id = ?", userID).Find(&questionnaires).Error; err != nil {
		return nil, err
	}
	return questionnaires, nil
}

func DeleteQuestionnaire(db *gorm.DB, questionnaire *models.Questionnaire) error {
	return db.Delete(questionnaire).Error
}
