package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mentordesk/mentordesk/db"
	"github.com/mentordesk/mentordesk/internal/authz"
	"github.com/mentordesk/mentordesk/internal/crud"
	"github.com/mentordesk/mentordesk/internal/models"
	"github.com/mentordesk/mentordesk/internal/types"
	"github.com/mentordesk/mentordesk/internal/utils"
	"gorm.io/gorm"
)

type CreateQuestionnaireRequest struct {
	Question         string     `json:"question" binding:"required"`
	Answer           *bool      `json:"answer"`
	WrittenAnswer    string     `json:"written_answer"`
	NotificationDate *time.Time `json:"notification_date"`
}

func questionnaireResponse(questionnaire *models.Questionnaire) types.QuestionnaireResponse {
	return types.QuestionnaireResponse{
		ID:               questionnaire.ID,
		Question:         questionnaire.Question,
		Answer:           questionnaire.Answer,
		WrittenAnswer:    questionnaire.WrittenAnswer,
		NotificationDate: questionnaire.NotificationDate,
		UserID:           questionnaire.UserID,
	}
}

func questionnaireListResponse(questionnaires []models.Questionnaire) []types.QuestionnaireResponse {
	response := make([]types.QuestionnaireResponse, 0, len(questionnaires))

	for i := range questionnaires {
		response = append(response, questionnaireResponse(&questionnaires[i]))
	}

	return response
}

func CreateQuestionnaire(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateQuestionnaireRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	questionnaire, err := crud.CreateQuestionnaire(db.DB, currentUser.ID, crud.CreateQuestionnaireParams{
		Question:         body.Question,
		Answer:           body.Answer,
		WrittenAnswer:    body.WrittenAnswer,
		NotificationDate: body.NotificationDate,
	})

	if err != nil {
		log.Printf("Failed to create questionnaire: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, questionnaireResponse(questionnaire))
}

// DeleteQuestionnaire is owner-only. Mentors and superusers can read a
// mentee's questionnaires but never remove them.
func DeleteQuestionnaire(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	questionnaireID, err := uuid.Parse(ctx.Param("questionnaire_id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid questionnaire ID"})
		return
	}

	questionnaire, err := crud.GetQuestionnaireByID(db.DB, questionnaireID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Questionnaire not found"})
		} else {
			log.Printf("Database error when fetching questionnaire: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	caller := authz.Caller{ID: currentUser.ID, IsSuperuser: currentUser.IsSuperuser}

	if !authz.CanDeleteQuestionnaire(caller, questionnaire.UserID) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
		return
	}

	if err := crud.DeleteQuestionnaire(db.DB, questionnaire); err != nil {
		log.Printf("Failed to delete questionnaire: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Questionnaire deleted successfully"})
}

func ListQuestionnaires(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	questionnaires, err := crud.ListQuestionnairesByUser(db.DB, currentUser.ID)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve questionnaires"})
		return
	}

	ctx.JSON(http.StatusOK, questionnaireListResponse(questionnaires))
}

// ListQuestionnairesForUser reads another user's questionnaires under the
// three-tier policy: self and superusers see everything, a mentor of the
// target gets read access, everyone else is denied.
func ListQuestionnairesForUser(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	targetID, err := uuid.Parse(ctx.Param("user_id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if _, err := crud.GetUserByID(db.DB, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("Database error when fetching user: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	mentorOfTarget, err := crud.HasMentorEdge(db.DB, targetID, currentUser.ID)

	if err != nil {
		log.Printf("Database error when checking mentor edge: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	caller := authz.Caller{ID: currentUser.ID, IsSuperuser: currentUser.IsSuperuser}

	if !authz.QuestionnaireAccess(caller, targetID, mentorOfTarget).CanRead() {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
		return
	}

	questionnaires, err := crud.ListQuestionnairesByUser(db.DB, targetID)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve questionnaires"})
		return
	}

	ctx.JSON(http.StatusOK, questionnaireListResponse(questionnaires))
}
