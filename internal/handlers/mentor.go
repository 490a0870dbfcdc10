package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mentordesk/mentordesk/db"
	"github.com/mentordesk/mentordesk/internal/crud"
	"github.com/mentordesk/mentordesk/internal/models"
	"github.com/mentordesk/mentordesk/internal/types"
	"github.com/mentordesk/mentordesk/internal/utils"
	"gorm.io/gorm"
)

func mentorResponse(mentor *models.Mentor) types.MentorResponse {
	return types.MentorResponse{
		ID:          mentor.ID,
		MenteeID:    mentor.MenteeID,
		MentorID:    mentor.MentorID,
		MentorEmail: mentor.MentorEmail,
		CreatedAt:   mentor.CreatedAt,
	}
}

// AssignMentor links the calling user (as mentee) to the user whose email
// is in the path, snapshotting that email on the edge.
func AssignMentor(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	mentorEmail := ctx.Param("mentor_email")

	potentialMentor, err := crud.GetUserByEmail(db.DB, mentorEmail)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Mentor not found"})
		} else {
			log.Printf("Database error when resolving mentor email: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	exists, err := crud.HasMentorEdge(db.DB, currentUser.ID, potentialMentor.ID)

	if err != nil {
		log.Printf("Database error when checking mentor edge: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if exists {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Mentor already assigned"})
		return
	}

	mentor, err := crud.CreateMentor(db.DB, currentUser.ID, potentialMentor.ID, mentorEmail)

	if err != nil {
		// The unique index over (mentee_id, mentor_id) catches the insert
		// that slips past the pre-check when two assignments race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Mentor already assigned"})
			return
		}
		log.Printf("Failed to create mentor: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, mentorResponse(mentor))
}

// DeleteMentor removes the edge matching (caller as mentee, mentor user in
// the path), mirroring the assignment lookup.
func DeleteMentor(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	mentorID, err := uuid.Parse(ctx.Param("mentor_id"))

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mentor ID"})
		return
	}

	mentor, err := crud.GetMentorEdge(db.DB, currentUser.ID, mentorID)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Mentor not found"})
		} else {
			log.Printf("Database error when fetching mentor edge: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if err := crud.DeleteMentor(db.DB, mentor); err != nil {
		log.Printf("Failed to delete mentor: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Mentor deleted successfully"})
}

func ListMentors(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	mentors, err := crud.ListMentorsByMentee(db.DB, currentUser.ID)

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve mentors"})
		return
	}

	response := make([]types.MentorResponse, 0, len(mentors))

	for i := range mentors {
		response = append(response, mentorResponse(&mentors[i]))
	}

	ctx.JSON(http.StatusOK, response)
}
