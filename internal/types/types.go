package types

import (
	"time"

	"github.com/google/uuid"
)

const ContextUserKey = "user"

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	IsActive    bool      `json:"is_active"`
	IsSuperuser bool      `json:"is_superuser"`
}

type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
}

type MentorResponse struct {
	ID          uuid.UUID `json:"id"`
	MenteeID    uuid.UUID `json:"mentee_id"`
	MentorID    uuid.UUID `json:"mentor_id"`
	MentorEmail string    `json:"mentor_email"`
	CreatedAt   time.Time `json:"created_at"`
}

type QuestionnaireResponse struct {
	ID               uuid.UUID  `json:"id"`
	Question         string     `json:"question"`
	Answer           *bool      `json:"answer"`
	WrittenAnswer    string     `json:"written_answer"`
	NotificationDate *time.Time `json:"notification_date"`
	UserID           uuid.UUID  `json:"user_id"`
}
