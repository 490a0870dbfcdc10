package handlers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/mentordesk/mentordesk/db"
	"github.com/mentordesk/mentordesk/internal/models"
	"github.com/mentordesk/mentordesk/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignMentor_UnknownEmail(t *testing.T) {
	r := setupTest(t)
	_, token := createTestUser(t, "mentee@example.com", false)

	w := doRequest(t, r, http.MethodPost, "/api/mentors/nobody@example.com", token, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Mentor not found")
}

func TestAssignMentor_Success(t *testing.T) {
	r := setupTest(t)
	mentee, token := createTestUser(t, "mentee@example.com", false)
	mentor, _ := createTestUser(t, "m@example.com", false)

	w := doRequest(t, r, http.MethodPost, "/api/mentors/m@example.com", token, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.MentorResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, mentee.ID, resp.MenteeID)
	assert.Equal(t, mentor.ID, resp.MentorID)
	assert.Equal(t, "m@example.com", resp.MentorEmail)
}

func TestAssignMentor_Duplicate(t *testing.T) {
	r := setupTest(t)
	_, token := createTestUser(t, "mentee@example.com", false)
	createTestUser(t, "m@example.com", false)

	w := doRequest(t, r, http.MethodPost, "/api/mentors/m@example.com", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/mentors/m@example.com", token, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Mentor already assigned")

	var count int64
	require.NoError(t, db.DB.Model(&models.Mentor{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteMentor_NotFound(t *testing.T) {
	r := setupTest(t)
	_, token := createTestUser(t, "mentee@example.com", false)

	w := doRequest(t, r, http.MethodDelete, "/api/mentors/"+uuid.NewString(), token, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteMentor_RemovesOnlyThatEdge(t *testing.T) {
	r := setupTest(t)
	_, token := createTestUser(t, "mentee@example.com", false)
	first, _ := createTestUser(t, "first@example.com", false)
	second, _ := createTestUser(t, "second@example.com", false)

	require.Equal(t, http.StatusOK, doRequest(t, r, http.MethodPost, "/api/mentors/first@example.com", token, nil).Code)
	require.Equal(t, http.StatusOK, doRequest(t, r, http.MethodPost, "/api/mentors/second@example.com", token, nil).Code)

	w := doRequest(t, r, http.MethodDelete, "/api/mentors/"+first.ID.String(), token, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mentor deleted successfully")

	var remaining []models.Mentor
	require.NoError(t, db.DB.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, second.ID, remaining[0].MentorID)
}

// The mentor-id path parameter refers to the mentor user, not the edge
// row, so a different mentee cannot delete someone else's edge.
func TestDeleteMentor_ScopedToCaller(t *testing.T) {
	r := setupTest(t)
	_, menteeToken := createTestUser(t, "mentee@example.com", false)
	mentor, _ := createTestUser(t, "m@example.com", false)
	_, otherToken := createTestUser(t, "other@example.com", false)

	require.Equal(t, http.StatusOK, doRequest(t, r, http.MethodPost, "/api/mentors/m@example.com", menteeToken, nil).Code)

	w := doRequest(t, r, http.MethodDelete, "/api/mentors/"+mentor.ID.String(), otherToken, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, db.DB.Model(&models.Mentor{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestListMentors_Empty(t *testing.T) {
	r := setupTest(t)
	_, token := createTestUser(t, "mentee@example.com", false)

	w := doRequest(t, r, http.MethodGet, "/api/mentors", token, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []types.MentorResponse
	decodeBody(t, w, &resp)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestListMentors_OnlyCallersEdges(t *testing.T) {
	r := setupTest(t)
	_, menteeToken := createTestUser(t, "mentee@example.com", false)
	mentor, _ := createTestUser(t, "m@example.com", false)
	_, otherToken := createTestUser(t, "other@example.com", false)

	require.Equal(t, http.StatusOK, doRequest(t, r, http.MethodPost, "/api/mentors/m@example.com", menteeToken, nil).Code)
	require.Equal(t, http.StatusOK, doRequest(t, r, http.MethodPost, "/api/mentors/mentee@example.com", otherToken, nil).Code)

	w := doRequest(t, r, http.MethodGet, "/api/mentors", menteeToken, nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []types.MentorResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp, 1)
	assert.Equal(t, mentor.ID, resp[0].MentorID)
	assert.Equal(t, "m@example.com", resp[0].MentorEmail)
}

func TestAssignMentor_RequiresAuth(t *testing.T) {
	r := setupTest(t)

	w := doRequest(t, r, http.MethodPost, "/api/mentors/m@example.com", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
