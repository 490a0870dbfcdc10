package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestQuestionnaireAccess(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name          string
		caller        Caller
		mentorOfOwner bool
		want          Decision
	}{
		{"owner", Caller{ID: owner}, false, FullAccess},
		{"superuser", Caller{ID: stranger, IsSuperuser: true}, false, FullAccess},
		{"mentor", Caller{ID: stranger}, true, ReadOnly},
		{"stranger", Caller{ID: stranger}, false, Denied},
		// A superuser who also holds a mentor edge is still full access.
		{"superuser mentor", Caller{ID: stranger, IsSuperuser: true}, true, FullAccess},
		// Owner wins regardless of any self-referential edge.
		{"owner with edge", Caller{ID: owner}, true, FullAccess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuestionnaireAccess(tt.caller, owner, tt.mentorOfOwner)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecisionCanRead(t *testing.T) {
	t.Parallel()

	assert.False(t, Denied.CanRead())
	assert.True(t, ReadOnly.CanRead())
	assert.True(t, FullAccess.CanRead())
}

func TestCanDeleteQuestionnaire(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	assert.True(t, CanDeleteQuestionnaire(Caller{ID: owner}, owner))
	assert.False(t, CanDeleteQuestionnaire(Caller{ID: uuid.New()}, owner))
	// Deliberately stricter than FullAccess: superusers may read, not delete.
	assert.False(t, CanDeleteQuestionnaire(Caller{ID: uuid.New(), IsSuperuser: true}, owner))
}

func TestCanManageItem(t *testing.T) {
	t.Parallel()

	owner := uuid.New()

	assert.True(t, CanManageItem(Caller{ID: owner}, owner))
	assert.True(t, CanManageItem(Caller{ID: uuid.New(), IsSuperuser: true}, owner))
	assert.False(t, CanManageItem(Caller{ID: uuid.New()}, owner))
}

func TestCanReadUser(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	assert.True(t, CanReadUser(Caller{ID: userID}, userID))
	assert.True(t, CanReadUser(Caller{ID: uuid.New(), IsSuperuser: true}, userID))
	assert.False(t, CanReadUser(Caller{ID: uuid.New()}, userID))
}
