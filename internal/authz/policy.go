// Package authz holds the access decisions for questionnaires and items,
// kept free of storage lookups so they can be checked in isolation. The
// relation facts a decision depends on (does a mentor edge exist) are
// resolved by the caller and passed in.
package authz

import "github.com/google/uuid"

type Decision int

const (
	Denied Decision = iota
	ReadOnly
	FullAccess
)

// Caller is the subset of the authenticated user a policy decision needs.
type Caller struct {
	ID          uuid.UUID
	IsSuperuser bool
}

// QuestionnaireAccess decides what a caller may do with questionnaires
// owned by ownerID. Owners and superusers get full access; a user holding
// a mentor edge toward the owner may read but never write or delete.
func QuestionnaireAccess(caller Caller, ownerID uuid.UUID, mentorOfOwner bool) Decision {
	if caller.IsSuperuser || caller.ID == ownerID {
		return FullAccess
	}
	if mentorOfOwner {
		return ReadOnly
	}
	return Denied
}

// CanDeleteQuestionnaire is stricter than FullAccess: only the owner may
// delete, superusers and mentors are refused alike.
func CanDeleteQuestionnaire(caller Caller, ownerID uuid.UUID) bool {
	return caller.ID == ownerID
}

// CanManageItem grants item read/update/delete to the owner or a superuser.
func CanManageItem(caller Caller, ownerID uuid.UUID) bool {
	return caller.IsSuperuser || caller.ID == ownerID
}

// CanReadUser grants profile reads to the user themselves or a superuser.
func CanReadUser(caller Caller, userID uuid.UUID) bool {
	return caller.IsSuperuser || caller.ID == userID
}

func (d Decision) CanRead() bool {
	return d != Denied
}

func (d Decision) String() string {
	switch d {
	case ReadOnly:
		return "read-only"
	case FullAccess:
		return "full-access"
	default:
		return "denied"
	}
}
