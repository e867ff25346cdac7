package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/planvault/logutils"
	"github.com/planvault/repositories"
)

// PermissionService decides whether an actor may view or mutate a project's
// records. Nothing here is cached: a flipped edit flag or role change is
// effective on the next call.
type PermissionService struct {
	membershipRepo *repositories.MembershipRepository
	userRepo       *repositories.UserRepository
}

// NewPermissionService creates a new permission service instance
func NewPermissionService() *PermissionService {
	return &PermissionService{
		membershipRepo: repositories.NewMembershipRepository(),
		userRepo:       repositories.NewUserRepository(),
	}
}

// CanView reports whether the actor holds a membership in the project.
// Anonymous actors can view nothing.
func (s *PermissionService) CanView(userID, projectID string) bool {
	if userID == "" {
		return false
	}
	exists, err := s.membershipRepo.Exists(projectID, userID)
	if err != nil {
		logutils.Log.WithError(err).Error("membership lookup failed")
		return false
	}
	return exists
}

// CanEdit reports whether the actor may mutate the project's records.
//
// The rules, in order: an anonymous actor may never edit; without a
// membership there is no edit right regardless of global role; an explicit
// per-project edit flag (true or false) always wins; only when the membership
// leaves the flag unset does the actor's global profile role decide, with a
// missing profile counting as viewer.
func (s *PermissionService) CanEdit(userID, projectID string) bool {
	if userID == "" {
		return false
	}
	membership, err := s.membershipRepo.FindByProjectAndUser(projectID, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logutils.Log.WithError(err).Error("membership lookup failed")
		}
		return false
	}
	if membership.CanEdit != nil {
		return *membership.CanEdit
	}
	profile, err := s.userRepo.FindProfile(userID)
	if err != nil {
		return false
	}
	return profile.IsEditor()
}
