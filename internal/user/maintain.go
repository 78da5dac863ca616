package user

import (
	"errors"
	"log/slog"
)

// Administrator roles recognised by the maintain check.
const (
	RoleMaintainUsers = "ROLE_MAINTAIN_OAUTH_USERS"
	RoleGroupManager  = "ROLE_AUTH_GROUP_MANAGER"
)

const reasonNotWithGroups = "User not with your groups"

// MaintainUserCheck decides whether an acting administrator may maintain a
// target auth user. Holders of the maintain-users role may manage anyone;
// group managers are confined to users sharing at least one of their own
// groups. Anything else is denied.
type MaintainUserCheck struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewMaintainUserCheck(repo RepositoryAPI, logger *slog.Logger) *MaintainUserCheck {
	return &MaintainUserCheck{repo: repo, logger: logger}
}

func (c *MaintainUserCheck) EnsureUserLoggedInUserRelationship(adminUsername string, adminAuthorities []string, target *AuthUser) error {
	if hasAuthority(adminAuthorities, RoleMaintainUsers) {
		return nil
	}

	if hasAuthority(adminAuthorities, RoleGroupManager) {
		admin, err := c.repo.FindByUsername(NormalizeUsername(adminUsername))
		if err != nil {
			var notFound *NotFoundError
			if errors.As(err, &notFound) {
				// unknown manager record: no groups, so no overlap
				return &GroupRelationshipError{Username: target.Username, Reason: reasonNotWithGroups}
			}
			return err
		}
		if !groupsOverlap(admin.Groups, target.Groups) {
			c.logger.Warn("group manager outside target user groups",
				"admin", adminUsername,
				"username", target.Username)
			return &GroupRelationshipError{Username: target.Username, Reason: reasonNotWithGroups}
		}
		return nil
	}

	// Callers are expected to hold one of the two maintain roles; anyone
	// else is denied rather than silently allowed through.
	c.logger.Warn("maintain attempt without maintain role", "admin", adminUsername, "username", target.Username)
	return &GroupRelationshipError{Username: target.Username, Reason: "Missing maintain user role"}
}

func hasAuthority(authorities []string, role string) bool {
	for _, a := range authorities {
		if a == role {
			return true
		}
	}
	return false
}

func groupsOverlap(adminGroups, targetGroups []Group) bool {
	for _, ag := range adminGroups {
		for _, tg := range targetGroups {
			if ag.Code == tg.Code {
				return true
			}
		}
	}
	return false
}
