package user

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/frahmantamala/user-admin/internal/core/events"
	"github.com/frahmantamala/user-admin/internal/telemetry"
)

// RepositoryAPI is the native auth-user store contract.
//
// FindByUsernameAndMasterIsTrue returns (nil, nil) when no master record
// exists. FindByUsername reports a miss as *NotFoundError so callers that
// expect a previously confirmed identity see the store's own sentinel.
type RepositoryAPI interface {
	FindByUsernameAndMasterIsTrue(username string) (*AuthUser, error)
	FindByUsername(username string) (*AuthUser, error)
	FindByEmailAndMasterIsTrueOrderByUsername(email string) ([]*AuthUser, error)
	Save(u *AuthUser) error
}

// StaffRepositoryAPI is the external NOMIS staff-account store contract.
// A miss is (nil, nil); staff accounts are read-only here.
type StaffRepositoryAPI interface {
	FindByUsername(username string) (UserPersonDetails, error)
}

// MaintainCheck vetoes administrative operations the acting administrator
// is not scoped to perform.
type MaintainCheck interface {
	EnsureUserLoggedInUserRelationship(adminUsername string, adminAuthorities []string, target *AuthUser) error
}

// Service resolves usernames and emails to identities across the native
// and NOMIS stores and applies administrative enable/disable operations.
type Service struct {
	repo          RepositoryAPI
	staffRepo     StaffRepositoryAPI
	maintainCheck MaintainCheck
	telemetry     telemetry.Client
	logger        *slog.Logger
}

func NewService(repo RepositoryAPI, staffRepo StaffRepositoryAPI, maintainCheck MaintainCheck, telemetryClient telemetry.Client, logger *slog.Logger) *Service {
	return &Service{
		repo:          repo,
		staffRepo:     staffRepo,
		maintainCheck: maintainCheck,
		telemetry:     telemetryClient,
		logger:        logger,
	}
}

// FindUser resolves a username to a concrete identity. The native store
// takes precedence; the NOMIS store is only consulted when no master auth
// user exists for the normalized key. The ordering is a contract, not an
// optimization.
func (s *Service) FindUser(usernameOrEmail string) (UserPersonDetails, error) {
	username := NormalizeUsername(usernameOrEmail)

	authUser, err := s.repo.FindByUsernameAndMasterIsTrue(username)
	if err != nil {
		return nil, err
	}
	if authUser != nil {
		return authUser, nil
	}

	staff, err := s.staffRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if staff != nil {
		return staff, nil
	}

	return nil, &NotFoundError{Username: username}
}

// FindAuthUsersByEmail returns all master auth users registered with the
// given email address, ordered by username. Never returns a nil slice.
func (s *Service) FindAuthUsersByEmail(email string) ([]*AuthUser, error) {
	users, err := s.repo.FindByEmailAndMasterIsTrueOrderByUsername(NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []*AuthUser{}
	}
	return users, nil
}

// FindAuthUser looks up a native record by exact username without the
// master filter and without falling back to the NOMIS store. The store
// result, including its not-found sentinel, is passed through unchanged.
func (s *Service) FindAuthUser(username string) (*AuthUser, error) {
	return s.repo.FindByUsername(NormalizeUsername(username))
}

// EnableUser turns a master auth user's account on. Only holders of a
// maintain role may do so, and group managers only within their groups.
func (s *Service) EnableUser(ctx context.Context, username, adminUsername string, adminAuthorities []string) error {
	return s.changeEnabled(ctx, username, adminUsername, adminAuthorities, true)
}

// DisableUser turns a master auth user's account off. Accounts are never
// hard-deleted; disabling is the retirement path.
func (s *Service) DisableUser(ctx context.Context, username, adminUsername string, adminAuthorities []string) error {
	return s.changeEnabled(ctx, username, adminUsername, adminAuthorities, false)
}

func (s *Service) changeEnabled(ctx context.Context, username, adminUsername string, adminAuthorities []string, enabled bool) error {
	authUser, err := s.repo.FindByUsernameAndMasterIsTrue(NormalizeUsername(username))
	if err != nil {
		return err
	}
	if authUser == nil {
		return &NotFoundError{Username: username}
	}

	if err := s.maintainCheck.EnsureUserLoggedInUserRelationship(adminUsername, adminAuthorities, authUser); err != nil {
		return err
	}

	authUser.Enabled = enabled
	if err := s.repo.Save(authUser); err != nil {
		s.logger.Error("failed to persist enabled change", "error", err, "username", username)
		return err
	}

	s.logger.Info("auth user enabled state changed",
		"username", username,
		"admin", adminUsername,
		"enabled", enabled)

	s.telemetry.TrackEvent(ctx, events.EventTypeAuthUserChangeEnabled, map[string]string{
		"username": username,
		"admin":    adminUsername,
		"enabled":  strconv.FormatBool(enabled),
	}, nil)

	return nil
}
