package nomis

import (
	"log/slog"

	"github.com/frahmantamala/user-admin/internal/user"
)

// RepositoryAPI is the staff-account lookup port. A miss is (nil, nil).
type RepositoryAPI interface {
	FindByUsername(username string) (*StaffUserAccount, error)
}

// Service adapts the staff-account store to the identity resolution
// fallback used by the user service.
type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

var _ user.StaffRepositoryAPI = (*Service)(nil)

// FindByUsername returns the staff account keyed by the already-normalized
// username, or (nil, nil) when the external system has no such account.
func (s *Service) FindByUsername(username string) (user.UserPersonDetails, error) {
	account, err := s.repo.FindByUsername(username)
	if err != nil {
		s.logger.Error("staff account lookup failed", "error", err, "username", username)
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	return account, nil
}
