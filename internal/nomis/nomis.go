package nomis

import (
	"strings"

	nomisDatamodel "github.com/frahmantamala/user-admin/internal/core/datamodel/nomis"
	"github.com/frahmantamala/user-admin/internal/user"
)

const (
	staffStatusActive = "ACTIVE"
	accountStatusOpen = "OPEN"
)

// Staff is the person record behind a NOMIS user account.
type Staff struct {
	StaffID   int64  `json:"staff_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Status    string `json:"status"`
}

func (s Staff) Name() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

func (s Staff) IsActive() bool { return s.Status == staffStatusActive }

// AccountDetail carries the account profile and status of a NOMIS user
// account.
type AccountDetail struct {
	AccountStatus string `json:"account_status"`
	ProfileName   string `json:"profile_name"`
}

// StaffUserAccount is an identity sourced from the external offender
// management system. It is read-only from this service's perspective:
// enable/disable is not defined for this variant.
type StaffUserAccount struct {
	Username      string        `json:"username"`
	Staff         Staff         `json:"staff"`
	AccountDetail AccountDetail `json:"account_detail"`
}

var _ user.UserPersonDetails = (*StaffUserAccount)(nil)

func (a *StaffUserAccount) GetUsername() string { return a.Username }

func (a *StaffUserAccount) GetDisplayName() string {
	if name := a.Staff.Name(); name != "" {
		return name
	}
	return a.Username
}

func (a *StaffUserAccount) IsEnabled() bool {
	return a.Staff.IsActive() && a.AccountDetail.AccountStatus == accountStatusOpen
}

func (a *StaffUserAccount) AuthSource() string { return user.AuthSourceNomis }

func FromDataModel(dm *nomisDatamodel.StaffUserAccount) *StaffUserAccount {
	return &StaffUserAccount{
		Username: dm.Username,
		Staff: Staff{
			StaffID:   dm.Staff.StaffID,
			FirstName: dm.Staff.FirstName,
			LastName:  dm.Staff.LastName,
			Status:    dm.Staff.Status,
		},
		AccountDetail: AccountDetail{
			AccountStatus: dm.AccountDetail.AccountStatus,
			ProfileName:   dm.AccountDetail.ProfileName,
		},
	}
}
