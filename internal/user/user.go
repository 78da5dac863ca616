package user

import (
	"time"

	userDatamodel "github.com/frahmantamala/user-admin/internal/core/datamodel/user"
)

// Auth sources identify which backing store mastered an identity.
const (
	AuthSourceAuth  = "auth"
	AuthSourceNomis = "nomis"
)

// UserPersonDetails is the minimal capability set shared by the two
// identity variants: natively registered auth users and NOMIS staff
// accounts. Enable/disable is only supported by the native variant.
type UserPersonDetails interface {
	GetUsername() string
	GetDisplayName() string
	IsEnabled() bool
	AuthSource() string
}

type Group struct {
	Code        string `json:"group_code"`
	Description string `json:"group_description"`
}

type Authority struct {
	RoleCode        string `json:"role_code"`
	RoleDescription string `json:"role_description"`
}

// AuthUser is a natively registered identity. The master flag marks the
// authoritative record for a username; duplicates/aliases are never master.
type AuthUser struct {
	ID          int64       `json:"id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	Verified    bool        `json:"verified"`
	Enabled     bool        `json:"enabled"`
	Master      bool        `json:"-"`
	Groups      []Group     `json:"groups,omitempty"`
	Authorities []Authority `json:"authorities,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (u *AuthUser) GetUsername() string { return u.Username }

func (u *AuthUser) GetDisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

func (u *AuthUser) IsEnabled() bool { return u.Enabled }

func (u *AuthUser) AuthSource() string { return AuthSourceAuth }

func (u *AuthUser) HasGroup(code string) bool {
	for _, g := range u.Groups {
		if g.Code == code {
			return true
		}
	}
	return false
}

func ToDataModel(u *AuthUser) *userDatamodel.User {
	dm := &userDatamodel.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Verified:  u.Verified,
		Enabled:   u.Enabled,
		Master:    u.Master,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	for _, g := range u.Groups {
		dm.Groups = append(dm.Groups, userDatamodel.Group{Code: g.Code, Description: g.Description})
	}
	for _, a := range u.Authorities {
		dm.Authorities = append(dm.Authorities, userDatamodel.Authority{RoleCode: a.RoleCode, RoleDescription: a.RoleDescription})
	}
	return dm
}

func FromDataModel(dm *userDatamodel.User) *AuthUser {
	u := &AuthUser{
		ID:        dm.ID,
		Username:  dm.Username,
		Email:     dm.Email,
		Name:      dm.Name,
		Verified:  dm.Verified,
		Enabled:   dm.Enabled,
		Master:    dm.Master,
		CreatedAt: dm.CreatedAt,
		UpdatedAt: dm.UpdatedAt,
	}
	for _, g := range dm.Groups {
		u.Groups = append(u.Groups, Group{Code: g.Code, Description: g.Description})
	}
	for _, a := range dm.Authorities {
		u.Authorities = append(u.Authorities, Authority{RoleCode: a.RoleCode, RoleDescription: a.RoleDescription})
	}
	return u
}
