package user

import (
	errors "github.com/frahmantamala/user-admin/internal"
	"github.com/frahmantamala/user-admin/internal/core/common/validation"
)

// UserDetail is the transport shape for any resolved identity, native or
// NOMIS-sourced.
type UserDetail struct {
	Username   string `json:"username"`
	Active     bool   `json:"active"`
	Name       string `json:"name"`
	AuthSource string `json:"auth_source"`
}

func NewUserDetail(d UserPersonDetails) UserDetail {
	return UserDetail{
		Username:   d.GetUsername(),
		Active:     d.IsEnabled(),
		Name:       d.GetDisplayName(),
		AuthSource: d.AuthSource(),
	}
}

// AuthUserDetail is the transport shape for a native auth user.
type AuthUserDetail struct {
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Enabled     bool     `json:"enabled"`
	Verified    bool     `json:"verified"`
	Groups      []string `json:"groups"`
	Authorities []string `json:"authorities"`
}

func NewAuthUserDetail(u *AuthUser) AuthUserDetail {
	detail := AuthUserDetail{
		Username:    u.Username,
		Email:       u.Email,
		Name:        u.Name,
		Enabled:     u.Enabled,
		Verified:    u.Verified,
		Groups:      []string{},
		Authorities: []string{},
	}
	for _, g := range u.Groups {
		detail.Groups = append(detail.Groups, g.Code)
	}
	for _, a := range u.Authorities {
		detail.Authorities = append(detail.Authorities, a.RoleCode)
	}
	return detail
}

func NewAuthUserDetails(users []*AuthUser) []AuthUserDetail {
	details := make([]AuthUserDetail, 0, len(users))
	for _, u := range users {
		details = append(details, NewAuthUserDetail(u))
	}
	return details
}

// EmailSearchDTO carries the email query parameter of the search endpoint.
type EmailSearchDTO struct {
	Email string `json:"email"`
}

func (d EmailSearchDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("email", d.Email).Required().MaxLength(240).Email()
	return v.Validate()
}
