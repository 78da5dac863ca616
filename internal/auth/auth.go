package auth

import (
	"context"
	"errors"
)

type ctxKey string

const ContextUserKey ctxKey = "admin"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
	ErrUserInactive = errors.New("user account is inactive")
)

// User is the acting administrator as seen by the transport layer: the
// native identity plus its granted authority role codes.
type User struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Enabled     bool     `json:"enabled"`
	Authorities []string `json:"authorities"`
}

func (u *User) HasAuthority(role string) bool {
	for _, a := range u.Authorities {
		if a == role {
			return true
		}
	}
	return false
}

func (u *User) HasAnyAuthority(roles []string) bool {
	for _, role := range roles {
		if u.HasAuthority(role) {
			return true
		}
	}
	return false
}

type ServiceAPI interface {
	ValidateAccessToken(tokenString string) (*Claims, error)
	GetUserWithAuthorities(username string) (*User, error)
}

type RepositoryAPI interface {
	GetUserWithAuthorities(username string) (*User, error)
}

func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ContextUserKey).(*User)
	return u, ok
}

func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ContextUserKey, u)
}
