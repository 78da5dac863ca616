package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by platform access tokens. The subject is the
// administrator's username.
type Claims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Username() string { return c.Subject }

// Service validates access tokens issued by the platform's authorization
// server and resolves the acting administrator. This service never issues
// tokens itself.
type Service struct {
	userRepo  RepositoryAPI
	publicKey *rsa.PublicKey
}

func NewService(userRepo RepositoryAPI, publicKey *rsa.PublicKey) *Service {
	return &Service{
		userRepo:  userRepo,
		publicKey: publicKey,
	}
}

// ValidateAccessToken verifies signature and expiry and returns the claims.
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.publicKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

// GetUserWithAuthorities loads the acting administrator with granted
// authority role codes.
func (s *Service) GetUserWithAuthorities(username string) (*User, error) {
	return s.userRepo.GetUserWithAuthorities(username)
}
