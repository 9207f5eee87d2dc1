package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// EmployeeClaims carries the identity claims of an authenticated staff
// member. Name claims mirror the OIDC profile claims the identity
// provider issues.
type EmployeeClaims struct {
	UserID            int32    `json:"user_id"`
	GivenName         string   `json:"given_name,omitempty"`
	FamilyName        string   `json:"family_name,omitempty"`
	Name              string   `json:"name,omitempty"`
	PreferredUsername string   `json:"preferred_username,omitempty"`
	Roles             []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// EmployeeName resolves the display name recorded on rental transactions.
// Precedence: given+family name, then the generic display name, then the
// username. The ordering is fixed so records stay consistent.
func (c *EmployeeClaims) EmployeeName() string {
	if c.GivenName != "" && c.FamilyName != "" {
		return c.GivenName + " " + c.FamilyName
	}
	if c.Name != "" {
		return c.Name
	}
	return c.PreferredUsername
}

// HasRole reports whether the employee holds any of the given roles.
func (c *EmployeeClaims) HasRole(roles ...string) bool {
	for _, want := range roles {
		for _, have := range c.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

type TokenManager interface {
	GenerateToken(userID int32, givenName, familyName, username string, roles []string) (string, error)
	ValidateToken(tokenString string) (*EmployeeClaims, error)
}

type tokenManager struct {
	secret []byte
}

func NewTokenManager(secret string) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
	}
}

func (m *tokenManager) GenerateToken(userID int32, givenName, familyName, username string, roles []string) (string, error) {
	claims := EmployeeClaims{
		UserID:            userID,
		GivenName:         givenName,
		FamilyName:        familyName,
		PreferredUsername: username,
		Roles:             roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(userID)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(8 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "toolrent-auth",
			Audience:  jwt.ClaimStrings{"api-access"},
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*EmployeeClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &EmployeeClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*EmployeeClaims); ok && token.Valid {
		if claims.UserID == 0 && claims.Subject != "" {
			uid, _ := strconv.Atoi(claims.Subject)
			claims.UserID = int32(uid)
		}
		return claims, nil
	}

	return nil, ErrInvalidToken
}
