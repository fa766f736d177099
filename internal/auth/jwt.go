package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the structure of the JWT payload issued at login. The
// super-administrator flag is a snapshot taken at issue time; endpoints that
// gate on it re-verify against the store on every call.
type Claims struct {
	AdminId      int64  `json:"adminId"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	OrgId        int64  `json:"orgId"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
	jwt.RegisteredClaims
}

type GenerateJwtOpts struct {
	AdminId      int64
	Audience     string
	Email        string
	Id           string
	IsSuperAdmin bool
	Issuer       string
	OrgId        int64
	Secret       string
	Ttl          time.Duration
	Username     string
}

// GenerateJwt creates a signed JWT for an administrator.
func GenerateJwt(opts GenerateJwtOpts) (string, error) {
	now := time.Now()
	claims := Claims{
		AdminId:      opts.AdminId,
		Email:        opts.Email,
		Username:     opts.Username,
		OrgId:        opts.OrgId,
		IsSuperAdmin: opts.IsSuperAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{opts.Audience},
			ID:        opts.Id,
			Issuer:    opts.Issuer,
			Subject:   opts.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(opts.Ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(opts.Secret))
}

// ValidateJwt verifies the token's signature and expiry.
// Returns the Claims if valid, otherwise an error.
func ValidateJwt(jwtSecret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure the signing method is HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("failed to validate token signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token claims: %s", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("failed to validate token claims structure")
	}

	if claims.ExpiresAt == nil || time.Now().After(claims.ExpiresAt.Time) {
		return nil, fmt.Errorf("failed to validate token expiry")
	}

	return claims, nil
}
