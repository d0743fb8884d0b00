package entity

import "github.com/golang-jwt/jwt/v5"

// Claims carries the authenticated admin identity in an access token.
type Claims struct {
	UserID string   `json:"user_id"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}
