package types

import "github.com/google/uuid"

// TokenClaims is the identity asserted for an authenticated request.
type TokenClaims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}
