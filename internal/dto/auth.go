package dto

import (
	"time"

	"github.com/maooe/finance_control_app/internal/core/domain"
)

// ExchangeCodeRequest carries the OAuth authorization code returned by the
// provider redirect.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// IdentityResponse is the wire shape of a signed-in identity.
type IdentityResponse struct {
	UserID    string `json:"userID"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarURL,omitempty"`
	Mode      string `json:"mode"`
}

// AuthResponse is returned by every successful sign-in: the session token,
// its expiry and the resolved identity.
type AuthResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	Identity  IdentityResponse `json:"identity"`
}

// ToIdentityResponse converts a domain.Identity to its wire shape.
func ToIdentityResponse(id *domain.Identity) IdentityResponse {
	return IdentityResponse{
		UserID:    id.UserID,
		Name:      id.Name,
		Email:     id.Email,
		AvatarURL: id.AvatarURL,
		Mode:      string(id.Mode),
	}
}

// ToAuthResponse bundles a minted token with its identity.
func ToAuthResponse(token string, expiresAt time.Time, id *domain.Identity) AuthResponse {
	return AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Identity:  ToIdentityResponse(id),
	}
}
