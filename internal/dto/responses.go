package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/model"
)

// UserResponse is the public projection of a user. It deliberately has
// no password or refresh-token fields.
// swagger:model dto.UserResponse
type UserResponse struct {
	ID        uuid.UUID                 `json:"id"`
	Email     string                    `json:"email" example:"farmer@example.com"`
	Name      string                    `json:"name" example:"John Farmer"`
	FarmSize  *float64                  `json:"farmSize,omitempty" example:"5"`
	CropType  *string                   `json:"cropType,omitempty" example:"corn"`
	Role      model.Role                `json:"role" example:"farmer"`
	Status    model.CertificationStatus `json:"status" example:"pending"`
	CreatedAt time.Time                 `json:"createdAt"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}

// NewUserResponse strips the secret fields from a user record.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		FarmSize:  u.FarmSize,
		CropType:  u.CropType,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// TokenResponse carries a freshly issued token pair.
// swagger:model dto.TokenResponse
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse is returned by register and login.
// swagger:model dto.AuthResponse
type AuthResponse struct {
	Tokens TokenResponse `json:"tokens"`
	User   UserResponse  `json:"user"`
}

// StatusResponse is the certification status payload.
// swagger:model dto.StatusResponse
type StatusResponse struct {
	Status   model.CertificationStatus `json:"status" example:"certified"`
	Name     string                    `json:"name" example:"John Farmer"`
	FarmSize *float64                  `json:"farmSize" example:"5"`
	CropType *string                   `json:"cropType" example:"corn"`
}

// MessageResponse acknowledges an operation with no payload.
// swagger:model dto.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}
