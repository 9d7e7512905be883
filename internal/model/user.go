package model

import (
	"time"

	"github.com/google/uuid"
)

// Role distinguishes farmers from administrators. It is assigned at
// registration and never changed afterwards.
type Role string

const (
	RoleFarmer Role = "farmer"
	RoleAdmin  Role = "admin"
)

// CertificationStatus tracks a farmer's certification progress.
type CertificationStatus string

const (
	StatusPending   CertificationStatus = "pending"
	StatusCertified CertificationStatus = "certified"
	StatusDeclined  CertificationStatus = "declined"
)

// User is the single persisted entity. PasswordHash and RefreshTokenHash
// are secrets and must never reach a client; responses go through
// dto.NewUserResponse instead of marshaling this struct.
type User struct {
	ID               uuid.UUID           `db:"id"`
	Email            string              `db:"email"`
	PasswordHash     string              `db:"password_hash"`
	Name             string              `db:"name"`
	FarmSize         *float64            `db:"farm_size"`
	CropType         *string             `db:"crop_type"`
	Role             Role                `db:"role"`
	Status           CertificationStatus `db:"status"`
	RefreshTokenHash *string             `db:"refresh_token_hash"`
	CreatedAt        time.Time           `db:"created_at"`
	UpdatedAt        time.Time           `db:"updated_at"`
}
