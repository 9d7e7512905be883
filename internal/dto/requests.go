package dto

// RegisterRequest creates a farmer account.
// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email" example:"farmer@example.com"`
	Password string  `json:"password" validate:"required,min=6" example:"secret1"`
	Name     string  `json:"name" validate:"required" example:"John Farmer"`
	FarmSize float64 `json:"farmSize" validate:"required,gt=0" example:"5"`
	CropType string  `json:"cropType" validate:"required" example:"corn"`
}

// LoginRequest authenticates by email and password.
// swagger:model dto.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"farmer@example.com"`
	Password string `json:"password" validate:"required" example:"secret1"`
}

// CreateAdminRequest creates an administrator account.
// swagger:model dto.CreateAdminRequest
type CreateAdminRequest struct {
	Email    string `json:"email" validate:"required,email" example:"admin@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"admin123"`
	Name     string `json:"name" validate:"required" example:"Admin User"`
}

// UpdateStatusRequest sets a farmer's certification status.
// swagger:model dto.UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending certified declined" example:"certified"`
}
