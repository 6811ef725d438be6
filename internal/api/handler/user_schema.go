package handler

import "github.com/vetcare/clinic-api/internal/core/domain"

type registerUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email"    validate:"required,email"`
	Role     string `json:"rol"      validate:"omitempty,oneof=admin usuario veterinario"`
}

type updateUserRequest struct {
	Username string `json:"username" validate:"omitempty,min=3,max=50"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Role     string `json:"rol"      validate:"omitempty,oneof=admin usuario veterinario"`
}

type userMessageResponse struct {
	Message string       `json:"mensaje"`
	User    *domain.User `json:"usuario"`
}
