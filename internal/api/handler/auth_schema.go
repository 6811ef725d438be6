package handler

import "github.com/vetcare/clinic-api/internal/core/domain"

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type loginResponse struct {
	Message      string       `json:"mensaje"`
	User         *domain.User `json:"usuario"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type refreshResponse struct {
	Message     string `json:"mensaje"`
	AccessToken string `json:"accessToken"`
}

type messageResponse struct {
	Message string `json:"mensaje"`
}

type userResponse struct {
	User *domain.User `json:"usuario"`
}
