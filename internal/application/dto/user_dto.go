package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Username  string   `json:"username" validate:"required,min=3"`
	Password  string   `json:"password" validate:"required,min=8"`
	Role      string   `json:"role,omitempty"`
	BranchIDs []string `json:"branch_ids,omitempty"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse usuario sin hash de password.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	BranchIDs []string  `json:"branch_ids,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
