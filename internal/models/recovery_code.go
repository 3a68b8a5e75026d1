package models

import "time"

type RecoveryCode struct {
	ID          int       `json:"id"`
	Email       string    `json:"email"`
	Code        string    `json:"code"`
	UserID      int       `json:"user_id"`
	GeneratedAt time.Time `json:"generated_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Used        bool      `json:"used"`
	Active      bool      `json:"active"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required,len=6"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}
