package services

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"travelrequests/internal/models"
	"travelrequests/internal/repositories"
	"travelrequests/internal/utils"
)

const recoveryCodeTTL = 5 * time.Minute

type UserService interface {
	Register(input *models.RegisterRequest) (*models.UserResponse, error)
	Login(input *models.LoginRequest) (string, error)
	RequestRecoveryCode(email string) (string, error)
	ResetPassword(input *models.ResetPasswordRequest) error
	ListUsers(actingRole models.Role) ([]*models.UserResponse, error)
}

type userService struct {
	users    repositories.UserRepository
	codes    repositories.RecoveryCodeRepository
	auth     AuthService
	emails   EmailService // optional, nil disables delivery
	codeRand io.Reader    // nil means crypto/rand
}

func NewUserService(
	users repositories.UserRepository,
	codes repositories.RecoveryCodeRepository,
	auth AuthService,
	emails EmailService,
	codeRand io.Reader,
) UserService {
	return &userService{
		users:    users,
		codes:    codes,
		auth:     auth,
		emails:   emails,
		codeRand: codeRand,
	}
}

func (s *userService) Register(input *models.RegisterRequest) (*models.UserResponse, error) {
	exists, err := s.users.ExistsByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: email already registered", ErrInvalidRequest)
	}

	role, ok := models.ParseRole(input.Role)
	if !ok {
		return nil, fmt.Errorf("%w: invalid role", ErrInvalidRequest)
	}

	hash, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	log.Printf("[users][register] registered email=%q id=%d role=%s", user.Email, user.ID, user.Role)
	return mapUser(user), nil
}

func (s *userService) Login(input *models.LoginRequest) (string, error) {
	user, err := s.users.GetByEmail(strings.TrimSpace(input.Email))
	if err != nil {
		return "", err
	}
	// one generic message for both unknown email and wrong password
	if user == nil || !s.auth.CheckPassword(input.Password, user.PasswordHash) {
		return "", fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	token, err := s.auth.IssueToken(user)
	if err != nil {
		return "", err
	}

	log.Printf("[users][login] success id=%d role=%s", user.ID, user.Role)
	return token, nil
}

func (s *userService) RequestRecoveryCode(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", fmt.Errorf("%w: email required", ErrInvalidRequest)
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", fmt.Errorf("%w: email not registered", ErrInvalidRequest)
	}

	// single-active-code invariant: drop everything issued before
	if err := s.codes.InvalidateAllForUser(user.ID); err != nil {
		return "", err
	}

	code, err := utils.NewRecoveryCode(s.codeRand)
	if err != nil {
		return "", err
	}

	now := time.Now()
	rc := &models.RecoveryCode{
		Email:       user.Email,
		Code:        code,
		UserID:      user.ID,
		GeneratedAt: now,
		ExpiresAt:   now.Add(recoveryCodeTTL),
		Used:        false,
		Active:      true,
	}
	if err := s.codes.Create(rc); err != nil {
		return "", err
	}

	if s.emails != nil {
		if err := s.emails.SendRecoveryCodeEmail(user.Email, code); err != nil {
			// delivery is best effort; the code is returned to the caller
			log.Printf("[users][recovery] failed to send code email to %s: %v", user.Email, err)
		}
	}

	log.Printf("[users][recovery] code issued for id=%d expires_at=%s", user.ID, rc.ExpiresAt.Format(time.RFC3339))
	return code, nil
}

func (s *userService) ResetPassword(input *models.ResetPasswordRequest) error {
	rc, err := s.codes.ValidCode(input.Email, input.Code)
	if err != nil {
		return err
	}
	if rc == nil {
		return fmt.Errorf("%w: invalid or expired code", ErrInvalidRequest)
	}

	user, err := s.users.GetByEmail(input.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: user not found", ErrInvalidRequest)
	}

	hash, err := s.auth.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	now := time.Now()
	user.PasswordHash = hash
	user.UpdatedAt = &now

	rc.Used = true
	rc.Active = false

	if err := s.users.Update(user); err != nil {
		return err
	}
	if err := s.codes.Update(rc); err != nil {
		return err
	}

	log.Printf("[users][recovery] password reset for id=%d", user.ID)
	return nil
}

func (s *userService) ListUsers(actingRole models.Role) ([]*models.UserResponse, error) {
	if actingRole != models.RoleApprover {
		return nil, fmt.Errorf("%w: approver role required", ErrForbidden)
	}

	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	out := make([]*models.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, mapUser(u))
	}
	return out, nil
}

func mapUser(u *models.User) *models.UserResponse {
	return &models.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt.Format("2006-01-02 15:04"),
	}
}
