package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"travelrequests/internal/config"
	"travelrequests/internal/middleware"
	"travelrequests/internal/models"
)

// AuthService bundles the two credential capabilities the account
// service depends on: one-way password hashing and token issuance.
type AuthService interface {
	HashPassword(password string) (string, error)
	CheckPassword(password, hash string) bool
	IssueToken(user *models.User) (string, error)
}

type authService struct {
	secret         []byte
	issuer         string
	audience       string
	expiresMinutes int
}

func NewAuthService(cfg config.JWTConfig) AuthService {
	expires := cfg.ExpiresMinutes
	if expires <= 0 {
		expires = 60
	}
	return &authService{
		secret:         []byte(cfg.Secret),
		issuer:         cfg.Issuer,
		audience:       cfg.Audience,
		expiresMinutes: expires,
	}
}

func (s *authService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *authService) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken signs an HS256 access token carrying id, email, display
// name and role claims.
func (s *authService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &middleware.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expiresMinutes) * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
