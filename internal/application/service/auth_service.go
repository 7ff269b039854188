package service

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/sangkips/salestrack-api/pkg/apperror"
	"github.com/sangkips/salestrack-api/pkg/utils"
)

// AuthService handles operator login. There is a single operator account
// configured by username and bcrypt password hash.
type AuthService struct {
	username     string
	passwordHash string
	jwtManager   *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(username, passwordHash string, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		username:     username,
		passwordHash: passwordHash,
		jwtManager:   jwtManager,
	}
}

// Enabled reports whether the API requires a bearer token
func (s *AuthService) Enabled() bool {
	return s.jwtManager.Enabled()
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Login checks the operator credentials and issues an access token
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if !s.Enabled() {
		return nil, apperror.NewAppError(http.StatusNotImplemented, "Authentication is disabled")
	}
	if s.passwordHash == "" {
		return nil, apperror.ErrInvalidCredentials
	}

	userOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.username)) == 1
	passOK := utils.CheckPassword(s.passwordHash, input.Password)
	if !userOK || !passOK {
		return nil, apperror.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtManager.GenerateAccessToken(s.username)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// Authenticate validates a bearer token and returns the operator name
func (s *AuthService) Authenticate(token string) (string, error) {
	claims, err := s.jwtManager.ValidateAccessToken(token)
	if err != nil {
		return "", apperror.ErrInvalidToken
	}
	return claims.Username, nil
}
