package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/game-journal-api/internal/auth"
	"github.com/yukikurage/game-journal-api/internal/dto"
	"github.com/yukikurage/game-journal-api/internal/models"
	"github.com/yukikurage/game-journal-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrMissingFields        = errors.New("username, email and password are required")
	ErrMissingCredentials   = errors.New("email and password are required")
	ErrUserExists           = errors.New("username or email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateUser   = errors.New("failed to create user")
	ErrFailedToIssueToken   = errors.New("failed to issue session token")
)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new user and returns it with a fresh session token.
func (s *AuthService) Register(input RegisterInput) (*models.User, string, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)
	if username == "" || email == "" || input.Password == "" {
		return nil, "", ErrMissingFields
	}

	taken, err := s.userRepo.ExistsByUsernameOrEmail(username, email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if taken {
		return nil, "", ErrUserExists
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		// a concurrent registration can win between the check and the insert
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrUserExists
		}
		return nil, "", ErrFailedToCreateUser
	}

	token, err := s.tokens.Issue(dto.ToIdentity(*user))
	if err != nil {
		return nil, "", ErrFailedToIssueToken
	}

	return user, token, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the user with a fresh session token.
func (s *AuthService) Login(input LoginInput) (*models.User, string, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, "", ErrMissingCredentials
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	ok, err := auth.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(dto.ToIdentity(*user))
	if err != nil {
		return nil, "", ErrFailedToIssueToken
	}

	return user, token, nil
}

// Authenticate resolves a session token to the identity it carries.
func (s *AuthService) Authenticate(token string) (auth.Identity, error) {
	return s.tokens.Validate(token)
}
