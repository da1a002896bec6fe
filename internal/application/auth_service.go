package application

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userDomain "github.com/beautygo/beautygo-api/internal/domain/user"
	"github.com/beautygo/beautygo-api/pkg/auth"
	"github.com/beautygo/beautygo-api/pkg/domain"
)

// RegisterRequest holds the data to create a new account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
	Bio      string `json:"bio"`
	City     string `json:"city"`
	State    string `json:"state"`
}

// LoginRequest holds credentials for token issuance.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResultDTO is returned from register and login.
type AuthResultDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// AuthService registers accounts and issues access tokens. Full session
// management lives outside this service; only JWT issuance happens here.
type AuthService struct {
	users      userDomain.UserRepository
	jwtManager *auth.JWTManager
	logger     *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users userDomain.UserRepository, jwtManager *auth.JWTManager, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, jwtManager: jwtManager, logger: logger}
}

// Register creates an account and returns a token for it. Admin accounts
// cannot be self-registered.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResultDTO, error) {
	role := auth.Role(req.Role)
	if role != auth.RoleClient && role != auth.RoleProfessional {
		return nil, domain.NewValidationError("role must be client or professional")
	}

	if existing, err := s.users.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, domain.NewConflictError("email is already registered")
	} else if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewValidationError("password could not be processed")
	}

	u, err := userDomain.NewUser(req.Name, req.Email, req.Phone, string(hash), role, req.Bio, req.City, req.State)
	if err != nil {
		return nil, err
	}

	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.jwtManager.Generate(u.ID(), u.Role(), u.IsApproved())
	if err != nil {
		return nil, err
	}

	return &AuthResultDTO{Token: token, User: toUserDTO(u)}, nil
}

// Login verifies credentials and issues a token.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResultDTO, error) {
	u, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return nil, domain.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte(req.Password)) != nil {
		return nil, domain.NewUnauthorizedError("invalid credentials")
	}

	token, err := s.jwtManager.Generate(u.ID(), u.Role(), u.IsApproved())
	if err != nil {
		return nil, err
	}

	return &AuthResultDTO{Token: token, User: toUserDTO(u)}, nil
}
