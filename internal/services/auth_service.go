package services

import (
	"fmt"
	"log"

	"mountainstore/internal/models"
	"mountainstore/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// Default admin credentials seeded at startup. The password must be rotated
// in any real deployment.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@mountainstore.com"
	DefaultAdminPassword = "admin123"
)

// AuthService handles admin credentials: password hashing, login, opaque
// bearer-token validation and the default-admin bootstrap.
type AuthService struct {
	adminRepo repositories.AdminRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(adminRepo repositories.AdminRepository) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
	}
}

// HashPassword returns a salted bcrypt hash of the password. Hashing the
// same password twice yields different hashes.
func (s *AuthService) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password matches the stored hash.
func (s *AuthService) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Login authenticates an admin and returns a bearer token on success.
// The token is the admin's username: an opaque credential with no signature
// or expiry. Known weakness kept as the baseline contract; a hardened
// deployment needs a signed-token scheme here.
func (s *AuthService) Login(username, password string) (string, *models.Admin, error) {
	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !s.VerifyPassword(password, admin.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}
	return admin.Username, admin, nil
}

// Authenticate resolves a bearer token to an admin account. The token is
// matched against the username.
func (s *AuthService) Authenticate(token string) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByUsername(token)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid bearer token", ErrUnauthorized)
	}
	return admin, nil
}

// Register creates a new admin account. Check-then-insert; not atomic
// against the store, so a concurrent register with the same username can
// still race past the existence check.
func (s *AuthService) Register(username, email, password string) (*models.Admin, error) {
	if existing, err := s.adminRepo.GetByUsername(username); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: username '%s' already exists", ErrConflict, username)
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, fmt.Errorf("failed to register admin: %w", err)
	}
	return admin, nil
}

// BootstrapDefaultAdmin seeds the default admin account when it does not
// exist yet. Idempotent; called at startup and from the init-data endpoint.
func (s *AuthService) BootstrapDefaultAdmin() error {
	if existing, err := s.adminRepo.GetByUsername(DefaultAdminUsername); err == nil && existing != nil {
		return nil
	}

	hash, err := s.HashPassword(DefaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Username:     DefaultAdminUsername,
		Email:        DefaultAdminEmail,
		PasswordHash: hash,
	}
	if err := s.adminRepo.Create(admin); err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}
	log.Printf("Default admin created: username=%s", DefaultAdminUsername)
	return nil
}
