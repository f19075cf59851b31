package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"

	"github.com/synergysphere/synergy/internal/domain"
	"github.com/synergysphere/synergy/internal/repository"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrInvalidCreds = errors.New("invalid email or password")
)

// demoUserID is the stable synthesized identity used whenever the
// backend is unconfigured; any credentials sign in as this user.
var demoUserID = uuid.MustParse("99999999-9999-4999-8999-999999999999")

const tokenTTL = 24 * time.Hour

type Service struct {
	profiles  repository.ProfileRepository
	jwtSecret []byte
	demoMode  bool
}

func NewService(profiles repository.ProfileRepository, jwtSecret string, demoMode bool) *Service {
	return &Service{
		profiles:  profiles,
		jwtSecret: []byte(jwtSecret),
		demoMode:  demoMode,
	}
}

type RegisterInput struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User        *domain.Profile `json:"user"`
	AccessToken string          `json:"access_token"`
}

func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleTeam
	}

	if s.demoMode {
		user := demoProfile(input.Email, input.FullName, role)
		return s.respond(user)
	}

	existing, err := s.profiles.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user := &domain.Profile{
		ID:           uuid.New(),
		Email:        input.Email,
		FullName:     input.FullName,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.profiles.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}

	return s.respond(user)
}

func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	if s.demoMode {
		// Any credentials work; the role is inferred from the email.
		role := domain.RoleTeam
		name := "Demo Team Member"
		if strings.Contains(strings.ToLower(input.Email), "manager") {
			role = domain.RoleManager
			name = "Demo Manager"
		}
		return s.respond(demoProfile(input.Email, name, role))
	}

	user, err := s.profiles.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCreds
	}

	if !verifyPassword(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCreds
	}

	return s.respond(user)
}

// CurrentUser resolves the profile behind a validated token subject.
func (s *Service) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	return s.profiles.GetByID(ctx, userID)
}

func (s *Service) respond(user *domain.Profile) (*AuthResponse, error) {
	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}
	return &AuthResponse{User: user, AccessToken: token}, nil
}

func (s *Service) generateToken(user *domain.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func demoProfile(email, fullName, role string) *domain.Profile {
	now := time.Now()
	return &domain.Profile{
		ID:        demoUserID,
		Email:     email,
		FullName:  fullName,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func hashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)

	return fmt.Sprintf("%s:%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

func verifyPassword(password, encoded string) bool {
	saltB64, hashB64, ok := strings.Cut(encoded, ":")
	if !ok {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}

	expectedHash, err := base64.RawStdEncoding.DecodeString(hashB64)
	if err != nil {
		return false
	}

	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
	return subtle.ConstantTimeCompare(hash, expectedHash) == 1
}
