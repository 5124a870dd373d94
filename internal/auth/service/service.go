// Package service implements authentication business logic: credential
// verification, access token issuance, and back-office user registration.
package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"salon_backoffice_backend/internal/auth/repository"
	"salon_backoffice_backend/internal/auth/transport"
	"salon_backoffice_backend/platform/apperr"
	"salon_backoffice_backend/platform/config"
	"salon_backoffice_backend/platform/logger"
)

const invalidCredentialsMessage = "invalid email or password"

// Service handles authentication operations.
type Service struct {
	repo repository.Repository
	cfg  config.AuthServiceConfig
	log  *logger.Logger
	now  func() time.Time
}

// New creates a new auth service.
func New(repo repository.Repository, cfg config.AuthServiceConfig, log *logger.Logger) *Service {
	return &Service{
		repo: repo,
		cfg:  cfg,
		log:  log,
		now:  time.Now,
	}
}

// Login verifies the credentials and returns a signed access token.
func (s *Service) Login(ctx context.Context, req transport.LoginRequest) (transport.LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			s.log.AuthEvent("login", req.Email, false, "unknown email")
			return transport.LoginResponse{}, apperr.Unauthorized(invalidCredentialsMessage)
		}
		return transport.LoginResponse{}, err
	}

	if !user.IsActive {
		s.log.AuthEvent("login", req.Email, false, "account deactivated")
		return transport.LoginResponse{}, apperr.Unauthorized(invalidCredentialsMessage)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.log.AuthEvent("login", req.Email, false, "wrong password")
		return transport.LoginResponse{}, apperr.Unauthorized(invalidCredentialsMessage)
	}

	token, expiresAt, err := s.issueAccessToken(user)
	if err != nil {
		return transport.LoginResponse{}, apperr.Wrap(apperr.KindInternal, "could not issue token", err)
	}

	s.log.AuthEvent("login", user.Email, true, "")

	return transport.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserResponse(user),
	}, nil
}

// Register creates a new back-office user. Only owners may call this,
// which the transport layer enforces via role middleware.
func (s *Service) Register(ctx context.Context, req transport.RegisterRequest) (transport.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return transport.UserResponse{}, apperr.Wrap(apperr.KindInternal, "could not hash password", err)
	}

	user, err := s.repo.Create(ctx, repository.CreateParams{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		UserType:     string(req.UserType),
	})
	if err != nil {
		return transport.UserResponse{}, err
	}

	s.log.AuthEvent("register", user.Email, true, "")

	return toUserResponse(user), nil
}

// SeedOwner creates the first OWNER account so a fresh deployment can
// sign in. It is a no-op when any owner already exists or when the
// seed credentials are not configured.
func (s *Service) SeedOwner(ctx context.Context, name, email, password string) error {
	if name == "" || email == "" || password == "" {
		return nil
	}

	count, err := s.repo.CountByType(ctx, string(transport.UserTypeOwner))
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	_, err = s.Register(ctx, transport.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		UserType: transport.UserTypeOwner,
	})
	if apperr.Is(err, apperr.KindConflict) {
		return nil
	}
	return err
}

// Me returns the profile of the authenticated user.
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (transport.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return transport.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *Service) issueAccessToken(user repository.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.cfg.GetAccessTokenTTL())

	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"type":  "access",
		"roles": []string{user.UserType},
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(s.cfg.GetJWTAccessSecret()))
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

func toUserResponse(user repository.User) transport.UserResponse {
	return transport.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		UserType:  transport.UserType(user.UserType),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
	}
}
