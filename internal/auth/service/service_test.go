package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"salon_backoffice_backend/internal/auth/repository"
	"salon_backoffice_backend/internal/auth/transport"
	"salon_backoffice_backend/platform/apperr"
	"salon_backoffice_backend/platform/logger"
)

const testSecret = "test-secret"

type fakeRepo struct {
	byEmail map[string]repository.User
	byID    map[uuid.UUID]repository.User
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byEmail: make(map[string]repository.User),
		byID:    make(map[uuid.UUID]repository.User),
	}
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return repository.User{}, apperr.NotFound("user not found")
	}
	return user, nil
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (repository.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return repository.User{}, apperr.NotFound("user not found")
	}
	return user, nil
}

func (f *fakeRepo) Create(_ context.Context, params repository.CreateParams) (repository.User, error) {
	if _, exists := f.byEmail[params.Email]; exists {
		return repository.User{}, apperr.Conflict("a user with this email already exists")
	}
	user := repository.User{
		ID:           uuid.New(),
		Name:         params.Name,
		Email:        params.Email,
		PasswordHash: params.PasswordHash,
		UserType:     params.UserType,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return user, nil
}

func (f *fakeRepo) CountByType(_ context.Context, userType string) (int, error) {
	count := 0
	for _, user := range f.byID {
		if user.UserType == userType {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) Count(context.Context) (int, error) {
	return len(f.byID), nil
}

type stubConfig struct{}

func (stubConfig) GetJWTAccessSecret() string       { return testSecret }
func (stubConfig) GetAccessTokenTTL() time.Duration { return 12 * time.Hour }

func seedUser(t *testing.T, repo *fakeRepo, email, password, userType string, active bool) repository.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := repository.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		UserType:     userType,
		IsActive:     active,
	}
	repo.byEmail[email] = user
	repo.byID[user.ID] = user
	return user
}

func newService(repo repository.Repository) *Service {
	return New(repo, stubConfig{}, logger.New("test"))
}

func TestLoginIssuesTokenWithRoleClaim(t *testing.T) {
	repo := newFakeRepo()
	user := seedUser(t, repo, "owner@example.com", "correct-horse", "OWNER", true)
	svc := newService(repo)

	resp, err := svc.Login(context.Background(), transport.LoginRequest{
		Email:    "owner@example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	parsed, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse token: %v", err)
	}

	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != user.ID.String() {
		t.Errorf("sub = %v, want %s", claims["sub"], user.ID)
	}
	if claims["type"] != "access" {
		t.Errorf("type = %v, want access", claims["type"])
	}
	roles, _ := claims["roles"].([]interface{})
	if len(roles) != 1 || roles[0] != "OWNER" {
		t.Errorf("roles = %v, want [OWNER]", claims["roles"])
	}
}

func TestLoginWrongPasswordIsUnauthorized(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "owner@example.com", "correct-horse", "OWNER", true)
	svc := newService(repo)

	_, err := svc.Login(context.Background(), transport.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong-password",
	})
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Errorf("err = %v, want unauthorized", err)
	}
}

func TestLoginUnknownEmailDoesNotLeakExistence(t *testing.T) {
	svc := newService(newFakeRepo())

	_, err := svc.Login(context.Background(), transport.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever-pass",
	})
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Errorf("err = %v, want unauthorized (not 404)", err)
	}
}

func TestLoginInactiveAccountRejected(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "former@example.com", "correct-horse", "RECEPTIONIST", false)
	svc := newService(repo)

	_, err := svc.Login(context.Background(), transport.LoginRequest{
		Email:    "former@example.com",
		Password: "correct-horse",
	})
	if !apperr.Is(err, apperr.KindUnauthorized) {
		t.Errorf("err = %v, want unauthorized", err)
	}
}

func TestSeedOwnerSkipsWhenOwnerExists(t *testing.T) {
	repo := newFakeRepo()
	seedUser(t, repo, "owner@example.com", "correct-horse", "OWNER", true)
	svc := newService(repo)

	if err := svc.SeedOwner(context.Background(), "Second Owner", "second@example.com", "password123"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, exists := repo.byEmail["second@example.com"]; exists {
		t.Error("seed created a second owner")
	}
}

func TestSeedOwnerCreatesFirstOwner(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	if err := svc.SeedOwner(context.Background(), "First Owner", "first@example.com", "password123"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	user, exists := repo.byEmail["first@example.com"]
	if !exists {
		t.Fatal("owner was not created")
	}
	if user.UserType != "OWNER" {
		t.Errorf("userType = %s, want OWNER", user.UserType)
	}
}
