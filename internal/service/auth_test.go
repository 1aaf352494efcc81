package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/daypact/api/internal/model"
	"github.com/daypact/api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// Mock implementations

type mockUserRepo struct {
	users         map[string]*model.User
	emailIndex    map[string]*model.User
	usernameIndex map[string]*model.User
	createErr     error
	getErr        error
	touchErr      error
	touched       []string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:         make(map[string]*model.User),
		emailIndex:    make(map[string]*model.User),
		usernameIndex: make(map[string]*model.User),
	}
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = "user:" + user.Username
	user.CreatedOn = time.Now()
	user.UpdatedOn = time.Now()
	m.users[user.ID] = user
	m.emailIndex[user.Email] = user
	m.usernameIndex[user.Username] = user
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.users[id], nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.emailIndex[email], nil
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.usernameIndex[username], nil
}

func (m *mockUserRepo) TouchLogin(ctx context.Context, userID string) error {
	if m.touchErr != nil {
		return m.touchErr
	}
	m.touched = append(m.touched, userID)
	return nil
}

// Test helper to create auth service with mocks
func setupAuthService(t *testing.T) (*AuthService, *mockUserRepo) {
	t.Helper()

	userRepo := newMockUserRepo()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate test RSA key: %v", err)
	}
	jwtService := jwt.NewTestService(privateKey, "daypact-test", 15*time.Minute)

	authService := NewAuthService(AuthServiceConfig{
		UserRepo:   userRepo,
		JWTService: jwtService,
	})

	return authService, userRepo
}

// Tests

func TestAuthService_Register_Success(t *testing.T) {
	authService, userRepo := setupAuthService(t)
	ctx := context.Background()

	result, err := authService.Register(ctx, RegisterRequest{
		Username: "builder",
		Email:    "builder@example.com",
		Password: "password123",
	})

	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if result == nil {
		t.Fatal("expected result, got nil")
	}
	if result.User.Email != "builder@example.com" {
		t.Errorf("expected email builder@example.com, got %s", result.User.Email)
	}
	if result.User.Username != "builder" {
		t.Errorf("expected username builder, got %s", result.User.Username)
	}
	if result.Token == "" {
		t.Error("expected a signed token")
	}
	if result.User.Hash == nil {
		t.Fatal("expected password hash to be set")
	}

	// Verify password was hashed correctly
	if err := bcrypt.CompareHashAndPassword([]byte(*result.User.Hash), []byte("password123")); err != nil {
		t.Error("password hash verification failed")
	}

	stored, _ := userRepo.GetByEmail(ctx, "builder@example.com")
	if stored == nil {
		t.Error("user was not stored in repository")
	}
}

func TestAuthService_Register_NormalizesEmail(t *testing.T) {
	authService, _ := setupAuthService(t)
	ctx := context.Background()

	result, err := authService.Register(ctx, RegisterRequest{
		Username: "builder",
		Email:    "  Builder@Example.COM ",
		Password: "password123",
	})

	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if result.User.Email != "builder@example.com" {
		t.Errorf("expected normalized email, got %s", result.User.Email)
	}
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	authService, _ := setupAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		email string
	}{
		{"empty email", ""},
		{"no at sign", "builderexample.com"},
		{"no domain", "builder@"},
		{"no local part", "@example.com"},
		{"no TLD", "builder@example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authService.Register(ctx, RegisterRequest{
				Username: "builder",
				Email:    tt.email,
				Password: "password123",
			})
			if !errors.Is(err, ErrInvalidEmail) {
				t.Errorf("expected ErrInvalidEmail, got %v", err)
			}
		})
	}
}

func TestAuthService_Register_InvalidUsername(t *testing.T) {
	authService, _ := setupAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"empty username", "", ErrUsernameRequired},
		{"whitespace only", "   ", ErrUsernameRequired},
		{"too long", strings.Repeat("x", maxUsernameLength+1), ErrUsernameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authService.Register(ctx, RegisterRequest{
				Username: tt.username,
				Email:    "builder@example.com",
				Password: "password123",
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAuthService_Register_InvalidPassword(t *testing.T) {
	authService, _ := setupAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"empty password", "", ErrPasswordRequired},
		{"too short", "short", ErrPasswordTooShort},
		{"exactly 7 chars", "1234567", ErrPasswordTooShort},
		{"too long", strings.Repeat("p", maxPasswordLength+1), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authService.Register(ctx, RegisterRequest{
				Username: "builder",
				Email:    "builder@example.com",
				Password: tt.password,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	authService, _ := setupAuthService(t)
	ctx := context.Background()

	_, err := authService.Register(ctx, RegisterRequest{
		Username: "builder",
		Email:    "builder@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err = authService.Register(ctx, RegisterRequest{
		Username: "othername",
		Email:    "builder@example.com",
		Password: "password123",
	})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	authService, _ := setupAuthService(t)
	ctx := context.Background()

	_, err := authService.Register(ctx, RegisterRequest{
		Username: "builder",
		Email:    "builder@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err = authService.Register(ctx, RegisterRequest{
		Username: "builder",
		Email:    "other@example.com",
		Password: "password123",
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	authService, userRepo := setupAuthService(t)
	ctx := context.Background()

	registered, err := authService.Register(ctx, RegisterRequest{
		Username: "builder",
		Email:    "builder@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	result, err := authService.Login(ctx, LoginRequest{
		Email:    "builder@example.com",
		Password: "password123",
	})

	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.User.ID != registered.User.ID {
		t.Errorf("expected user %s, got %s", registered.User.ID, result.User.ID)
	}
	if result.Token == "" {
		t.Error("expected a signed token")
	}
	if len(userRepo.touched) != 1 || userRepo.touched[0] != registered.User.ID {
		t.Errorf("expected login timestamp for %s, got %v", registered.User.ID, userRepo.touched)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	authService, _ := setupAuthService(t)
	ctx := context.Background()

	_, err := authService.Register(ctx, RegisterRequest{
		Username: "builder",
		Email:    "builder@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, err = authService.Login(ctx, LoginRequest{
		Email:    "builder@example.com",
		Password: "wrongpassword",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	authService, _ := setupAuthService(t)
	ctx := context.Background()

	_, err := authService.Login(ctx, LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_TouchLoginFailureDoesNotBlock(t *testing.T) {
	authService, userRepo := setupAuthService(t)
	ctx := context.Background()

	_, err := authService.Register(ctx, RegisterRequest{
		Username: "builder",
		Email:    "builder@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	userRepo.touchErr = errors.New("write failed")

	result, err := authService.Login(ctx, LoginRequest{
		Email:    "builder@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.Token == "" {
		t.Error("expected a signed token")
	}
}

func TestAuthService_GetUserByID_NotFound(t *testing.T) {
	authService, _ := setupAuthService(t)
	ctx := context.Background()

	_, err := authService.GetUserByID(ctx, "user:missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_ValidateAccessToken_RoundTrip(t *testing.T) {
	authService, _ := setupAuthService(t)
	ctx := context.Background()

	result, err := authService.Register(ctx, RegisterRequest{
		Username: "builder",
		Email:    "builder@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	claims, err := authService.ValidateAccessToken(result.Token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if claims.UserID != result.User.ID {
		t.Errorf("expected user ID %s, got %s", result.User.ID, claims.UserID)
	}
	if claims.Username != "builder" {
		t.Errorf("expected username builder, got %s", claims.Username)
	}
}

func TestAuthService_ValidateAccessToken_Garbage(t *testing.T) {
	authService, _ := setupAuthService(t)

	_, err := authService.ValidateAccessToken("not.a.token")
	if err == nil {
		t.Error("expected error for garbage token")
	}
}
