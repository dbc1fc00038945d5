package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"coachbooking/internal/shared/config"
	"coachbooking/internal/users"
)

type fakeUserRepo struct {
	byEmail map[string]*users.User
	byID    map[string]*users.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*users.User),
		byID:    make(map[string]*users.User),
	}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *users.User) error {
	user.ID = uuid.New()
	f.byEmail[user.Email] = user
	f.byID[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*users.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, ErrUserNotFound
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id string) (*users.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, ErrUserNotFound
}

func (f *fakeUserRepo) ListUsers(context.Context) ([]users.User, error) {
	var out []users.User
	for _, u := range f.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateUserPassword(_ context.Context, userID, hashedPassword string) error {
	u, ok := f.byID[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.Password = hashedPassword
	return nil
}

func (f *fakeUserRepo) UpdateUserRole(_ context.Context, userID string, role users.Role) error {
	u, ok := f.byID[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func register(t *testing.T, svc Service) *AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), &RegisterRequest{
		FirstName: "Minh",
		LastName:  "Nguyen",
		Email:     "minh@example.com",
		Password:  "password123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testConfig())
	reg := register(t, svc)

	if reg.User.Role != string(users.RoleCustomer) {
		t.Errorf("self-registered role = %s, want CUSTOMER", reg.User.Role)
	}
	if reg.AccessToken == "" || reg.RefreshToken == "" {
		t.Fatal("registration should return a token pair")
	}

	login, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "minh@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.User.ID != reg.User.ID {
		t.Error("login should resolve the registered account")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testConfig())
	register(t, svc)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "minh@example.com",
		Password:  "different",
	})
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Errorf("err = %v, want ErrUserAlreadyExists", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testConfig())
	register(t, svc)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "minh@example.com",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}

	// Unknown accounts get the same error as wrong passwords
	_, err = svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestValidateAccessToken(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testConfig())
	reg := register(t, svc)

	claims, err := svc.ValidateToken(reg.AccessToken)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Type != "access" {
		t.Errorf("token type = %s, want access", claims.Type)
	}
	if claims.UserID != reg.User.ID {
		t.Error("claims should carry the user id")
	}

	if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token err = %v, want ErrInvalidToken", err)
	}
}

func TestRefreshToken(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testConfig())
	reg := register(t, svc)

	pair, err := svc.RefreshToken(context.Background(), reg.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("refresh should mint a new token pair")
	}

	// An access token must not be accepted where a refresh token is required
	if _, err := svc.RefreshToken(context.Background(), reg.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("access-as-refresh err = %v, want ErrInvalidToken", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testConfig())
	reg := register(t, svc)

	err := svc.ChangePassword(context.Background(), reg.User.ID, &ChangePasswordRequest{
		CurrentPassword: "password123",
		NewPassword:     "new-password",
	})
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, err := svc.Login(context.Background(), &LoginRequest{Email: "minh@example.com", Password: "password123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("old password should no longer work")
	}
	if _, err := svc.Login(context.Background(), &LoginRequest{Email: "minh@example.com", Password: "new-password"}); err != nil {
		t.Errorf("new password login failed: %v", err)
	}
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testConfig())
	reg := register(t, svc)

	err := svc.ChangePassword(context.Background(), reg.User.ID, &ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestUpdateUserRole(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testConfig())
	reg := register(t, svc)

	updated, err := svc.UpdateUserRole(context.Background(), reg.User.ID, &UpdateUserRoleRequest{Role: "ADMIN"})
	if err != nil {
		t.Fatalf("UpdateUserRole: %v", err)
	}
	if updated.Role != string(users.RoleAdmin) {
		t.Errorf("role = %s, want ADMIN", updated.Role)
	}

	if _, err := svc.UpdateUserRole(context.Background(), reg.User.ID, &UpdateUserRoleRequest{Role: "SUPERUSER"}); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("err = %v, want ErrInvalidRole", err)
	}
}
