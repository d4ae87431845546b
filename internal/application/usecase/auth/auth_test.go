// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/cakebook/backend/internal/application/adapter"
	"github.com/cakebook/backend/internal/domain/entity"
	domainerror "github.com/cakebook/backend/internal/domain/error"
)

// fakeUserRepo keeps users in a map keyed by email.
type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.users[email], nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

// fakePasswordService hashes by prefixing, so tests can compare plainly.
type fakePasswordService struct{}

func (s *fakePasswordService) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (s *fakePasswordService) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

// fakeTokenService issues predictable tokens and tracks invalidation.
type fakeTokenService struct {
	pairs       int
	invalidated map[string]bool
	claims      map[string]*adapter.TokenClaims
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{
		invalidated: make(map[string]bool),
		claims:      make(map[string]*adapter.TokenClaims),
	}
}

func (s *fakeTokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	s.pairs++
	refresh := "refresh-" + uuid.NewString()
	s.claims[refresh] = &adapter.TokenClaims{
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	return &adapter.TokenPair{
		AccessToken:  "access-" + uuid.NewString(),
		RefreshToken: refresh,
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not used in these tests")
}

func (s *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims, ok := s.claims[token]
	if !ok {
		return nil, errors.New("unknown refresh token")
	}
	return claims, nil
}

func (s *fakeTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	s.invalidated[token] = true
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	_, known := s.claims[token]
	return known && !s.invalidated[token], nil
}

func TestRegisterUser(t *testing.T) {
	t.Run("successful registration returns tokens", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(userRepo, &fakePasswordService{}, newFakeTokenService())

		output, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "Baker@Example.com",
			Password: "sugar-and-spice",
			Name:     "The Baker",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a token pair")
		}
		// Email is normalized to lower case.
		if output.Email != "baker@example.com" {
			t.Errorf("expected normalized email, got %s", output.Email)
		}
		if userRepo.users["baker@example.com"] == nil {
			t.Error("expected the user to be persisted under the normalized email")
		}
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		userRepo := newFakeUserRepo()
		uc := NewRegisterUserUseCase(userRepo, &fakePasswordService{}, newFakeTokenService())

		input := RegisterUserInput{Email: "a@b.com", Password: "longenough", Name: "A"}
		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := uc.Execute(context.Background(), input)
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeEmailTaken {
			t.Fatalf("expected email-taken error, got: %v", err)
		}
	})

	t.Run("short password is rejected", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "a@b.com",
			Password: "short",
			Name:     "A",
		})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeWeakPassword {
			t.Fatalf("expected weak-password error, got: %v", err)
		}
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		uc := NewRegisterUserUseCase(newFakeUserRepo(), &fakePasswordService{}, newFakeTokenService())

		_, err := uc.Execute(context.Background(), RegisterUserInput{
			Email:    "not-an-email",
			Password: "longenough",
			Name:     "A",
		})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidEmail {
			t.Fatalf("expected invalid-email error, got: %v", err)
		}
	})
}

func TestLoginUser(t *testing.T) {
	setup := func(t *testing.T) (*LoginUserUseCase, *fakeUserRepo) {
		t.Helper()
		userRepo := newFakeUserRepo()
		register := NewRegisterUserUseCase(userRepo, &fakePasswordService{}, newFakeTokenService())
		if _, err := register.Execute(context.Background(), RegisterUserInput{
			Email:    "baker@example.com",
			Password: "sugar-and-spice",
			Name:     "The Baker",
		}); err != nil {
			t.Fatalf("setup failed: %v", err)
		}
		return NewLoginUserUseCase(userRepo, &fakePasswordService{}, newFakeTokenService()), userRepo
	}

	t.Run("valid credentials return tokens", func(t *testing.T) {
		uc, _ := setup(t)

		output, err := uc.Execute(context.Background(), LoginUserInput{
			Email:    "BAKER@example.com",
			Password: "sugar-and-spice",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken == "" || output.RefreshToken == "" {
			t.Error("expected a token pair")
		}
	})

	t.Run("wrong password and unknown email yield the same error", func(t *testing.T) {
		uc, _ := setup(t)

		_, errWrongPassword := uc.Execute(context.Background(), LoginUserInput{
			Email:    "baker@example.com",
			Password: "wrong",
		})
		_, errUnknownEmail := uc.Execute(context.Background(), LoginUserInput{
			Email:    "stranger@example.com",
			Password: "sugar-and-spice",
		})

		var first, second *domainerror.AuthError
		if !errors.As(errWrongPassword, &first) || !errors.As(errUnknownEmail, &second) {
			t.Fatalf("expected auth errors, got %v and %v", errWrongPassword, errUnknownEmail)
		}
		if first.Code != second.Code || first.Message != second.Message {
			t.Error("credential errors must be indistinguishable")
		}
	})
}

func TestRefreshToken(t *testing.T) {
	t.Run("rotation invalidates the old token", func(t *testing.T) {
		tokenService := newFakeTokenService()
		userID := uuid.New()
		pair, _ := tokenService.GenerateTokenPair(context.Background(), userID, "a@b.com")

		uc := NewRefreshTokenUseCase(tokenService)
		output, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.RefreshToken == pair.RefreshToken {
			t.Error("expected a new refresh token")
		}
		if !tokenService.invalidated[pair.RefreshToken] {
			t.Error("expected the old refresh token to be invalidated")
		}

		// Using the rotated-out token again fails.
		_, err = uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidRefreshToken {
			t.Fatalf("expected invalid-refresh-token error, got: %v", err)
		}
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(newFakeTokenService())

		_, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: "bogus"})
		var authErr *domainerror.AuthError
		if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidRefreshToken {
			t.Fatalf("expected invalid-refresh-token error, got: %v", err)
		}
	})
}

func TestLogoutUser(t *testing.T) {
	t.Run("invalidates the refresh token", func(t *testing.T) {
		tokenService := newFakeTokenService()
		pair, _ := tokenService.GenerateTokenPair(context.Background(), uuid.New(), "a@b.com")

		uc := NewLogoutUserUseCase(tokenService)
		if err := uc.Execute(context.Background(), LogoutUserInput{RefreshToken: pair.RefreshToken}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !tokenService.invalidated[pair.RefreshToken] {
			t.Error("expected the refresh token to be invalidated")
		}
	})

	t.Run("empty token is a no-op", func(t *testing.T) {
		uc := NewLogoutUserUseCase(newFakeTokenService())
		if err := uc.Execute(context.Background(), LogoutUserInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
