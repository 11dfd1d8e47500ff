package usecase

import (
	"context"
	"net/http"
	"net/mail"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// AuthUsecase は会員登録・ログイン・プロフィール更新と管理者ログイン。
type AuthUsecase struct {
	users         repo.UserRepository
	adminPassword string
}

func NewAuthUsecase(users repo.UserRepository, adminPassword string) *AuthUsecase {
	return &AuthUsecase{users: users, adminPassword: adminPassword}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  string
}

type ProfileOutput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Register は新規ユーザーを作る。メール重複は409。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) error {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	if name == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid email format")
	}
	if len(in.Password) < 8 {
		return NewHTTPError(http.StatusBadRequest, "password too short")
	}
	if strings.TrimSpace(in.Address) == "" {
		return NewHTTPError(http.StatusBadRequest, "address is required")
	}

	existing, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if existing != nil {
		return NewHTTPError(http.StatusConflict, "email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "hash error")
	}

	if err := u.users.Create(ctx, &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Address:      strings.TrimSpace(in.Address),
	}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return nil
}

// Login はメールとパスワードを検証してユーザーを返す。
// どちらが違っても同じエラーにする。
func (u *AuthUsecase) Login(ctx context.Context, email string, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}

	return user, nil
}

// AdminLogin は環境変数のパスワードと照合する。
func (u *AuthUsecase) AdminLogin(password string) bool {
	return password != "" && password == u.adminPassword
}

func (u *AuthUsecase) GetProfile(ctx context.Context, userID int64) (ProfileOutput, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return ProfileOutput{}, ErrUserNotFound
	}

	return ProfileOutput{
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
	}, nil
}

type UpdateProfileInput struct {
	Name    string
	Email   string
	Address string
	// 空なら変更しない
	Password string
}

// UpdateProfile は名前・メール・住所を更新する。
// パスワードは入力があったときだけ更新する。
func (u *AuthUsecase) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if user == nil {
		return ErrUserNotFound
	}

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)

	if name == "" {
		return NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid email format")
	}
	if strings.TrimSpace(in.Address) == "" {
		return NewHTTPError(http.StatusBadRequest, "address is required")
	}

	user.Name = name
	user.Email = email
	user.Address = strings.TrimSpace(in.Address)

	if in.Password != "" {
		if len(in.Password) < 8 {
			return NewHTTPError(http.StatusBadRequest, "password too short")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "hash error")
		}
		user.PasswordHash = string(hash)
	}

	if err := u.users.Update(ctx, user); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
