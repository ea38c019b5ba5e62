package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"karondoran-server/internal/config"
	"karondoran-server/internal/consts"
	"karondoran-server/internal/model"
	moduledto "karondoran-server/internal/modules/auth/dto"
	"karondoran-server/internal/platform/crud"
	platformservice "karondoran-server/internal/platform/service"
	"karondoran-server/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

const invalidCredentialsMessage = "Email atau password salah"

// Register creates an admin account. The account starts pending activation
// unless it is the first one or auto activation is switched on.
func (s *Service) Register(ctx context.Context, req moduledto.RegisterRequest) (*model.AdminUser, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if ok, msg := utils.ValidateEmail(email); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(req.Password, req.ConfirmPassword); !ok {
		return nil, platformservice.NewValidationError(msg)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal mendaftarkan akun", err)
	}

	s.registerMu.Lock()
	defer s.registerMu.Unlock()

	_, err = s.userStore.FindByEmail(ctx, email)
	if err == nil {
		return nil, platformservice.NewConflictError("Email sudah terdaftar")
	}
	if !errors.Is(err, crud.ErrNotFound) {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal memeriksa email", err)
	}

	count, err := s.userStore.Count(ctx)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal mendaftarkan akun", err)
	}

	user := &model.AdminUser{
		Email:    email,
		Password: string(hashed),
		FullName: strings.TrimSpace(req.FullName),
		IsActive: count == 0 || s.GetBool(consts.ConfigAutoActivateRegistrations),
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal mendaftarkan akun", err)
	}
	log.Printf("👤 Admin account registered: %s (active=%t)", user.Email, user.IsActive)
	return user, nil
}

// Login checks the credentials and issues a session token. Pending accounts
// are refused even with the right password.
func (s *Service) Login(ctx context.Context, email, password string) (*moduledto.LoginResponse, error) {
	user, err := s.userStore.FindByEmail(ctx, email)
	if errors.Is(err, crud.ErrNotFound) {
		return nil, platformservice.NewUnauthorizedError(invalidCredentialsMessage)
	}
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal masuk", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, platformservice.NewUnauthorizedError(invalidCredentialsMessage)
	}
	if !user.IsActive {
		return nil, platformservice.NewServiceError(platformservice.ErrorCodeAccountPending, "Akun Anda belum diaktifkan oleh administrator")
	}

	duration := time.Duration(config.Get().JWT.ExpirationHours) * time.Hour
	if duration <= 0 {
		duration = 24 * time.Hour
	}
	token, err := utils.GenerateLoginToken(user.ID, user.Email, duration)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal membuat sesi", err)
	}

	return &moduledto.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(duration).Unix(),
		User:      ToUser(user),
	}, nil
}

// Logout revokes the session token until its own expiry.
func (s *Service) Logout(tokenID string, expiresAt time.Time) {
	s.RevokeToken(tokenID, expiresAt)
}

func (s *Service) Me(ctx context.Context, id string) (*moduledto.User, error) {
	user, err := s.userStore.FindByID(ctx, id)
	if errors.Is(err, crud.ErrNotFound) {
		return nil, platformservice.NewUnauthorizedError("Akun tidak ditemukan")
	}
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal memuat akun", err)
	}
	view := ToUser(user)
	return &view, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]moduledto.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal memuat akun", err)
	}
	views := make([]moduledto.User, 0, len(users))
	for i := range users {
		views = append(views, ToUser(&users[i]))
	}
	return views, nil
}

// SetActive activates or suspends an account. An admin cannot suspend their
// own account.
func (s *Service) SetActive(ctx context.Context, actorID, id string, active bool) (*moduledto.User, error) {
	if !active && actorID == id {
		return nil, platformservice.NewForbiddenError("Tidak dapat menonaktifkan akun sendiri")
	}
	user, err := s.userStore.SetActive(ctx, id, active)
	if errors.Is(err, crud.ErrNotFound) {
		return nil, platformservice.NewNotFoundError("Akun tidak ditemukan")
	}
	if err != nil {
		return nil, platformservice.WrapServiceError(platformservice.ErrorCodeInternal, "Gagal memperbarui akun", err)
	}
	view := ToUser(user)
	return &view, nil
}

func ToUser(user *model.AdminUser) moduledto.User {
	return moduledto.User{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		IsActive: user.IsActive,
	}
}
