package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iudanet/minahasa-guide/internal/client/api"
	"github.com/iudanet/minahasa-guide/internal/client/session"
	"github.com/iudanet/minahasa-guide/internal/validation"
	pkgapi "github.com/iudanet/minahasa-guide/pkg/api"
)

// ErrNoPendingReset сброс пароля не был запрошен
var ErrNoPendingReset = errors.New("no pending password reset, request one first")

// SessionStore хранит токен и профиль пользователя на устройстве
type SessionStore interface {
	Save(ctx context.Context, token string, user pkgapi.User) error
	User(ctx context.Context) (*pkgapi.User, error)
	Clear(ctx context.Context) error
	SavePendingReset(ctx context.Context, reset session.PendingReset) error
	PendingReset(ctx context.Context) (*session.PendingReset, error)
	ClearPendingReset(ctx context.Context) error
}

// Service предоставляет функции авторизации.
// Проверяет формы до сетевого вызова, вызывает API и сохраняет результат.
type Service struct {
	apiClient api.ClientAPI
	sessions  SessionStore
	logger    *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(apiClient api.ClientAPI, sessions SessionStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
	}
}

// RegisterForm данные формы регистрации
type RegisterForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register регистрирует нового пользователя.
// Возвращает userID, который нужен для подтверждения OTP.
func (s *Service) Register(ctx context.Context, form RegisterForm) (string, error) {
	email := normalizeEmail(form.Email)
	if err := validation.RegisterForm(form.Username, email, form.Password, form.ConfirmPassword); err != nil {
		return "", err
	}

	resp, err := s.apiClient.Register(ctx, pkgapi.RegisterRequest{
		Username: form.Username,
		Email:    email,
		Password: form.Password,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "registration failed", "error", err)
		return "", err
	}
	if resp.UserID == "" {
		return "", fmt.Errorf("registration succeeded but server returned no user id")
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", resp.UserID)
	return resp.UserID, nil
}

// VerifyOTP подтверждает email кодом из письма
func (s *Service) VerifyOTP(ctx context.Context, userID, otp string) error {
	otp = strings.TrimSpace(otp)
	if err := validation.OTPForm(userID, otp); err != nil {
		return err
	}

	resp, err := s.apiClient.VerifyOTP(ctx, pkgapi.VerifyOTPRequest{UserID: userID, OTP: otp})
	if err != nil {
		return err
	}
	if !resp.Success {
		return failure(resp.Message, "verification failed")
	}

	s.logger.InfoContext(ctx, "otp verified", "user_id", userID)
	return nil
}

// ResendOTP запрашивает новый код. Это отдельное действие пользователя, а не повтор.
func (s *Service) ResendOTP(ctx context.Context, userID string) error {
	if userID == "" {
		return validation.Errors{validation.FieldUserID: "user id cannot be empty"}
	}

	resp, err := s.apiClient.ResendOTP(ctx, pkgapi.ResendOTPRequest{UserID: userID})
	if err != nil {
		return err
	}
	if !resp.Success {
		return failure(resp.Message, "could not resend code")
	}
	return nil
}

// Login выполняет вход и сохраняет token и user в хранилище устройства
func (s *Service) Login(ctx context.Context, email, password string) (*pkgapi.User, error) {
	email = normalizeEmail(email)
	if err := validation.LoginForm(email, password); err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.logger.WarnContext(ctx, "login failed", "error", err)
		return nil, err
	}

	if err := s.sessions.Save(ctx, resp.Token, resp.User); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", "user_id", resp.User.ID)
	return &resp.User, nil
}

// Logout удаляет локальные данные сессии. Сервер не уведомляется.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("failed to delete local session: %w", err)
	}
	return nil
}

// CurrentUser возвращает профиль из кеша или session.ErrNoSession
func (s *Service) CurrentUser(ctx context.Context) (*pkgapi.User, error) {
	return s.sessions.User(ctx)
}

// RequestPasswordReset запрашивает OTP для сброса пароля и запоминает токен сброса
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if err := validation.ValidateEmail(email); err != nil {
		return validation.Errors{validation.FieldEmail: err.Error()}
	}

	resp, err := s.apiClient.RequestPasswordReset(ctx, pkgapi.ForgotPasswordRequest{Email: email})
	if err != nil {
		return err
	}

	if err := s.sessions.SavePendingReset(ctx, session.PendingReset{Email: email, Token: resp.Token}); err != nil {
		return fmt.Errorf("failed to save reset token: %w", err)
	}
	return nil
}

// ResetForm данные формы нового пароля
type ResetForm struct {
	OTP             string
	NewPassword     string
	ConfirmPassword string
}

// ResetPassword подтверждает сброс пароля для ранее запрошенного email
func (s *Service) ResetPassword(ctx context.Context, form ResetForm) error {
	pending, err := s.sessions.PendingReset(ctx)
	if err != nil {
		return fmt.Errorf("failed to read reset token: %w", err)
	}
	if pending == nil {
		return ErrNoPendingReset
	}

	otp := strings.TrimSpace(form.OTP)
	if err := validation.ResetPasswordForm(pending.Email, otp, form.NewPassword, form.ConfirmPassword); err != nil {
		return err
	}

	resp, err := s.apiClient.ResetPassword(ctx, pkgapi.ResetPasswordRequest{
		Email:       pending.Email,
		Token:       pending.Token,
		OTP:         otp,
		NewPassword: form.NewPassword,
	})
	if err != nil {
		return err
	}
	if !resp.Success {
		return failure(resp.Message, "password reset failed")
	}

	if err := s.sessions.ClearPendingReset(ctx); err != nil {
		s.logger.WarnContext(ctx, "failed to clear reset token", "error", err)
	}
	return nil
}

// PendingResetEmail возвращает email, для которого запрошен сброс
func (s *Service) PendingResetEmail(ctx context.Context) (string, error) {
	pending, err := s.sessions.PendingReset(ctx)
	if err != nil {
		return "", err
	}
	if pending == nil {
		return "", ErrNoPendingReset
	}
	return pending.Email, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func failure(message, fallback string) error {
	if message != "" {
		return errors.New(message)
	}
	return errors.New(fallback)
}
