package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/minahasa-guide/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// DefaultTimeout ограничивает время ожидания ответа сервера
const DefaultTimeout = 10 * time.Second

// Имена операций используются в ошибках, логах и при классификации статусов
const (
	opLogin          = "login"
	opRegister       = "register"
	opVerifyOTP      = "verify-otp"
	opResendOTP      = "resend-otp"
	opForgotPassword = "forgot-password"
	opResetPassword  = "reset-password"
)

// ClientAPI определяет операции удаленного API, которые используют экраны
type ClientAPI interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	VerifyOTP(ctx context.Context, req api.VerifyOTPRequest) (*api.StatusResponse, error)
	ResendOTP(ctx context.Context, req api.ResendOTPRequest) (*api.StatusResponse, error)
	RequestPasswordReset(ctx context.Context, req api.ForgotPasswordRequest) (*api.ForgotPasswordResponse, error)
	ResetPassword(ctx context.Context, req api.ResetPasswordRequest) (*api.StatusResponse, error)
}

// TokenSource возвращает текущий bearer token.
// Пустая строка без ошибки означает, что пользователь не авторизован.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenSourceFunc адаптер для использования функции как TokenSource
type TokenSourceFunc func(ctx context.Context) (string, error)

// Token вызывает f(ctx)
func (f TokenSourceFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// Option настраивает Client
type Option func(*Client)

// WithTimeout задает таймаут запроса
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithLogger задает логгер
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient заменяет HTTP клиент (таймаут берется из переданного клиента)
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// NewClient создает новый API клиент.
// tokens может быть nil, тогда заголовок Authorization не добавляется.
func NewClient(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		logger:  slog.Default(),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL возвращает адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	if err := c.doRequest(ctx, opLogin, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, &ServerError{Op: opLogin, StatusCode: http.StatusOK, Message: "malformed response: missing token", kind: ErrServer}
	}
	return &resp, nil
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, opRegister, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyOTP подтверждает email пользователя кодом OTP
func (c *Client) VerifyOTP(ctx context.Context, req api.VerifyOTPRequest) (*api.StatusResponse, error) {
	return c.doStatus(ctx, opVerifyOTP, "/api/auth/verify-otp", req)
}

// ResendOTP запрашивает повторную отправку OTP
func (c *Client) ResendOTP(ctx context.Context, req api.ResendOTPRequest) (*api.StatusResponse, error) {
	return c.doStatus(ctx, opResendOTP, "/api/auth/resend-otp", req)
}

// RequestPasswordReset запрашивает сброс пароля, сервер отправляет OTP на email
func (c *Client) RequestPasswordReset(ctx context.Context, req api.ForgotPasswordRequest) (*api.ForgotPasswordResponse, error) {
	var resp api.ForgotPasswordResponse
	if err := c.doRequest(ctx, opForgotPassword, http.MethodPost, "/api/auth/forgot-password", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetPassword подтверждает сброс пароля
func (c *Client) ResetPassword(ctx context.Context, req api.ResetPasswordRequest) (*api.StatusResponse, error) {
	return c.doStatus(ctx, opResetPassword, "/api/auth/reset-password", req)
}

// doStatus выполняет запрос, ответ которого - индикатор успеха.
// Если сервер не прислал поле success, успешный статус HTTP считается успехом.
func (c *Client) doStatus(ctx context.Context, op, path string, body any) (*api.StatusResponse, error) {
	var raw struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	if err := c.doRequest(ctx, op, http.MethodPost, path, body, &raw); err != nil {
		return nil, err
	}

	resp := &api.StatusResponse{Success: true, Message: raw.Message}
	if raw.Success != nil {
		resp.Success = *raw.Success
	}
	return resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, op, method, path string, body, result any) error {
	url := c.baseURL + path
	requestID := uuid.New().String()

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Токен читаем на каждый запрос, чтобы не держать устаревший после logout/login
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			c.logger.WarnContext(ctx, "failed to read auth token", "op", op, "error", err)
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "request failed", "op", op, "request_id", requestID, "error", err)
		return &NetworkError{Op: op, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.DebugContext(ctx, "API request",
		"op", op,
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", requestID,
	)

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ServerError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, respBody),
			kind:       classify(op, resp.StatusCode),
		}
	}

	// Декодируем успешный ответ
	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &ServerError{
				Op:         op,
				StatusCode: resp.StatusCode,
				Message:    fmt.Sprintf("malformed response: %v", err),
				kind:       ErrServer,
			}
		}
	}

	return nil
}

// errorMessage достает сообщение сервера: message, затем error, иначе общий текст
func errorMessage(status int, body []byte) string {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Message != "" {
			return errResp.Message
		}
		if errResp.Error != "" {
			return errResp.Error
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}
