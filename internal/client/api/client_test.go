package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/minahasa-guide/pkg/api"
)

// memoryTokens имитирует хранилище токена, которое меняется между вызовами
type memoryTokens struct {
	token string
	mu    sync.Mutex
}

func (m *memoryTokens) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memoryTokens) set(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
}

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/", nil)

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080", client.BaseURL())
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)

	client = NewClient("http://localhost:8080", nil, WithTimeout(3*time.Second))
	assert.Equal(t, 3*time.Second, client.httpClient.Timeout)
}

// TestClient_Login проверяет успешный логин
func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "t@t.com", req.Email)
		assert.Equal(t, "secret1", req.Password)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"token":"abc","user":{"id":"1","username":"Test","email":"t@t.com"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, &memoryTokens{})

	resp, err := client.Login(context.Background(), api.LoginRequest{Email: "t@t.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Token)
	assert.Equal(t, api.User{ID: "1", Username: "Test", Email: "t@t.com"}, resp.User)
}

// TestClient_TokenReadPerCall проверяет, что токен читается заново на каждый запрос
func TestClient_TokenReadPerCall(t *testing.T) {
	var (
		mu      sync.Mutex
		headers []string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		headers = append(headers, r.Header.Get("Authorization"))
		mu.Unlock()

		if r.URL.Path == "/api/auth/login" {
			_, _ = w.Write([]byte(`{"token":"abc","user":{"id":"1","username":"Test","email":"t@t.com"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	tokens := &memoryTokens{}
	client := NewClient(server.URL, tokens)
	ctx := context.Background()

	resp, err := client.Login(ctx, api.LoginRequest{Email: "t@t.com", Password: "secret1"})
	require.NoError(t, err)

	// Вызывающий код сохраняет токен сам
	tokens.set(resp.Token)

	_, err = client.ResendOTP(ctx, api.ResendOTPRequest{UserID: "1"})
	require.NoError(t, err)

	// Logout: токен удален
	tokens.set("")
	_, err = client.ResendOTP(ctx, api.ResendOTPRequest{UserID: "1"})
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, headers, 3)
	assert.Equal(t, "", headers[0])
	assert.Equal(t, "Bearer abc", headers[1])
	assert.Equal(t, "", headers[2])
}

// TestClient_TokenSourceError проверяет, что ошибка чтения токена не прерывает запрос
func TestClient_TokenSourceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	tokens := TokenSourceFunc(func(ctx context.Context) (string, error) {
		return "", errors.New("storage is closed")
	})
	client := NewClient(server.URL, tokens)

	resp, err := client.ResendOTP(context.Background(), api.ResendOTPRequest{UserID: "1"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

// TestClient_Login_Error проверяет обработку ошибок при логине
func TestClient_Login_Error(t *testing.T) {
	tests := []struct {
		kind           error
		name           string
		body           string
		expectedErrMsg string
		statusCode     int
	}{
		{
			name:           "Invalid credentials",
			statusCode:     http.StatusUnauthorized,
			body:           `{"message":"Invalid credentials"}`,
			expectedErrMsg: "Invalid credentials",
			kind:           ErrInvalidCredentials,
		},
		{
			name:           "Error field only",
			statusCode:     http.StatusForbidden,
			body:           `{"error":"account not verified"}`,
			expectedErrMsg: "account not verified",
			kind:           ErrInvalidCredentials,
		},
		{
			name:           "Internal server error",
			statusCode:     http.StatusInternalServerError,
			body:           "Internal Server Error",
			expectedErrMsg: "request failed with status 500",
			kind:           ErrServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil)

			resp, err := client.Login(context.Background(), api.LoginRequest{Email: "t@t.com", Password: "secret1"})

			require.Error(t, err)
			assert.Nil(t, resp)
			assert.Equal(t, tt.expectedErrMsg, err.Error())
			assert.ErrorIs(t, err, tt.kind)

			var serverErr *ServerError
			require.ErrorAs(t, err, &serverErr)
			assert.Equal(t, tt.statusCode, serverErr.StatusCode)
			assert.Equal(t, "login", serverErr.Op)
		})
	}
}

// TestClient_Login_MalformedBody проверяет ответ 200 с битым JSON
func TestClient_Login_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Login(context.Background(), api.LoginRequest{Email: "t@t.com", Password: "secret1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)
	assert.Contains(t, err.Error(), "malformed response")
}

// TestClient_Login_MissingToken проверяет успешный статус без токена
func TestClient_Login_MissingToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"id":"1"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Login(context.Background(), api.LoginRequest{Email: "t@t.com", Password: "secret1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServer)
}

// TestClient_Timeout проверяет, что таймаут превращается в NetworkError
func TestClient_Timeout(t *testing.T) {
	done := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()
	defer close(done)

	client := NewClient(server.URL, nil, WithTimeout(50*time.Millisecond))

	_, err := client.Login(context.Background(), api.LoginRequest{Email: "t@t.com", Password: "secret1"})
	require.Error(t, err)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, "login", netErr.Op)
	assert.Contains(t, err.Error(), "connection failed")
}

// TestClient_ConnectionRefused проверяет недоступный сервер
func TestClient_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, nil)

	_, err := client.Register(context.Background(), api.RegisterRequest{Username: "test", Email: "t@t.com", Password: "secret1"})
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

// TestClient_Register проверяет успешную регистрацию
func TestClient_Register(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"username": "testuser", "email": "t@t.com", "password": "secret1"}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"userId":"user-123","message":"OTP sent"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	resp, err := client.Register(context.Background(), api.RegisterRequest{Username: "testuser", Email: "t@t.com", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "user-123", resp.UserID)
	assert.Equal(t, "OTP sent", resp.Message)
}

// TestClient_Register_Duplicate проверяет ошибку валидации на сервере
func TestClient_Register_Duplicate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message":"Email already registered"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)

	_, err := client.Register(context.Background(), api.RegisterRequest{Username: "testuser", Email: "t@t.com", Password: "secret1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Email already registered", err.Error())
}

// TestClient_VerifyOTP проверяет подтверждение OTP
func TestClient_VerifyOTP(t *testing.T) {
	tests := []struct {
		kind       error
		name       string
		body       string
		statusCode int
		success    bool
	}{
		{name: "success", statusCode: http.StatusOK, body: `{"success":true,"message":"verified"}`, success: true},
		{name: "success without flag", statusCode: http.StatusOK, body: `{"message":"verified"}`, success: true},
		{name: "empty body", statusCode: http.StatusNoContent, body: ``, success: true},
		{name: "wrong code", statusCode: http.StatusBadRequest, body: `{"message":"Invalid OTP"}`, kind: ErrInvalidOTP},
		{name: "expired code", statusCode: http.StatusGone, body: `{"message":"OTP expired"}`, kind: ErrInvalidOTP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/auth/verify-otp", r.URL.Path)

				var req api.VerifyOTPRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "user-123", req.UserID)
				assert.Equal(t, "123456", req.OTP)

				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, nil)

			resp, err := client.VerifyOTP(context.Background(), api.VerifyOTPRequest{UserID: "user-123", OTP: "123456"})
			if tt.kind != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.success, resp.Success)
		})
	}
}

// TestClient_PasswordReset проверяет запрос и подтверждение сброса пароля
func TestClient_PasswordReset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/forgot-password":
			var req api.ForgotPasswordRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "t@t.com", req.Email)
			_, _ = w.Write([]byte(`{"token":"reset-token","message":"OTP sent"}`))
		case "/api/auth/reset-password":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "reset-token", body["token"])
			assert.Equal(t, "654321", body["otp"])
			assert.Equal(t, "newsecret", body["newPassword"])
			_, _ = w.Write([]byte(`{"success":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	ctx := context.Background()

	forgot, err := client.RequestPasswordReset(ctx, api.ForgotPasswordRequest{Email: "t@t.com"})
	require.NoError(t, err)
	assert.Equal(t, "reset-token", forgot.Token)

	reset, err := client.ResetPassword(ctx, api.ResetPasswordRequest{
		Email:       "t@t.com",
		Token:       forgot.Token,
		OTP:         "654321",
		NewPassword: "newsecret",
	})
	require.NoError(t, err)
	assert.True(t, reset.Success)
}

// TestClassify проверяет сопоставление статусов и видов ошибок
func TestClassify(t *testing.T) {
	assert.Equal(t, ErrInvalidCredentials, classify(opLogin, http.StatusUnauthorized))
	assert.Equal(t, ErrServer, classify(opLogin, http.StatusBadGateway))
	assert.Equal(t, ErrValidation, classify(opRegister, http.StatusUnprocessableEntity))
	assert.Equal(t, ErrInvalidOTP, classify(opResetPassword, http.StatusBadRequest))
	assert.Equal(t, ErrValidation, classify(opResendOTP, http.StatusTooManyRequests))
	assert.Equal(t, ErrServer, classify(opResendOTP, http.StatusTeapot))
}
