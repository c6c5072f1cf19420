package api

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль в открытом виде (передается только по TLS)
}

// User представляет профиль пользователя, который возвращает backend
type User struct {
	ID       string `json:"id"`               // идентификатор пользователя
	Username string `json:"username"`         // username
	Name     string `json:"name,omitempty"`   // отображаемое имя (некоторые ответы отдают name вместо username)
	Email    string `json:"email"`            // email
	Avatar   string `json:"avatar,omitempty"` // URL или data URI аватара
}

// DisplayName возвращает имя для отображения пользователю
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Name
}

// LoginResponse представляет ответ на успешный логин
type LoginResponse struct {
	Token string `json:"token"` // opaque bearer token
	User  User   `json:"user"`  // профиль пользователя
}

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	UserID  string `json:"userId"`            // идентификатор для подтверждения OTP
	Message string `json:"message,omitempty"` // сообщение сервера
}

// VerifyOTPRequest представляет запрос на подтверждение email кодом OTP
type VerifyOTPRequest struct {
	UserID string `json:"userId"`
	OTP    string `json:"otp"`
}

// ResendOTPRequest представляет запрос на повторную отправку OTP
type ResendOTPRequest struct {
	UserID string `json:"userId"`
}

// ForgotPasswordRequest представляет запрос на сброс пароля
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPasswordResponse содержит токен, который нужно передать при подтверждении сброса
type ForgotPasswordResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// ResetPasswordRequest представляет подтверждение сброса пароля
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Token       string `json:"token"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

// StatusResponse представляет ответ-индикатор успеха
type StatusResponse struct {
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`   // код или описание ошибки
	Message string `json:"message,omitempty"` // сообщение для пользователя
}
