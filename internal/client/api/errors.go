package api

import (
	"errors"
	"fmt"
)

// Виды ошибок сервера. ServerError разворачивается в один из них,
// поэтому вызывающий код может проверять errors.Is(err, ErrInvalidOTP).
var (
	// ErrInvalidCredentials неверный email или пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrValidation сервер отклонил данные запроса (например, email уже занят)
	ErrValidation = errors.New("validation failed")

	// ErrInvalidOTP код OTP неверный или просрочен
	ErrInvalidOTP = errors.New("invalid or expired otp")

	// ErrServer ошибка на стороне сервера или некорректный ответ
	ErrServer = errors.New("server error")
)

// NetworkError означает, что ответ от сервера не получен (таймаут, нет соединения)
type NetworkError struct {
	Err error
	Op  string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("connection failed (%s): %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError означает, что сервер ответил, но с ошибкой.
// Error() возвращает сообщение сервера как есть, чтобы его можно было показать пользователю.
type ServerError struct {
	kind       error
	Message    string
	Op         string
	StatusCode int
}

func (e *ServerError) Error() string {
	return e.Message
}

// Unwrap возвращает вид ошибки (ErrInvalidCredentials, ErrValidation, ErrInvalidOTP, ErrServer)
func (e *ServerError) Unwrap() error {
	return e.kind
}

// classify определяет вид ошибки по операции и HTTP статусу
func classify(op string, status int) error {
	if status >= 500 {
		return ErrServer
	}

	switch op {
	case opLogin:
		if status == 400 || status == 401 || status == 403 {
			return ErrInvalidCredentials
		}
	case opRegister, opForgotPassword:
		if status == 400 || status == 409 || status == 422 {
			return ErrValidation
		}
	case opVerifyOTP, opResetPassword:
		if status == 400 || status == 401 || status == 410 {
			return ErrInvalidOTP
		}
		if status == 422 {
			return ErrValidation
		}
	case opResendOTP:
		if status == 400 || status == 404 || status == 429 {
			return ErrValidation
		}
	}

	return ErrServer
}
