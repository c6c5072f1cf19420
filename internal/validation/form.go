package validation

import (
	"fmt"
	"net/mail"
	"regexp"
	"sort"
	"strings"
)

// OTPPattern код подтверждения: 4-6 цифр
var OTPPattern = regexp.MustCompile(`^[0-9]{4,6}$`)

// Имена полей форм
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldUsername        = "username"
	FieldOTP             = "otp"
	FieldUserID          = "userId"
)

// Errors содержит ошибки валидации по полям формы.
// Возвращается до любого сетевого вызова, чтобы экран показал ошибку рядом с полем.
type Errors map[string]string

// Error собирает ошибки в одну строку в стабильном порядке полей
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field возвращает ошибку конкретного поля
func (e Errors) Field(name string) string {
	return e[name]
}

// ErrOrNil возвращает nil, если ошибок нет
func (e Errors) ErrOrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e Errors) check(field string, err error) {
	if err != nil {
		e[field] = err.Error()
	}
}

// ValidateEmail проверяет формат email
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email cannot be empty")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || !strings.Contains(email[strings.LastIndex(email, "@")+1:], ".") {
		return fmt.Errorf("email is not valid")
	}

	return nil
}

// ValidateOTP проверяет формат кода OTP
func ValidateOTP(otp string) error {
	if otp == "" {
		return fmt.Errorf("code cannot be empty")
	}
	if !OTPPattern.MatchString(otp) {
		return fmt.Errorf("code must be 4-6 digits")
	}
	return nil
}

// LoginForm проверяет форму входа
func LoginForm(email, password string) error {
	errs := Errors{}
	errs.check(FieldEmail, ValidateEmail(email))
	if password == "" {
		errs[FieldPassword] = "password cannot be empty"
	}
	return errs.ErrOrNil()
}

// RegisterForm проверяет форму регистрации
func RegisterForm(username, email, password, confirmPassword string) error {
	errs := Errors{}
	errs.check(FieldUsername, ValidateUsername(username))
	errs.check(FieldEmail, ValidateEmail(email))
	errs.check(FieldPassword, ValidatePassword(password))
	if confirmPassword != password {
		errs[FieldConfirmPassword] = "passwords do not match"
	}
	return errs.ErrOrNil()
}

// OTPForm проверяет форму подтверждения кода
func OTPForm(userID, otp string) error {
	errs := Errors{}
	if userID == "" {
		errs[FieldUserID] = "user id cannot be empty"
	}
	errs.check(FieldOTP, ValidateOTP(otp))
	return errs.ErrOrNil()
}

// ResetPasswordForm проверяет форму нового пароля
func ResetPasswordForm(email, otp, password, confirmPassword string) error {
	errs := Errors{}
	errs.check(FieldEmail, ValidateEmail(email))
	errs.check(FieldOTP, ValidateOTP(otp))
	errs.check(FieldPassword, ValidatePassword(password))
	if confirmPassword != password {
		errs[FieldConfirmPassword] = "passwords do not match"
	}
	return errs.ErrOrNil()
}
