package cli

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/iudanet/minahasa-guide/internal/catalog"
	"github.com/iudanet/minahasa-guide/internal/client/api"
	"github.com/iudanet/minahasa-guide/internal/client/auth"
	"github.com/iudanet/minahasa-guide/internal/client/bookmarks"
	"github.com/iudanet/minahasa-guide/internal/client/session"
	"github.com/iudanet/minahasa-guide/internal/client/storage"
	"github.com/iudanet/minahasa-guide/internal/validation"
)

// userMessage переводит ошибку в текст для пользователя
func userMessage(err error) string {
	var (
		fieldErrs validation.Errors
		netErr    *api.NetworkError
		serverErr *api.ServerError
		opErr     *storage.OpError
	)

	switch {
	case errors.As(err, &fieldErrs):
		return formatFieldErrors(fieldErrs)
	case errors.As(err, &netErr):
		return "Could not reach the server. Check your connection and try again."
	case errors.As(err, &serverErr):
		// Сообщение сервера показываем как есть
		return serverErr.Error()
	case errors.Is(err, session.ErrNoSession):
		return "You are not logged in. Run 'guide login' first."
	case errors.Is(err, auth.ErrNoPendingReset):
		return "No password reset in progress. Run 'guide forgot-password' first."
	case errors.Is(err, catalog.ErrItemNotFound):
		return "No such place in the guide."
	case errors.Is(err, bookmarks.ErrNotInitialized), errors.Is(err, bookmarks.ErrDisposed):
		return "Saved places are not available right now."
	case errors.As(err, &opErr):
		return "Could not save your changes on this device."
	default:
		return err.Error()
	}
}

// formatFieldErrors выводит ошибки формы по одной на строку
func formatFieldErrors(errs validation.Errors) string {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  %s: %s", field, errs[field])
	}
	return b.String()
}

// fail оборачивает ошибку сообщением для пользователя, исходная ошибка доступна через errors.Is/As
func fail(err error) error {
	if err == nil {
		return nil
	}
	return &displayError{err: err, msg: userMessage(err)}
}

type displayError struct {
	err error
	msg string
}

func (e *displayError) Error() string {
	return e.msg
}

func (e *displayError) Unwrap() error {
	return e.err
}
