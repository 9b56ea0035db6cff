package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	repo "warehouse/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// storeError はrepo層のエラーをHTTPエラーへ写す。
// 消えた行は404、書き込み競合は409、参照切れは400、想定外は500。
func storeError(log *zap.Logger, op string, err error) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, repo.ErrConflict):
		return NewHTTPError(http.StatusConflict, "simultaneous attempt to modify entity")
	case errors.Is(err, repo.ErrForeignKey):
		return NewHTTPError(http.StatusBadRequest, "referenced entity does not exist")
	case errors.Is(err, repo.ErrNoRowsAffected):
		log.Error(op+" affected no rows", zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, "a problem happened while handling your request")
	default:
		log.Error(op+" failed", zap.Error(err))
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
}
