package usecase

import (
	stderrors "errors"
	"net/http"

	"github.com/restaurant-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

// logStoreError пишет в лог только внутренние ошибки; 4xx - штатный ответ
func logStoreError(logger *zap.Logger, msg string, err error, fields ...zap.Field) {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) && appErr.StatusCode < http.StatusInternalServerError {
		return
	}
	logger.Error(msg, append(fields, zap.Error(err))...)
}

// nonNil - пустой результат сериализуется как [], а не null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
