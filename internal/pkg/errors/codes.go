package errors

import "net/http"

var (
	ErrValidation = New(
		"VALIDATION_ERROR",
		"Validation failed",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request body",
		http.StatusBadRequest,
	)

	ErrMissingToken = New(
		"MISSING_TOKEN",
		"Access denied. No token provided.",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = New(
		"INVALID_TOKEN",
		"Invalid or expired token.",
		http.StatusUnauthorized,
	)

	// Неверные учётные данные отдаются как 400 с одним и тем же текстом
	// для неизвестного email и неверного пароля.
	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password.",
		http.StatusBadRequest,
	)

	ErrUserExists = New(
		"USER_EXISTS",
		"User already exists with this email.",
		http.StatusBadRequest,
	)

	ErrRestaurantNotFound = New(
		"RESTAURANT_NOT_FOUND",
		"Restaurant not found",
		http.StatusNotFound,
	)

	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
