package handlers

import (
	"ecowsco/internal/services"
	"errors"
	"net/http"
	"strings"
)

type httpError struct {
	Status  int
	Message string
}

// mapError переводит ошибку сервиса в статус и текст для пользователя.
// Детали хранилища наружу не выдаются.
func mapError(err error) httpError {
	switch {
	case errors.Is(err, services.ErrConflict):
		return httpError{http.StatusConflict, "Error: Email or store name may already exist."}
	case errors.Is(err, services.ErrInvalidCredentials):
		return httpError{http.StatusUnauthorized, "Invalid credentials"}
	case errors.Is(err, services.ErrInvalidToken):
		return httpError{http.StatusBadRequest, "Invalid or expired token"}
	case errors.Is(err, services.ErrNotFound):
		return httpError{http.StatusNotFound, "Not found"}
	case errors.Is(err, services.ErrValidation):
		msg := strings.TrimPrefix(err.Error(), services.ErrValidation.Error()+": ")
		return httpError{http.StatusBadRequest, msg}
	case errors.Is(err, services.ErrStoreUnavailable):
		return httpError{http.StatusServiceUnavailable, "Service temporarily unavailable"}
	default:
		return httpError{http.StatusInternalServerError, "internal server error"}
	}
}
