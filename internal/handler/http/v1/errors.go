package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/animal_safety_tracker/internal/models"
	"github.com/sirupsen/logrus"
)

// respondError переводит ошибки сервисов в HTTP-ответ.
// Текст ошибок хранилища наружу не уходит.
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	status, body := errorResponse(err)
	if status == http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Warn("Request rejected")
	}
	c.JSON(status, body)
}

func errorResponse(err error) (int, gin.H) {
	var (
		fieldErr    *models.FieldError
		notFoundErr *models.NotFoundError
		authErr     *models.AuthorizationError
	)
	switch {
	case errors.As(err, &fieldErr):
		return http.StatusBadRequest, gin.H{"error": fieldErr.Error(), "field": fieldErr.Field}
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, gin.H{"error": notFoundErr.Error()}
	case errors.As(err, &authErr):
		return http.StatusForbidden, gin.H{"error": authErr.Error()}
	default:
		return http.StatusInternalServerError, gin.H{"error": "internal server error"}
	}
}
