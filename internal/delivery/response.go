package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	msgServerError        = "Erreur serveur"
	msgInvalidRequestBody = "Corps de requête invalide"
	msgInvalidCategoryRef = "La catégorie spécifiée n'existe pas"
)

type MessageResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, MessageResponse{
		Message: message,
		Data:    data,
	})
}

func FailResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound), errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCategoryReference), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondError writes the mapped status and a client-safe message. Store
// failures collapse to the generic server error; details stay in the logs.
func respondError(c *gin.Context, err error, notFoundMessage string) {
	status := mapErrorToStatus(err)
	msg := msgServerError
	switch {
	case errors.Is(err, domain.ErrInvalidCategoryReference):
		msg = msgInvalidCategoryRef
	case errors.Is(err, domain.ErrInvalidInput):
		msg = msgInvalidRequestBody
	case status == http.StatusNotFound:
		msg = notFoundMessage
	}
	_ = c.Error(err)
	FailResponse(c, status, msg)
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
