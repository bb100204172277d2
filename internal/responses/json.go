package responses

import (
	"log"
	"net/http"

	"sheetbase/internal/apperrors"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := APIResponse{
		Status:  "error",
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}

// FromError maps an error kind to a status and a caller-safe message.
// Persistence and structure failures are logged with their cause and
// surfaced generically.
func FromError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	message := apperrors.UserMessage(err)

	switch kind {
	case apperrors.KindValidation:
		Fail(c, http.StatusBadRequest, nil, message)
	case apperrors.KindParse:
		Fail(c, http.StatusUnprocessableEntity, nil, message)
	case apperrors.KindAuthorization:
		Fail(c, http.StatusForbidden, nil, message)
	case apperrors.KindNotFound:
		Fail(c, http.StatusNotFound, nil, message)
	case apperrors.KindStructure, apperrors.KindPersistence:
		log.Printf("%s error: %v", kind, err)
		Fail(c, http.StatusInternalServerError, nil, message)
	default:
		log.Printf("unclassified error: %v", err)
		Fail(c, http.StatusInternalServerError, nil, "internal error")
	}
}
