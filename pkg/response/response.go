package response

import (
	"encoding/json"
	"net/http"

	"medicita/pkg/apperror"
)

type Response struct {
	Success  bool        `json:"success"`
	Message  string      `json:"message,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Error    interface{} `json:"error,omitempty"`
	Redirect string      `json:"redirect,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, err interface{}) {
	JSON(w, statusCode, Response{
		Success: false,
		Message: message,
		Error:   err,
	})
}

func ValidationError(w http.ResponseWriter, errors interface{}) {
	JSON(w, http.StatusBadRequest, Response{
		Success: false,
		Message: "Validation failed",
		Error:   errors,
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Bad request"
	}
	Error(w, http.StatusBadRequest, message, nil)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message, nil)
}

func Conflict(w http.ResponseWriter, message string) {
	Error(w, http.StatusConflict, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Error(w, http.StatusForbidden, message, nil)
}

// ForbiddenWithRedirect tells the client which view to fall back to
func ForbiddenWithRedirect(w http.ResponseWriter, message, redirect string) {
	if message == "" {
		message = "Forbidden"
	}
	JSON(w, http.StatusForbidden, Response{
		Success:  false,
		Message:  message,
		Redirect: redirect,
	})
}

// FromError writes err with the status code of its apperror type.
// Storage and untyped errors are reported as 500 without their details.
func FromError(w http.ResponseWriter, err error) {
	switch apperror.TypeOf(err) {
	case apperror.TypeValidation:
		Error(w, http.StatusBadRequest, apperror.MessageOf(err), nil)
	case apperror.TypeConflict:
		Conflict(w, apperror.MessageOf(err))
	case apperror.TypeNotFound:
		NotFound(w, apperror.MessageOf(err))
	case apperror.TypeUnauthorized:
		Unauthorized(w, apperror.MessageOf(err))
	default:
		InternalServerError(w, "")
	}
}
