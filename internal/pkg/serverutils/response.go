// FILE: internal/pkg/serverutils/response.go
package serverutils

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ApiResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) ApiResponse[T] {
	return ApiResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) fiber.Map {
	return fiber.Map{
		"success": false,
		"code":    code,
		"message": message,
	}
}

// ApiError is a service-level error that already knows its HTTP status.
// Services return these for expected failures; anything else becomes a 500.
type ApiError struct {
	Code    int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewApiError(code int, message string) *ApiError {
	return &ApiError{Code: code, Message: message}
}

func BadRequest(message string) *ApiError {
	return NewApiError(fiber.StatusBadRequest, message)
}

func Unauthorized(message string) *ApiError {
	return NewApiError(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *ApiError {
	return NewApiError(fiber.StatusForbidden, message)
}

func NotFound(message string) *ApiError {
	return NewApiError(fiber.StatusNotFound, message)
}

func BadGateway(message string) *ApiError {
	return NewApiError(fiber.StatusBadGateway, message)
}

func ServiceUnavailable(message string) *ApiError {
	return NewApiError(fiber.StatusServiceUnavailable, message)
}

var validate = validator.New()

// ValidateRequest runs struct tag validation and converts the first failure
// into a 400 ApiError with a readable message.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return BadRequest(fmt.Sprintf("field '%s' failed validation on '%s'", fe.Field(), fe.Tag()))
		}
		return BadRequest(err.Error())
	}
	return nil
}

// ErrorHandlerMiddleware converts errors bubbling out of handlers into JSON
// responses. ApiError keeps its status code, everything else is a 500 with a
// generic message so internals never leak.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var apiErr *ApiError
		if errors.As(err, &apiErr) {
			return ctx.Status(apiErr.Code).JSON(ErrorResponse(apiErr.Code, apiErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "Something went wrong. Please try again."))
	}
}
