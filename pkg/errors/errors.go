package errors

import (
	"errors"
	"fmt"

	"bakery/domain/closingperiod"
	"bakery/domain/feature"
	"bakery/domain/order"
	"bakery/domain/product"
	"bakery/domain/shared"
	"bakery/domain/user"
)

// ErrorCode 错误码
type ErrorCode string

const (
	// 通用错误码
	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeBadRequest     ErrorCode = "BAD_REQUEST"
	CodeUnauthorized   ErrorCode = "UNAUTHORIZED"
	CodeNotFound       ErrorCode = "NOT_FOUND"
	CodeTooManyRequest ErrorCode = "TOO_MANY_REQUESTS"
	CodeValidation     ErrorCode = "VALIDATION_ERROR"

	// 业务错误码
	CodeInvalidOrder            ErrorCode = "INVALID_ORDER"
	CodeInvalidProduct          ErrorCode = "INVALID_PRODUCT"
	CodeInvalidClosingPeriod    ErrorCode = "INVALID_CLOSING_PERIOD"
	CodeProductOrderingDisabled ErrorCode = "PRODUCT_ORDERING_DISABLED"
	CodeOrderNotFound           ErrorCode = "ORDER_NOT_FOUND"
	CodeProductNotFound         ErrorCode = "PRODUCT_NOT_FOUND"
	CodeClosingPeriodNotFound   ErrorCode = "CLOSING_PERIOD_NOT_FOUND"
	CodeFeatureNotFound         ErrorCode = "FEATURE_NOT_FOUND"
)

// AppError 应用错误
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func BadRequest(message string) *AppError {
	return New(CodeBadRequest, message)
}

func Unauthorized(message string) *AppError {
	return New(CodeUnauthorized, message)
}

func TooManyRequests(message string) *AppError {
	return New(CodeTooManyRequest, message)
}

func Validation(message string) *AppError {
	return New(CodeValidation, message)
}

func Internal(message string) *AppError {
	return New(CodeInternal, message)
}

// Is 检查是否为特定错误码
func Is(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// domainMappings 按顺序匹配，具体哨兵错误在通用类别之前
var domainMappings = []struct {
	target error
	code   ErrorCode
}{
	{user.ErrInvalidUser, CodeUnauthorized},
	{feature.ErrProductOrderingDisabled, CodeProductOrderingDisabled},
	{order.ErrInvalidOrder, CodeInvalidOrder},
	{product.ErrInvalidProduct, CodeInvalidProduct},
	{closingperiod.ErrInvalidClosingPeriod, CodeInvalidClosingPeriod},
	{order.ErrOrderNotFound, CodeOrderNotFound},
	{product.ErrProductNotFound, CodeProductNotFound},
	{closingperiod.ErrClosingPeriodNotFound, CodeClosingPeriodNotFound},
	{feature.ErrFeatureNotFound, CodeFeatureNotFound},
	{shared.ErrUnauthorized, CodeUnauthorized},
	{shared.ErrNotFound, CodeNotFound},
	{shared.ErrInvalidInput, CodeValidation},
}

// FromDomainError 将领域错误映射为应用错误
func FromDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	for _, mapping := range domainMappings {
		if errors.Is(err, mapping.target) {
			return Wrap(err, mapping.code, domainMessage(err))
		}
	}
	return Wrap(err, CodeInternal, "internal server error")
}

// domainMessage 优先使用领域错误中面向用户的消息
func domainMessage(err error) string {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) && domainErr.Message != "" {
		return domainErr.Message
	}
	return err.Error()
}
