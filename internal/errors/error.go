package errors

import (
	stderrors "errors"
	"fmt"
)

// PiuError 是结构化错误：稳定错误码 + 人类可读消息 + 细节。
type PiuError struct {
	Code    Code           `json:"code" yaml:"code"`
	Message string         `json:"message" yaml:"message"`
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
	cause   error
}

func (e *PiuError) Error() string {
	if e == nil {
		return ""
	}
	if e.cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
}

func (e *PiuError) Unwrap() error { return e.cause }

func New(code Code, message string, details map[string]any) *PiuError {
	return &PiuError{Code: code, Message: message, Details: details}
}

func Wrap(code Code, message string, details map[string]any, cause error) *PiuError {
	return &PiuError{Code: code, Message: message, Details: details, cause: cause}
}

func As(err error) (*PiuError, bool) {
	var pe *PiuError
	if stderrors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

func AsOrWrap(err error) *PiuError {
	if pe, ok := As(err); ok {
		return pe
	}
	return Wrap(CodeInternal, err.Error(), nil, err)
}
