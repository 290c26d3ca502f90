package errors

import (
	stderrors "errors"
)

// ErrorHandler turns any error produced while serving a request into a
// StandardError and its HTTP status, logging it on the way.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle normalizes err and returns the status code to answer with.
func (h *ErrorHandler) Handle(err error, fields map[string]interface{}) (int, *StandardError) {
	stdErr := Normalize(err)
	status := HTTPStatus(stdErr.Code)
	h.logError(stdErr, status, fields)
	return status, stdErr
}

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}
	return NewInternalError(err)
}

func (h *ErrorHandler) logError(stdErr *StandardError, status int, fields map[string]interface{}) {
	if h.logger == nil {
		return
	}

	logFields := map[string]interface{}{
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"statusCode":    status,
		"errorCategory": GetErrorCategory(stdErr.Code),
	}
	for k, v := range fields {
		logFields[k] = v
	}

	if IsClientError(stdErr.Code) {
		h.logger.Warn("Request rejected", logFields)
		return
	}
	h.logger.Error("Request failed", logFields)
}
