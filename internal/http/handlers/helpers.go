package handlers

import (
	"time"

	"go.uber.org/zap"
)

func zapError(err error) zap.Field {
	return zap.Error(err)
}

type handlerError struct {
	message string
}

func (e *handlerError) Error() string {
	return e.message
}

func parseDateParam(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	if parsed, err := time.Parse("2006-01-02", value); err == nil {
		return parsed, nil
	}
	return time.Time{}, &handlerError{message: "Invalid date"}
}
