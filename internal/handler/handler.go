package handler

import (
	"net/http"

	"go.uber.org/zap"

	"portfolio-api/pkg/apperror"
)

// logInternal records the underlying cause of 500-class failures; the
// client only ever sees the generic message.
func logInternal(log *zap.Logger, msg string, err error) {
	if apperror.MapErrorToStatus(err) == http.StatusInternalServerError {
		log.Error(msg, zap.Error(err))
	}
}
