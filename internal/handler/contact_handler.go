package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/service"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/response"
	"portfolio-api/pkg/validator"
)

type ContactHandler struct {
	service service.ContactService
	log     *zap.Logger
}

func NewContactHandler(service service.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{service: service, log: log}
}

func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.BadRequest(validator.FormatValidationError(err)))
		return
	}

	if err := h.service.SubmitMessage(c.Request.Context(), req); err != nil {
		logInternal(h.log, "contact submission failed", err)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}
