package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/service"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/response"
)

type ProfileHandler struct {
	service service.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service service.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{service: service, log: log}
}

func (h *ProfileHandler) UploadHeadshot(c *gin.Context) {
	file, err := c.FormFile("headshotFile")
	if err != nil {
		response.Error(c, apperror.BadRequest("No image file uploaded."))
		return
	}

	profile, err := h.service.UploadHeadshot(c.Request.Context(), file)
	if err != nil {
		logInternal(h.log, "headshot upload failed", err)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg":     "Headshot uploaded successfully",
		"profile": profile,
	})
}

func (h *ProfileHandler) GetHeadshot(c *gin.Context) {
	profile, err := h.service.GetHeadshot(c.Request.Context())
	if err != nil {
		logInternal(h.log, "get headshot failed", err)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
