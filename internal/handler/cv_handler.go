package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/service"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/response"
)

type CVHandler struct {
	service service.CVService
	log     *zap.Logger
}

func NewCVHandler(service service.CVService, log *zap.Logger) *CVHandler {
	return &CVHandler{service: service, log: log}
}

func (h *CVHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("cvFile")
	if err != nil {
		response.Error(c, apperror.BadRequest("No file uploaded. Please select a PDF file."))
		return
	}

	cv, err := h.service.Upload(c.Request.Context(), file)
	if err != nil {
		logInternal(h.log, "cv upload failed", err)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"msg": "CV uploaded successfully",
		"cv":  cv,
	})
}

func (h *CVHandler) GetCurrent(c *gin.Context) {
	info, err := h.service.GetCurrent(c.Request.Context())
	if err != nil {
		logInternal(h.log, "get cv failed", err)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

func (h *CVHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context()); err != nil {
		logInternal(h.log, "delete cv failed", err)
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "CV deleted successfully")
}
