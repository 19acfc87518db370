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

type ProjectHandler struct {
	service service.ProjectService
	log     *zap.Logger
}

func NewProjectHandler(service service.ProjectService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{service: service, log: log}
}

func (h *ProjectHandler) GetAllProjects(c *gin.Context) {
	projects, err := h.service.GetAllProjects(c.Request.Context())
	if err != nil {
		logInternal(h.log, "list projects failed", err)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	project, err := h.service.GetProjectByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		logInternal(h.log, "get project failed", err)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.BadRequest(validator.FormatValidationError(err)))
		return
	}

	project, err := h.service.CreateProject(c.Request.Context(), req)
	if err != nil {
		logInternal(h.log, "create project failed", err)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.BadRequest(validator.FormatValidationError(err)))
		return
	}

	project, err := h.service.UpdateProject(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		logInternal(h.log, "update project failed", err)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.service.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
		logInternal(h.log, "delete project failed", err)
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Project removed successfully")
}
