package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/dto"
	"portfolio-api/internal/middleware"
	"portfolio-api/internal/service"
	"portfolio-api/pkg/apperror"
	"portfolio-api/pkg/response"
	"portfolio-api/pkg/validator"
)

type BlogHandler struct {
	service service.BlogService
	log     *zap.Logger
}

func NewBlogHandler(service service.BlogService, log *zap.Logger) *BlogHandler {
	return &BlogHandler{service: service, log: log}
}

func (h *BlogHandler) GetPublishedPosts(c *gin.Context) {
	posts, err := h.service.GetPublishedPosts(c.Request.Context())
	if err != nil {
		logInternal(h.log, "list published posts failed", err)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) GetPublishedPostBySlug(c *gin.Context) {
	post, err := h.service.GetPublishedPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		logInternal(h.log, "get published post failed", err)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) SearchPublishedPosts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.Error(c, apperror.BadRequest("Please provide a search query"))
		return
	}

	posts, err := h.service.SearchPublishedPosts(c.Request.Context(), query)
	if err != nil {
		logInternal(h.log, "search posts failed", err)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) GetAllPosts(c *gin.Context) {
	posts, err := h.service.GetAllPosts(c.Request.Context())
	if err != nil {
		logInternal(h.log, "list posts failed", err)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *BlogHandler) GetPostByID(c *gin.Context) {
	post, err := h.service.GetPostByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		logInternal(h.log, "get post failed", err)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) CreatePost(c *gin.Context) {
	var req dto.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.BadRequest(validator.FormatValidationError(err)))
		return
	}

	author := ""
	if claims, ok := middleware.GetClaims(c); ok {
		author = claims.Username
	}

	post, err := h.service.CreatePost(c.Request.Context(), author, req)
	if err != nil {
		logInternal(h.log, "create post failed", err)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *BlogHandler) UpdatePost(c *gin.Context) {
	var req dto.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.BadRequest(validator.FormatValidationError(err)))
		return
	}

	post, err := h.service.UpdatePost(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		logInternal(h.log, "update post failed", err)
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *BlogHandler) DeletePost(c *gin.Context) {
	if err := h.service.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		logInternal(h.log, "delete post failed", err)
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Blog post removed successfully")
}
