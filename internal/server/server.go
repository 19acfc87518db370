package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"portfolio-api/internal/config"
	"portfolio-api/internal/handler"
	"portfolio-api/internal/middleware"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/service"
	"portfolio-api/internal/storage"
	"portfolio-api/internal/token"
)

type Server struct {
	engine *gin.Engine
}

func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, log *zap.Logger) (*Server, error) {
	files, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)
	searchSvc := service.NewMeiliSearchService(cfg.MeiliSearchHost, cfg.MeiliMasterKey, log)

	userRepo := repository.NewUserRepository(db)
	authSvc := service.NewAuthService(userRepo, tokens)
	authHandler := handler.NewAuthHandler(authSvc, log)

	projectRepo := repository.NewProjectRepository(db)
	projectSvc := service.NewProjectService(projectRepo)
	projectHandler := handler.NewProjectHandler(projectSvc, log)

	blogRepo := repository.NewBlogRepository(db)
	blogSvc := service.NewBlogService(blogRepo, searchSvc, log)
	blogHandler := handler.NewBlogHandler(blogSvc, log)

	cvRepo := repository.NewCVRepository(db)
	cvSvc := service.NewCVService(cvRepo, files, cfg.CVMaxBytes, log)
	cvHandler := handler.NewCVHandler(cvSvc, log)

	profileRepo := repository.NewProfileRepository(db)
	profileSvc := service.NewProfileService(profileRepo, files, cfg.HeadshotMaxBytes)
	profileHandler := handler.NewProfileHandler(profileSvc, log)

	contactRepo := repository.NewContactRepository(db)
	contactSvc := service.NewContactService(contactRepo)
	contactHandler := handler.NewContactHandler(contactSvc, log)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	setupCORS(router, cfg.AllowedOrigins)

	// Uploaded files are served directly; the API only returns metadata.
	router.Static("/uploads/cv", files.Dir(storage.CVDir))
	router.Static("/uploads/profile", files.Dir(storage.ProfileDir))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello from the Bio Website Backend!")
	})

	authMiddleware := middleware.NewAuthMiddleware(tokens)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login",
			middleware.RateLimit(rdb, "login", cfg.LoginRateLimit),
			authHandler.Login)
	}

	projects := api.Group("/projects")
	{
		projects.GET("", projectHandler.GetAllProjects)
		projects.GET("/:id", projectHandler.GetProjectByID)

		adminProjects := projects.Group("")
		adminProjects.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			adminProjects.POST("", projectHandler.CreateProject)
			adminProjects.PUT("/:id", projectHandler.UpdateProject)
			adminProjects.DELETE("/:id", projectHandler.DeleteProject)
		}
	}

	blog := api.Group("/blog")
	{
		blog.GET("/public", blogHandler.GetPublishedPosts)
		blog.GET("/public/search", blogHandler.SearchPublishedPosts)
		blog.GET("/public/:slug", blogHandler.GetPublishedPostBySlug)

		adminBlog := blog.Group("")
		adminBlog.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			adminBlog.GET("/all", blogHandler.GetAllPosts)
			adminBlog.GET("/:id", blogHandler.GetPostByID)
			adminBlog.POST("", blogHandler.CreatePost)
			adminBlog.PUT("/:id", blogHandler.UpdatePost)
			adminBlog.DELETE("/:id", blogHandler.DeletePost)
		}
	}

	cv := api.Group("/cv")
	{
		cv.GET("", cvHandler.GetCurrent)

		adminCV := cv.Group("")
		adminCV.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			adminCV.POST("/upload", cvHandler.Upload)
			adminCV.DELETE("", cvHandler.Delete)
		}
	}

	profile := api.Group("/profile")
	{
		profile.GET("/headshot", profileHandler.GetHeadshot)
		profile.POST("/headshot",
			authMiddleware.RequireAuth(), authMiddleware.RequireAdmin(),
			profileHandler.UploadHeadshot)
	}

	api.POST("/contact",
		middleware.RateLimit(rdb, "contact", cfg.ContactRateLimit),
		contactHandler.SubmitMessage)

	return &Server{engine: router}, nil
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	origins := []string{"http://localhost:3000"}
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
