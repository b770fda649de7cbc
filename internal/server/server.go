// Package server assembles the gin engine: middleware chain, error
// envelopes for unmatched routes and the route table.
package server

import (
	"time"

	_ "github.com/vdoan98/trivia-web-application/docs"
	"github.com/vdoan98/trivia-web-application/internal/config"
	"github.com/vdoan98/trivia-web-application/internal/handlers"
	"github.com/vdoan98/trivia-web-application/internal/metrics"
	"github.com/vdoan98/trivia-web-application/internal/middleware"
	"github.com/vdoan98/trivia-web-application/internal/services"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title           Trivia API
// @version         1.0
// @description     Questions, categories and quiz play for the trivia app.
// @host            localhost:5000
// @BasePath        /

func NewRouter(cfg *config.Config, db *gorm.DB, log *zap.Logger, m *metrics.Metrics) *gin.Engine {
	categoryService := services.NewCategoryService(db)
	questionService := services.NewQuestionService(db)
	quizService := services.NewQuizService(db)

	categoryHandler := handlers.NewCategoryHandler(categoryService, questionService, log)
	questionHandler := handlers.NewQuestionHandler(questionService, categoryService, log)
	quizHandler := handlers.NewQuizHandler(quizService, m, log)
	healthHandler := handlers.NewHealthHandler(db, log)

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.CustomRecoveryWithZap(log, true, handlers.Recovered))
	r.Use(middleware.AccessControl())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Metrics(m))

	r.NoRoute(handlers.NotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(m.Handler()))
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	categories := r.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.POST("/add", categoryHandler.CreateCategory)
		categories.GET("/:id/questions", categoryHandler.CategoryQuestions)
	}

	questions := r.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.DELETE("/:id", questionHandler.DeleteQuestion)
		questions.POST("/add", questionHandler.CreateQuestion)
		questions.POST("/search", questionHandler.SearchQuestions)
		questions.GET("/export", questionHandler.ExportQuestions)
		questions.POST("/import", questionHandler.ImportQuestions)
	}

	r.POST("/quizzes", quizHandler.NextQuestion)

	return r
}
