package router

import (
	"time"

	"github.com/Adit10076/vetai-backend/internal/config"
	"github.com/Adit10076/vetai-backend/internal/evaluation"
	"github.com/Adit10076/vetai-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, evalHandler *evaluation.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Provider liveness, for dashboards. Evaluation requests never 503:
	// a down provider just means they get the fallback.
	r.GET("/health/llm", evalHandler.ProbeProvider())

	r.POST("/validate", evalHandler.Validate())

	return r
}
