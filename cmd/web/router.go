package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"miniblog/internal/shared/middleware"
	"miniblog/pkg/container"
)

// SetupRouter mounts the page routes on a gin engine with the shared
// middleware chain and the HTML template set.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
	)

	router.LoadHTMLGlob(c.Config.Blog.TemplateGlob)

	router.GET("/", c.PostHandler.Feed)
	router.GET("/post/:post_id", c.PostHandler.Read)
	router.GET("/create/", c.PostHandler.CreateForm)
	router.POST("/create/", c.PostHandler.Create)
	router.GET("/edit/:post_id", c.PostHandler.EditForm)
	router.POST("/edit/:post_id", c.PostHandler.Edit)
	router.POST("/delete/:post_id", c.PostHandler.Delete)
	router.GET("/user/:username", c.AuthorHandler.UserPage)

	router.GET("/healthz", healthCheckHandler(c))

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		}

		dbStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = err.Error()
			health["status"] = "degraded"
		}

		redisStatus := "ok"
		if err := appCtx.Cache.Ping(ctx); err != nil {
			redisStatus = err.Error()
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
