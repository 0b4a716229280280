package router

import (
	"github.com/gin-gonic/gin"

	"github.com/userhub/user-service/internal/api/http/handler"
	"github.com/userhub/user-service/internal/api/http/middleware"
	"github.com/userhub/user-service/internal/logger"
)

// New wires the user endpoints onto a gin engine.
func New(h *handler.Handler, logger *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logging(logger))

	users := r.Group("/user")
	{
		users.POST("/create", h.CreateUser)
		users.GET("/listAll", h.FindAll)
		users.GET("/search", h.SearchUsers)
		users.GET("/:id", h.FindByID)
		users.PUT("/update", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}

	return r
}
