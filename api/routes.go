package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func (app *application) routes() *gin.Engine {
	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     app.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(app.RequestID())
	r.Use(app.RequestLogger())
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	api := r.Group("/api")
	{
		api.POST("/users", app.RegisterUser)
		api.POST("/users/login", app.LoginUser)
		api.GET("/users", app.ListUsers)
		api.GET("/events", app.AuthOptional(), app.ListEvents)
		api.GET("/likes", app.ListLikes)
	}

	protected := api.Group("/")
	protected.Use(app.AuthRequired())
	{
		protected.PATCH("/users/:id", app.UpdateUser)
		protected.DELETE("/users/:id", app.DeleteUser)

		protected.POST("/events", app.CreateEvent)
		protected.PATCH("/events/:id", app.UpdateEvent)
		protected.DELETE("/events/:id", app.DeleteEvent)
		protected.GET("/events/:id/liked", app.EventLikedStatus)

		protected.POST("/likes", app.LikeEvent)
		protected.DELETE("/likes/:id", app.UnlikeEvent)
		protected.DELETE("/likes", app.ClearLikes)
		protected.GET("/likes/events", app.ListLikedEvents)
	}

	return r
}
