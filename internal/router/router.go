package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mentordesk/mentordesk/internal/handlers"
	"github.com/mentordesk/mentordesk/internal/middleware"
)

func NewRouter(allowedOrigins []string) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.RegisterUser)
			auth.POST("/login", handlers.LoginUser)
			auth.POST("/logout", handlers.LogoutUser)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
		}

		users := api.Group("/users", middleware.AuthMiddleware())
		{
			users.PATCH("/me", handlers.UpdateMe)
			users.PATCH("/me/password", handlers.UpdatePassword)
			users.GET("/:user_id", handlers.GetUser)
		}

		items := api.Group("/items", middleware.AuthMiddleware())
		{
			items.POST("", handlers.CreateItem)
			items.GET("", handlers.ListItems)
			items.GET("/:item_id", handlers.GetItem)
			items.PUT("/:item_id", handlers.UpdateItem)
			items.DELETE("/:item_id", handlers.DeleteItem)
		}

		mentors := api.Group("/mentors", middleware.AuthMiddleware())
		{
			mentors.POST("/:mentor_email", handlers.AssignMentor)
			mentors.DELETE("/:mentor_id", handlers.DeleteMentor)
			mentors.GET("", handlers.ListMentors)
		}

		questionnaires := api.Group("/questionnaires", middleware.AuthMiddleware())
		{
			questionnaires.POST("", handlers.CreateQuestionnaire)
			questionnaires.GET("", handlers.ListQuestionnaires)
			questionnaires.DELETE("/:questionnaire_id", handlers.DeleteQuestionnaire)
			questionnaires.GET("/:user_id/questionnaires", handlers.ListQuestionnairesForUser)
		}
	}

	return r
}
