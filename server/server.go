package server

import (
	"tracker-server/confs"
	"tracker-server/db"
	"tracker-server/handlers"
	httpHandler "tracker-server/handlers/http"
	"tracker-server/middleware"
	"tracker-server/repositories"
	"tracker-server/services"
	"tracker-server/usecases"
	"tracker-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	secret := confs.JWTSecret()

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	entryRepo := repositories.NewEntryPgRepository(s.db)
	goalRepo := repositories.NewGoalPgRepository(s.db)

	// Live socket manager and activity recorder
	manager := ws.NewManager()
	activity := services.NewActivityService(s.db, manager)
	activity.Start()

	// Initialize use cases
	authUseCase := usecases.NewAuthUseCase(userRepo, secret)
	entryUseCase := usecases.NewEntryUseCase(entryRepo, activity)
	goalUseCase := usecases.NewGoalUseCase(goalRepo, activity)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(authUseCase)
	entryHandler := httpHandler.NewEntryHandler(entryUseCase)
	goalHandler := httpHandler.NewGoalHandler(goalUseCase)
	activityHandler := handlers.NewActivityHandler(activity)
	wsHandler := handlers.NewWSHandler(manager, secret)

	// Setup API routes
	api := s.app.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Entry routes, strictly owner-scoped
		entries := api.Group("/entries")
		entries.Use(middleware.RequireAuth(secret))
		{
			entries.GET("", entryHandler.GetEntries)
			entries.POST("", entryHandler.CreateEntry)
			entries.GET("/user", entryHandler.GetEntries)
			entries.GET("/filter", entryHandler.GetEntriesByFilter)
			entries.GET("/:id", entryHandler.GetEntryByID)
			entries.PUT("/:id", entryHandler.UpdateEntry)
			entries.DELETE("/:id", entryHandler.DeleteEntry)
		}

		// Goal routes
		goals := api.Group("/goals")
		goals.Use(middleware.RequireAuth(secret))
		{
			goals.GET("", goalHandler.GetGoals)
			goals.POST("", goalHandler.CreateGoal)
			goals.GET("/:id", goalHandler.GetGoalByID)
			goals.PUT("/:id", goalHandler.UpdateGoal)
			goals.DELETE("/:id", goalHandler.DeleteGoal)
			goals.GET("/user/:id", goalHandler.GetGoalsByUser)
			goals.GET("/user/:id/:date", goalHandler.GetGoalByUserAndDate)
		}

		// Activity buffer endpoints
		activityRoutes := api.Group("/activity")
		activityRoutes.Use(middleware.RequireAuth(secret))
		{
			activityRoutes.GET("", activityHandler.GetRecent)
			activityRoutes.GET("/stats", activityHandler.GetStats)
			activityRoutes.POST("/process", activityHandler.Process)
		}
	}

	s.app.GET("/ws", wsHandler.HandleUserWS)

	if err := s.app.Run("0.0.0.0:" + confs.Port()); err != nil {
		panic(err)
	}
}
