package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/franciscosanchezn/linkup-api/docs" // swagger spec registration
	"github.com/franciscosanchezn/linkup-api/internal/auth"
	"github.com/franciscosanchezn/linkup-api/internal/chat"
	"github.com/franciscosanchezn/linkup-api/internal/controllers"
	"github.com/franciscosanchezn/linkup-api/internal/middleware"
	"github.com/franciscosanchezn/linkup-api/internal/models"
	"github.com/franciscosanchezn/linkup-api/internal/services"
)

// Dependencies are the collaborators the route table is built from
type Dependencies struct {
	Tokens   *auth.TokenService
	OAuth    *auth.OAuthService
	Users    services.UserService
	Events   services.EventService
	Reviews  services.ReviewService
	Messages services.MessageService
	Clients  services.ClientService
	Hub      chat.Hub
	Logger   logrus.FieldLogger

	// AllowedOrigins for CORS; empty allows every origin
	AllowedOrigins []string
}

// New builds the gin engine with every route and its gate chain
func New(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(deps.Logger), middleware.CORS(deps.AllowedOrigins))

	authenticate := middleware.Authenticate(deps.Tokens)
	identify := middleware.IdentifyIfPresent(deps.Tokens)
	requireAdmin := middleware.RequireRole(auth.NewAuthorizer(deps.Users), models.RoleAdmin)

	tokenController := controllers.NewTokenController(deps.Tokens)
	userController := controllers.NewUserController(deps.Users)
	eventController := controllers.NewEventController(deps.Events)
	reviewController := controllers.NewReviewController(deps.Reviews)
	messageController := controllers.NewMessageController(deps.Messages, deps.Hub)
	clientController := controllers.NewClientController(deps.Clients)

	router.GET("/", rootHandler)
	router.GET("/health", healthCheckHandler)

	router.POST("/jwt", tokenController.IssueToken)
	if deps.OAuth != nil {
		router.POST("/oauth/token", deps.OAuth.HandleToken)
	}

	users := router.Group("/users")
	{
		users.POST("", userController.CreateUser)
		users.GET("", authenticate, requireAdmin, userController.ListUsers)
		users.GET("/admin/:email", authenticate, middleware.RequireSelf("email"), userController.CheckAdmin)
		users.PATCH("/admin/:id", authenticate, requireAdmin, userController.MakeAdmin)
		users.DELETE("/admin/:id", authenticate, requireAdmin, userController.DeleteUser)
		users.DELETE("/:id", authenticate, requireAdmin, userController.DeleteUser)
	}

	router.POST("/add-event", identify, eventController.AddEvent)
	events := router.Group("/events")
	{
		events.GET("", eventController.ListEvents)
		events.GET("/:id", eventController.GetEvent)
		events.PUT("/:id", eventController.UpdateEvent)
		events.DELETE("/:id", authenticate, requireAdmin, eventController.DeleteEvent)
	}

	reviews := router.Group("/reviews")
	{
		reviews.GET("", reviewController.ListReviews)
		reviews.POST("", identify, reviewController.AddReview)
	}

	messages := router.Group("/messages")
	messages.Use(authenticate)
	{
		messages.POST("", messageController.SendMessage)
		messages.GET("", messageController.ListConversation)
		messages.GET("/stream", messageController.Stream)
	}

	clients := router.Group("/clients")
	clients.Use(authenticate)
	{
		clients.POST("", clientController.CreateClient)
		clients.GET("", clientController.ListClients)
		clients.DELETE("/:id", clientController.DeleteClient)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func rootHandler(c *gin.Context) {
	c.String(http.StatusOK, "LinkUp Backend is running")
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "linkup-api",
	})
}
