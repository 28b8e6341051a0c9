// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"farmhub/config"
	_ "farmhub/docs" // Swagger docs
	"farmhub/internal/delivery/http/middleware"
	"farmhub/internal/delivery/http/router/handler"
	deliverymiddleware "farmhub/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	UserHandler       *handler.UserHandler
	FarmHandler       *handler.FarmHandler
	AnimalHandler     *handler.AnimalHandler
	SystemHandler     *handler.SystemHandler
	AuthMiddleware    *middleware.AuthMiddleware
	MetricsMiddleware *deliverymiddleware.MetricsMiddleware `optional:"true"`
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	userHandler       *handler.UserHandler
	farmHandler       *handler.FarmHandler
	animalHandler     *handler.AnimalHandler
	systemHandler     *handler.SystemHandler
	authMiddleware    *middleware.AuthMiddleware
	metricsMiddleware *deliverymiddleware.MetricsMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		userHandler:       params.UserHandler,
		farmHandler:       params.FarmHandler,
		animalHandler:     params.AnimalHandler,
		systemHandler:     params.SystemHandler,
		authMiddleware:    params.AuthMiddleware,
		metricsMiddleware: params.MetricsMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.systemHandler.Welcome)
	e.GET("/health", r.systemHandler.Health)
	r.registerOperationalRoutes(e)

	authenticate := r.authMiddleware.Authenticate

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout, authenticate)
		authGroup.POST("/onboarding", r.authHandler.CompleteOnboarding, authenticate)
	}

	// Admin checks happen in the usecase, which loads the caller's role.
	usersGroup := e.Group("/users", authenticate)
	{
		usersGroup.GET("/me", r.userHandler.GetProfile)
		usersGroup.PATCH("/me", r.userHandler.UpdateProfile)
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PATCH("/:id", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}

	farmsGroup := e.Group("/farms", authenticate)
	{
		farmsGroup.POST("", r.farmHandler.CreateFarm)
		farmsGroup.GET("", r.farmHandler.ListFarms)
		farmsGroup.GET("/my-farms", r.farmHandler.ListMyFarms)
		farmsGroup.DELETE("/food-stocks/:stockId", r.farmHandler.DeleteFoodStock)
		farmsGroup.GET("/:id", r.farmHandler.GetFarm)
		farmsGroup.PATCH("/:id", r.farmHandler.UpdateFarm)
		farmsGroup.DELETE("/:id", r.farmHandler.DeleteFarm)
		farmsGroup.POST("/:id/food-stocks", r.farmHandler.AddFoodStock)
		farmsGroup.GET("/:id/food-stocks", r.farmHandler.ListFoodStocks)
	}

	animalsGroup := e.Group("/animals", authenticate)
	{
		animalsGroup.POST("", r.animalHandler.CreateAnimal)
		animalsGroup.GET("", r.animalHandler.ListAnimals)
		animalsGroup.GET("/:id", r.animalHandler.GetAnimal)
		animalsGroup.PATCH("/:id", r.animalHandler.UpdateAnimal)
		animalsGroup.DELETE("/:id", r.animalHandler.DeleteAnimal)
		animalsGroup.GET("/:id/qrcode", r.animalHandler.GetQRCode)

		animalsGroup.POST("/:id/vaccines", r.animalHandler.AddVaccine)
		animalsGroup.GET("/:id/vaccines", r.animalHandler.ListVaccines)
		animalsGroup.DELETE("/:id/vaccines/:vaccineId", r.animalHandler.DeleteVaccine)

		animalsGroup.POST("/:id/breedings", r.animalHandler.AddBreeding)
		animalsGroup.GET("/:id/breedings", r.animalHandler.ListBreedings)
		animalsGroup.DELETE("/:id/breedings/:breedingId", r.animalHandler.DeleteBreeding)
	}
}

func (r *router) registerOperationalRoutes(e *echo.Echo) {
	if r.config.Docs != nil && r.config.Docs.Enabled {
		e.GET("/api/docs", func(c echo.Context) error {
			return c.Redirect(http.StatusMovedPermanently, "/api/docs/index.html")
		})
		e.GET("/api/docs/*", echo.WrapHandler(httpSwagger.Handler(httpSwagger.URL("/api/docs/doc.json"))))
	}

	if r.metricsMiddleware != nil {
		path := "/metrics"
		if r.config.Metrics != nil && r.config.Metrics.Path != "" {
			path = r.config.Metrics.Path
		}
		e.GET(path, echo.WrapHandler(r.metricsMiddleware.Handler()))
	}
}
