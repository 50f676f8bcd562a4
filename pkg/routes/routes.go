package pkg

import (
	"context"
	"log"

	"KecPortal/internal/auth"
	"KecPortal/internal/config"
	"KecPortal/internal/upload"
	appmiddleware "KecPortal/pkg/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

var EchoModules = fx.Module("echo",
	fx.Provide(NewEchoServer),
	fx.Provide(config.New),
	fx.Provide(config.NewMongoDBClient),
	fx.Provide(auth.NewAccountRepository),
	fx.Provide(func(repo *auth.AccountRepository) auth.AccountStore { return repo }),
	fx.Provide(auth.NewUserService),
	fx.Provide(auth.NewAuthService),
	fx.Provide(auth.NewAuthHandler),
	fx.Provide(upload.NewStorage),
	fx.Provide(upload.NewHandler),
	fx.Invoke(EnsureIndexes),
	fx.Invoke(RegisterRoutes))

func NewEchoServer(lc fx.Lifecycle, cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.Use(middleware.CORS())
	port := ":" + cfg.Port
	log.Println("Server running on http://localhost:" + cfg.Port)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(port); err != nil {
					log.Fatal("Failed to start the server:", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("shutting down the server ...")
			return e.Shutdown(ctx)
		},
	})
	return e
}

func EnsureIndexes(client *config.MongoDBClient) {
	config.UniqueUsernameIndex(client.GetCollection("users"))
}

func RegisterRoutes(e *echo.Echo, cfg *config.Config, authHandler *auth.AuthHandler, uploadHandler *upload.Handler) {
	e.POST("/api/login/student", authHandler.StudentLogin)
	e.POST("/api/login/staff", authHandler.StaffLogin)

	e.POST("/api/users", authHandler.CreateUser)
	e.GET("/api/users", authHandler.ListUsers)
	e.DELETE("/api/users/:id", authHandler.DeleteUser)

	e.POST("/api/uploads", uploadHandler.Upload)
	e.Static("/uploads", cfg.UploadsDir)

	protected := e.Group("/api")
	protected.Use(appmiddleware.JWT(cfg.JWTSecret))
	protected.GET("/profile", authHandler.Profile)
}
