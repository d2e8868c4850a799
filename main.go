package main

import (
	"log"
	"path/filepath"
	"time"

	"charity-events/config"
	"charity-events/internal/handler"
	"charity-events/internal/middleware"
	"charity-events/internal/repository"
	"charity-events/internal/service"
	"charity-events/internal/web"
	"charity-events/pkg/database"
	"charity-events/pkg/monitoring"
	"charity-events/pkg/rabbitmq"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg)

	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		publisher = p
		defer publisher.Close()
	}

	eventRepo := repository.NewEventRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	eventSvc := service.NewEventService(eventRepo, publisher, time.Now, cfg.SearchLimit)
	categorySvc := service.NewCategoryService(categoryRepo)

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(monitoring.RequestCounter())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "charity-events"})
	})
	e.GET("/metrics", monitoring.Handler())

	api := e.Group("/api")
	handler.NewEventHandler(eventSvc).RegisterRoutes(api)
	handler.NewCategoryHandler(categorySvc).RegisterRoutes(api)

	web.NewPageHandler(eventSvc, categorySvc, time.Now).RegisterRoutes(e)
	e.Static("/static", cfg.StaticDir)
	e.Static("/images", filepath.Join(cfg.StaticDir, "images"))

	e.Server.ReadTimeout = cfg.HTTPReadTimeout
	e.Server.WriteTimeout = cfg.HTTPWriteTimeout

	log.Printf("Charity Events starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
