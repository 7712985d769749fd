package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant_manager/config"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/router"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

func main() {
	utils.SetLogLevel(config.ConfigOr("LOG_LEVEL", "info"))

	database.ConnectDB()
	helper.InitRedis(config.ConfigOr("REDIS_ADDR", "localhost:6379"))
	defer helper.CloseRedis()

	if err := helper.StartKitchenStatusScheduler(database.DB); err != nil {
		utils.Log.WithError(err).Fatal("start kitchen status scheduler")
	}
	defer helper.StopKitchenStatusScheduler()

	staleAfter, err := time.ParseDuration(config.ConfigOr("ORDER_ITEM_STALE_AFTER", "12h"))
	if err != nil {
		utils.Log.WithError(err).Fatal("parse ORDER_ITEM_STALE_AFTER")
	}
	if err := helper.StartStaleOrderItemScheduler(database.DB, staleAfter); err != nil {
		utils.Log.WithError(err).Fatal("start stale order item scheduler")
	}
	defer helper.StopStaleOrderItemScheduler()

	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		MaxAge:           600,
	}))

	router.SetupRoutes(app)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		utils.Log.Info("shutting down")
		app.ShutdownWithTimeout(10 * time.Second)
	}()

	port := config.ConfigOr("APP_PORT", "8002")
	if err := app.Listen(":" + port); err != nil {
		utils.Log.WithError(err).Error("server stopped")
	}
}
