package main

import (
	"log"

	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/router"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173/",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()
	database.ConnectRedis()

	utils.StartNotificationWorker()
	helper.StartOtpSweep()
	defer helper.StopOtpSweep()
	helper.StartDailyReportScheduler()
	defer helper.StopDailyReportScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8002"))
}
