package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/nafemage/OSProject2/api"
	"github.com/nafemage/OSProject2/config"
)

func main() {
	schedulerConfig := config.GetSchedulerConfig()

	app := fiber.New()
	api.SetupRoutes(app, api.NewSchedulerHandlerImpl(schedulerConfig))

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", schedulerConfig.Port)))
}
