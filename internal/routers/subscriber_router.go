package routers

import (
	"kpoller/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupSubscriberRouter(app *fiber.App, server *cmd.Server) {
	subscriberHandler := server.SubscriberHandler
	app.Get("/subscribers", subscriberHandler.ListActiveSubscribers)
	app.Post("/subscribers", subscriberHandler.Register)
	app.Get("/subscribers/:email", subscriberHandler.GetSubscriberByEmail)
}
