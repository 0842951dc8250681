package routers

import (
	"kpoller/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	SetupBoxRouter(app, server)
	SetupSubscriberRouter(app, server)
	SetupPollerRouter(app, server)
}
