package routers

import (
	"kpoller/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupPollerRouter(app *fiber.App, server *cmd.Server) {
	poller := server.PollerService
	app.Post("/poller/run", func(ctx *fiber.Ctx) error {
		err := poller.ForceStartPollCycle()
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{})
	})
}
