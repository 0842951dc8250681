package routers

import (
	"kpoller/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupBoxRouter(app *fiber.App, server *cmd.Server) {
	boxHandler := server.BoxHandler
	app.Get("/boxes", boxHandler.ListBoxes)
	app.Get("/boxes/find", boxHandler.GetBox)
	app.Get("/boxes/:id", boxHandler.GetBoxByID)
	app.Delete("/boxes/:id", boxHandler.DeleteBox)
}
