package routes

import (
	"github.com/boardwalk/monopoly-backend/app/controllers"
	"github.com/gofiber/fiber/v2"
)

func GameRoutes(a *fiber.App, gc *controllers.GameController) {
	route := a.Group("/game")
	route.Post("/create", gc.CreateGame)
	route.Get("/all", gc.ListGames)
	route.Get("/open", gc.ListOpenGames)
	route.Get("/:id", gc.GetGame)
	route.Delete("/:id", gc.DeleteGame)
	route.Post("/:id/action", gc.ProcessAction)
}
