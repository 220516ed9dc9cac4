package selectionRoutes

import (
	selectionController "craftopia/controllers/selection"
	"craftopia/middleware"
	selectionValidator "craftopia/validators/selection"

	"github.com/gofiber/fiber/v2"
)

func SetupSelectionRoutes(app *fiber.App, ctl *selectionController.SelectionController) {
	app.Post("/selectedClass", middleware.JWTMiddleware, selectionValidator.CreateSelection(), ctl.CreateSelection)
	app.Get("/selectedClass", middleware.JWTMiddleware, ctl.ListSelections)
	app.Delete("/selectedClass/:id", middleware.JWTMiddleware, ctl.RemoveSelection)
}
