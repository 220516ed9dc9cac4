package classRoutes

import (
	classController "craftopia/controllers/class"
	"craftopia/middleware"
	"craftopia/repository"
	classValidator "craftopia/validators/class"

	"github.com/gofiber/fiber/v2"
)

func SetupClassRoutes(app *fiber.App, ctl *classController.ClassController, users repository.UserRepository) {
	// Instructor surface
	app.Post("/class", middleware.JWTMiddleware, middleware.RequireRole(users, "instructor"), classValidator.CreateClass(), ctl.CreateClass)
	app.Get("/class/instructor/:email", middleware.JWTMiddleware, middleware.RequireRole(users, "instructor"), ctl.ListByInstructor)

	// Admin surface
	app.Get("/class", middleware.JWTMiddleware, middleware.RequireRole(users, "admin"), ctl.ListAll)
	app.Patch("/class/:id", middleware.JWTMiddleware, middleware.RequireRole(users, "admin"), classValidator.UpdateClass(), ctl.UpdateClass)

	// Public surface
	app.Get("/classes", ctl.ListApproved)
	app.Get("/classessorted", ctl.ListPopular)
}
