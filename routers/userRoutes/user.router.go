package userRoutes

import (
	userController "craftopia/controllers/user"
	"craftopia/middleware"
	"craftopia/repository"
	userValidator "craftopia/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, ctl *userController.UserController, users repository.UserRepository) {
	app.Post("/users", userValidator.Register(), ctl.Register)
	app.Get("/users", middleware.JWTMiddleware, middleware.RequireRole(users, "admin"), ctl.ListUsers)
	app.Patch("/users/:id", middleware.JWTMiddleware, middleware.RequireRole(users, "admin"), userValidator.UpdateRole(), ctl.UpdateRole)

	// Self-lookup role checks
	app.Get("/users/admin/:email", middleware.JWTMiddleware, ctl.CheckAdmin)
	app.Get("/users/instructor/:email", middleware.JWTMiddleware, ctl.CheckInstructor)

	app.Get("/instructors", ctl.ListInstructors)
}
